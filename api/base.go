package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diligentcrypto/diligent/coingecko"
	"golang.org/x/time/rate"
)

// Documented diagnostics for authorization failures. Callers that present
// errors to users should show these verbatim.
const (
	MsgPremiumFeature = "API Key not authorized for Premium Feature"
	MsgInvalidKey     = "Invalid API Key"
)

// premiumMarker appears in 401 bodies when the metric needs a higher
// subscription tier rather than a valid key.
const premiumMarker = "requires a pro or enterprise subscription"

// ErrorKind classifies an API failure.
type ErrorKind int

const (
	// KindPremiumRequired means the key is valid but the resource needs a
	// paid subscription tier.
	KindPremiumRequired ErrorKind = iota + 1
	// KindInvalidKey means the key was rejected.
	KindInvalidKey
	// KindUnexpected covers every other non-success status.
	KindUnexpected
)

// Error is a classified API failure. Every fetch that returns one also
// returns empty tables, so callers can report the message and keep going.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       string
}

func (e *Error) Error() string {
	return e.Message
}

// Client handles API calls to the Messari research API. It is safe for
// concurrent use; each call owns its own request and response.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseV1     string
	baseV2     string
	logger     *slog.Logger
	limiter    *rate.Limiter
	gecko      *coingecko.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithBaseURLs overrides the v1 and v2 API endpoints, mainly for tests.
// Empty values keep the defaults.
func WithBaseURLs(v1, v2 string) Option {
	return func(c *Client) {
		if v1 != "" {
			c.baseV1 = v1
		}
		if v2 != "" {
			c.baseV2 = v2
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit adds opt-in client-side throttling. The client itself never
// throttles; high-volume callers can cap requests per second here instead of
// wrapping the client.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), int(math.Max(1, rps)))
		}
	}
}

// WithCoinGecko sets the collaborator used by Tokenomics for the
// supplementary economics table.
func WithCoinGecko(gecko *coingecko.Client) Option {
	return func(c *Client) {
		c.gecko = gecko
	}
}

// NewClient creates a new Messari API client holding the given key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey: apiKey,
		baseV1: BaseURLV1,
		baseV2: BaseURLV2,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.gecko == nil {
		c.gecko = coingecko.NewClient()
	}
	return c
}

// getJSON performs one GET and decodes a 200 body into out. The key header
// is always present; key selects the configured key or an empty value for
// the public profile sections. No retries, no caching.
func (c *Client) getJSON(base, path string, params url.Values, key string, out interface{}) error {
	u, err := url.Parse(base + path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, key)

	c.logger.Debug("fetching resource", "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := classify(resp.StatusCode, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// classify maps a status code and body to the shared failure taxonomy.
// Returns nil on 2xx.
func classify(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		if strings.Contains(string(body), premiumMarker) {
			return &Error{
				Kind:       KindPremiumRequired,
				StatusCode: status,
				Message:    MsgPremiumFeature,
				Body:       string(body),
			}
		}
		return &Error{
			Kind:       KindInvalidKey,
			StatusCode: status,
			Message:    MsgInvalidKey,
			Body:       string(body),
		}
	default:
		// Surface the raw body text for anything unexpected.
		return &Error{
			Kind:       KindUnexpected,
			StatusCode: status,
			Message:    strings.TrimSpace(string(body)),
			Body:       string(body),
		}
	}
}

// profile fetches one profile sub-tree selected by a dotted fields path.
func (c *Client) profile(asset, fields, key string) (*profile, error) {
	params := url.Values{}
	params.Set("fields", fields)

	var env profileEnvelope
	if err := c.getJSON(c.baseV2, "assets/"+url.PathEscape(asset)+"/profile", params, key, &env); err != nil {
		return nil, err
	}
	return &env.Data.Profile, nil
}

// splitISODate reduces an ISO timestamp to its date part
// ("2021-06-01T00:00:00Z" -> "2021-06-01"). Nil and empty map to the
// placeholder.
func splitISODate(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	date, _, _ := strings.Cut(*s, "T")
	return date
}

// parseDate normalizes a date string to YYYY-MM-DD, passing through values
// it cannot parse. Nil and empty map to the placeholder.
func parseDate(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return *s
}
