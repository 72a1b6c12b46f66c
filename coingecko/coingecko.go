// Package coingecko fetches supplementary coin economics from the CoinGecko
// API. It is keyed by CoinGecko coin ids ("bitcoin", "ethereum"), which are
// distinct from the asset symbols used by the Messari client.
package coingecko

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/diligentcrypto/diligent/tabular"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public CoinGecko API endpoint.
const DefaultBaseURL = "https://api.coingecko.com"

// Client handles API calls to CoinGecko.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// NewClient creates a new CoinGecko client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// coinInfo is the subset of the /api/v3/coins/{id} payload used here.
type coinInfo struct {
	BlockTimeInMinutes float64 `json:"block_time_in_minutes"`
	HashingAlgorithm   *string `json:"hashing_algorithm"`
	MarketData         struct {
		TotalSupply       *float64 `json:"total_supply"`
		MaxSupply         *float64 `json:"max_supply"`
		CirculatingSupply *float64 `json:"circulating_supply"`
	} `json:"market_data"`
}

// CoinTokenomics returns a Metric/Value table of supply economics for the
// given CoinGecko coin id.
func (c *Client) CoinTokenomics(id string) (*tabular.Table, error) {
	reqURL := fmt.Sprintf("%s/api/v3/coins/%s", c.baseURL, url.PathEscape(id))

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coin info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info coinInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	table := tabular.New("Metric", "Value")
	table.Append("Hashing Algorithm", tabular.Cell(info.HashingAlgorithm))
	table.Append("Block Time [min]", decimal.NewFromFloat(info.BlockTimeInMinutes).String())
	table.Append("Total Supply", supplyCell(info.MarketData.TotalSupply))
	table.Append("Max Supply", supplyCell(info.MarketData.MaxSupply))
	table.Append("Circulating Supply", supplyCell(info.MarketData.CirculatingSupply))
	return table, nil
}

func supplyCell(v *float64) string {
	if v == nil {
		return tabular.Placeholder
	}
	return tabular.FormatLongNumber(*v)
}
