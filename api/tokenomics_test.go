package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diligentcrypto/diligent/coingecko"
)

const consensusPayload = `{
	"data": {
		"profile": {
			"economics": {
				"consensus_and_emission": {
					"supply": {"general_emission_type": "Deflationary"},
					"consensus": {
						"general_consensus_mechanism": "Proof of Work",
						"consensus_details": "Nakamoto consensus.",
						"mining_algorithm": "SHA-256",
						"block_reward": "n/a"
					}
				}
			}
		}
	}
}`

const geckoPayload = `{
	"block_time_in_minutes": 10,
	"hashing_algorithm": "SHA-256",
	"market_data": {"total_supply": 21000000, "max_supply": 21000000, "circulating_supply": 19500000}
}`

func TestTokenomics(t *testing.T) {
	var profileKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/assets/btc/profile":
			profileKey = r.Header.Get("x-messari-api-key")
			w.Write([]byte(consensusPayload))
		case "/v1/assets/btc/metrics/sply.circ/time-series":
			if got := r.URL.Query().Get("interval"); got != "1d" {
				t.Errorf("interval = %q, want 1d", got)
			}
			if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
				t.Errorf("supply range should be unbounded, got %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{
				"data": {
					"schema": {"name": "Circulating Supply"},
					"parameters": {"columns": ["timestamp", "circulating_supply"]},
					"values": [[1622505600000, 18700000]]
				}
			}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gecko := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geckoPayload))
	}))
	defer gecko.Close()

	client := testClient(t, srv,
		WithCoinGecko(coingecko.NewClient(coingecko.WithBaseURL(gecko.URL))))

	table, circulating, err := client.Tokenomics("btc", "bitcoin")
	if err != nil {
		t.Fatalf("Tokenomics failed: %v", err)
	}

	// The consensus/emission section is queried with an empty key header.
	if profileKey != "" {
		t.Errorf("profile key header = %q, want empty", profileKey)
	}

	// Five consensus rows plus five supplementary CoinGecko rows.
	if table.Len() != 10 {
		t.Fatalf("expected 10 rows, got %d", table.Len())
	}
	if table.Rows[0][0] != "Emission Type" || table.Rows[0][1] != "Deflationary" {
		t.Errorf("first row = %v", table.Rows[0])
	}
	if table.Rows[4][0] != "Block Reward" || table.Rows[4][1] != "-" {
		t.Errorf("n/a value should become placeholder, got %v", table.Rows[4])
	}
	if table.Rows[5][0] != "Hashing Algorithm" {
		t.Errorf("supplementary rows should follow, got %v", table.Rows[5])
	}

	if circulating.Title != "Circulating Supply" {
		t.Errorf("series title = %q", circulating.Title)
	}
	if circulating.Empty() {
		t.Error("expected circulating-supply points")
	}
}

func TestTokenomicsCoinGeckoFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/assets/btc/profile":
			w.Write([]byte(consensusPayload))
		default:
			w.Write([]byte(`{
				"data": {
					"schema": {"name": "Circulating Supply"},
					"parameters": {"columns": ["timestamp", "circulating_supply"]},
					"values": []
				}
			}`))
		}
	}))
	defer srv.Close()

	gecko := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer gecko.Close()

	client := testClient(t, srv,
		WithCoinGecko(coingecko.NewClient(coingecko.WithBaseURL(gecko.URL))))

	table, _, err := client.Tokenomics("btc", "unknown")
	if err != nil {
		t.Fatalf("collaborator failure should not fail the call: %v", err)
	}
	// Only the five consensus rows remain.
	if table.Len() != 5 {
		t.Errorf("expected 5 rows without the supplement, got %d", table.Len())
	}
}
