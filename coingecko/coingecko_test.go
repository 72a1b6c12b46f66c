package coingecko

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const coinPayload = `{
	"id": "bitcoin",
	"block_time_in_minutes": 10,
	"hashing_algorithm": "SHA-256",
	"market_data": {
		"total_supply": 21000000,
		"max_supply": 21000000,
		"circulating_supply": 19500000
	}
}`

func TestCoinTokenomics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/bitcoin" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coinPayload))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	table, err := client.CoinTokenomics("bitcoin")
	if err != nil {
		t.Fatalf("CoinTokenomics failed: %v", err)
	}

	wantCols := []string{"Metric", "Value"}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", table.Columns, wantCols)
	}
	if table.Len() != 5 {
		t.Fatalf("expected 5 rows, got %d", table.Len())
	}
	if table.Rows[0][1] != "SHA-256" {
		t.Errorf("hashing algorithm = %q", table.Rows[0][1])
	}
	if table.Rows[2][1] != "21 M" {
		t.Errorf("total supply = %q, want 21 M", table.Rows[2][1])
	}
	if table.Rows[4][1] != "19.5 M" {
		t.Errorf("circulating supply = %q, want 19.5 M", table.Rows[4][1])
	}
}

func TestCoinTokenomicsMissingSupply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"block_time_in_minutes": 0, "market_data": {}}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	table, err := client.CoinTokenomics("some-token")
	if err != nil {
		t.Fatalf("CoinTokenomics failed: %v", err)
	}
	for _, row := range table.Rows[2:] {
		if row[1] != "-" {
			t.Errorf("missing supply %q should be placeholder, got %q", row[0], row[1])
		}
	}
}

func TestCoinTokenomicsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "coin not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.CoinTokenomics("nope"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
