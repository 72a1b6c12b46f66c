package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGovernanceWithOnchainDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields"); got != "profile/governance" {
			t.Errorf("fields = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"profile": {
					"governance": {
						"governance_details": "<p>Governed by <b>token holders</b>.</p>",
						"onchain_governance": {
							"onchain_governance_type": "Coin voting",
							"onchain_governance_details": "One token, one vote."
						}
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	summary, table, err := client.Governance("mkr")
	if err != nil {
		t.Fatalf("Governance failed: %v", err)
	}

	if summary != "Governed by token holders." {
		t.Errorf("summary = %q, markup should be stripped", summary)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	if table.Rows[0][0] != "Type" || table.Rows[0][1] != "Coin voting" {
		t.Errorf("first row = %v", table.Rows[0])
	}
	if table.Rows[1][0] != "Details" || table.Rows[1][1] != "One token, one vote." {
		t.Errorf("second row = %v", table.Rows[1])
	}
}

func TestGovernanceWithoutOnchainDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"profile": {
					"governance": {
						"governance_details": "Informal governance.",
						"onchain_governance": {
							"onchain_governance_type": "Coin voting",
							"onchain_governance_details": null
						}
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	summary, table, err := client.Governance("btc")
	if err != nil {
		t.Fatalf("Governance failed: %v", err)
	}
	if summary != "Informal governance." {
		t.Errorf("summary = %q", summary)
	}
	// Both type and details must be present for the table to populate.
	if !table.Empty() {
		t.Errorf("expected empty table, got %v", table.Rows)
	}
}
