package api

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const contributorsPayload = `{
	"data": {
		"profile": {
			"contributors": {
				"individuals": [
					{
						"slug": "ada-lovelace",
						"first_name": "Ada",
						"last_name": "Lovelace",
						"title": "Founder",
						"description": null,
						"avatar_url": "https://example.com/ada.png"
					}
				],
				"organizations": [
					{
						"slug": "analytical-engines",
						"name": "Analytical Engines",
						"logo": "https://example.com/logo.png",
						"description": "Research lab."
					}
				]
			}
		}
	}
}`

func TestTeam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields"); got != "profile/contributors" {
			t.Errorf("fields = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(contributorsPayload))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	individuals, organizations, err := client.Team("btc")
	if err != nil {
		t.Fatalf("Team failed: %v", err)
	}

	// Name is synthesized; the raw name, slug, and avatar fields must not
	// appear as columns.
	wantCols := []string{"Name", "Title", "Description"}
	if !reflect.DeepEqual(individuals.Columns, wantCols) {
		t.Errorf("individual columns = %v, want %v", individuals.Columns, wantCols)
	}
	if individuals.Rows[0][0] != "Ada Lovelace" {
		t.Errorf("name = %q, want Ada Lovelace", individuals.Rows[0][0])
	}
	if individuals.Rows[0][2] != "-" {
		t.Errorf("null description = %q, want placeholder", individuals.Rows[0][2])
	}

	wantOrgCols := []string{"Name", "Description"}
	if !reflect.DeepEqual(organizations.Columns, wantOrgCols) {
		t.Errorf("organization columns = %v, want %v", organizations.Columns, wantOrgCols)
	}
	if organizations.Rows[0][0] != "Analytical Engines" {
		t.Errorf("organization name = %q", organizations.Rows[0][0])
	}
}

func TestInvestorsFieldsAndShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields"); got != "profile/investors" {
			t.Errorf("fields = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"profile": {
					"investors": {
						"individuals": [],
						"organizations": [
							{"slug": "fund", "name": "Example Fund", "logo": null, "description": null}
						]
					}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	individuals, organizations, err := client.Investors("btc")
	if err != nil {
		t.Fatalf("Investors failed: %v", err)
	}
	if !individuals.Empty() {
		t.Error("expected no individual investors")
	}
	if organizations.Len() != 1 {
		t.Fatalf("expected 1 organization, got %d", organizations.Len())
	}
	if organizations.Rows[0][1] != "-" {
		t.Errorf("null description = %q, want placeholder", organizations.Rows[0][1])
	}
}
