package integration

import (
	"net/http"
	"testing"
)

func TestShareFlow_PublicTrip(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "sharer@test.com", "password123")

	// Create a public trip and read back its share token.
	rec := app.request("POST", "/api/v1/trips",
		`{"title":"Open Itinerary","start_date":"2025-06-01","end_date":"2025-06-30","budget_limit":800,"is_public":true}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trip failed: %d %s", rec.Code, rec.Body.String())
	}
	trip := parseJSON(t, rec)["trip"].(map[string]interface{})
	tripID := trip["id"].(string)
	shareToken := trip["share_token"].(string)
	if len(shareToken) != 64 {
		t.Fatalf("expected 64-char share token, got %q", shareToken)
	}

	app.addDestination(t, token, tripID, "Rome", "Italy", "2025-06-05", "2025-06-12")

	// The shared view is public: no Authorization header.
	rec = app.request("GET", "/api/v1/trips/shared/"+shareToken, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("shared view failed: %d %s", rec.Code, rec.Body.String())
	}
	shared := parseJSON(t, rec)["trip"].(map[string]interface{})
	if shared["title"] != "Open Itinerary" {
		t.Errorf("expected title Open Itinerary, got %v", shared["title"])
	}
	dests := shared["destinations"].([]interface{})
	if len(dests) != 1 {
		t.Errorf("expected 1 destination in shared view, got %d", len(dests))
	}

	// The owner's identity and the token itself are stripped.
	if _, ok := shared["user_id"]; ok {
		t.Error("expected user_id stripped from shared view")
	}
	if _, ok := shared["share_token"]; ok {
		t.Error("expected share_token stripped from shared view")
	}
}

func TestShareFlow_PrivateTripNotResolvable(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "hermit@test.com", "password123")

	rec := app.request("POST", "/api/v1/trips",
		`{"title":"Secret Trip","start_date":"2025-06-01","end_date":"2025-06-30"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trip failed: %d %s", rec.Code, rec.Body.String())
	}
	trip := parseJSON(t, rec)["trip"].(map[string]interface{})
	shareToken := trip["share_token"].(string)

	// A valid token on a private trip resolves to 404.
	rec = app.request("GET", "/api/v1/trips/shared/"+shareToken, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for private trip, got %d: %s", rec.Code, rec.Body.String())
	}

	// Flipping the trip public makes the same token resolve.
	tripID := trip["id"].(string)
	rec = app.request("PUT", "/api/v1/trips/"+tripID, `{"is_public":true}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update trip failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/trips/shared/"+shareToken, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after making trip public, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestShareFlow_UnknownToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/trips/shared/0000000000000000000000000000000000000000000000000000000000000000", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %d: %s", rec.Code, rec.Body.String())
	}
}
