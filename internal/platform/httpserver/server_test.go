package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	lifecycleservice "canje/contexts/marketplace/lifecycle-service"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	module := lifecycleservice.NewInMemoryModule(nil, nil)
	server := New(module, nil, ":0")
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, userID string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	} else {
		payload.WriteString("{}")
	}

	req, err := http.NewRequest(method, ts.URL+path, &payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response for %s %s: %v", method, path, err)
	}
	return resp, decoded
}

func TestLifecycleFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodPost, "/v1/campaigns", "brand-1", map[string]any{
		"campaign_id": "camp-1",
		"title":       "Summer launch",
		"slots":       1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create campaign: status %d body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, ts, http.MethodPost, "/v1/applications", "creator-1", map[string]any{
		"campaign_id": "camp-1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply: status %d body %v", resp.StatusCode, body)
	}
	applicationID := body["application"].(map[string]any)["application_id"].(string)

	transition := func(target string) map[string]any {
		t.Helper()
		resp, body := doJSON(t, ts, http.MethodPost,
			fmt.Sprintf("/v1/applications/%s/transition", applicationID), "brand-1",
			map[string]any{"target": target})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("transition to %s: status %d body %v", target, resp.StatusCode, body)
		}
		return body
	}

	transition(string(entities.ApplicationStatusShortlisted))
	confirmed := transition(string(entities.ApplicationStatusConfirmed))
	deliverable, ok := confirmed["deliverable"].(map[string]any)
	if !ok {
		t.Fatalf("confirmation response missing deliverable: %v", confirmed)
	}
	deliverableID := deliverable["deliverable_id"].(string)

	resp, body = doJSON(t, ts, http.MethodPost,
		"/v1/deliverables/"+deliverableID+"/post-url", "creator-1",
		map[string]any{"post_url": "https://example.com/p/1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit post: status %d body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, ts, http.MethodPost,
		"/v1/deliverables/"+deliverableID+"/review", "brand-1",
		map[string]any{"action": "approve"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("review: status %d body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, ts, http.MethodPost,
		"/v1/deliverables/"+deliverableID+"/metrics", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics: status %d body %v", resp.StatusCode, body)
	}
	status := body["deliverable"].(map[string]any)["status"].(string)
	if status != string(entities.DeliverableStatusCompleted) {
		t.Fatalf("expected completed after approval+metrics, got %s", status)
	}

	resp, body = doJSON(t, ts, http.MethodPost,
		"/v1/deliverables/"+deliverableID+"/rating", "brand-1",
		map[string]any{"rating": 5, "comment": "great fit"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rating: status %d body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, ts, http.MethodGet,
		"/v1/deliverables/"+deliverableID+"/deadlines", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deadlines: status %d body %v", resp.StatusCode, body)
	}
	urlGate := body["url"].(map[string]any)
	if urlGate["code"].(string) != "completed" {
		t.Fatalf("expected completed url gate, got %v", urlGate["code"])
	}

	resp, body = doJSON(t, ts, http.MethodGet,
		"/v1/campaigns/camp-1/deliverables/buckets", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("buckets: status %d body %v", resp.StatusCode, body)
	}
	if int(body["completed"].(float64)) != 1 {
		t.Fatalf("expected 1 completed in buckets, got %v", body["completed"])
	}
}

func TestApplyRequiresUserHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodPost, "/v1/applications", "", map[string]any{
		"campaign_id": "camp-1",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body %v", resp.StatusCode, body)
	}
	if body["code"] != "missing_user" {
		t.Fatalf("unexpected error code %v", body["code"])
	}
}

func TestDomainErrorsMapToStatusCodes(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodGet, "/v1/deliverables/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body %v", resp.StatusCode, body)
	}
	if body["code"] != "deliverable_not_found" {
		t.Fatalf("unexpected error code %v", body["code"])
	}

	resp, body = doJSON(t, ts, http.MethodPost, "/v1/applications", "creator-1", map[string]any{
		"campaign_id": "ghost",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown campaign, got %d body %v", resp.StatusCode, body)
	}
}
