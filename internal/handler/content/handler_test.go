package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/nexusai/internal/model/site"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(site.NewMemoryStore(site.Seed())).RegisterRoutes(r)
	return r
}

func TestListPlans(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var plans []site.Plan
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
}

func TestGetPlan(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/plans/pro", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var plan site.Plan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if plan.ID != "pro" || !plan.Popular {
		t.Fatalf("unexpected plan: %+v", plan)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/plans/enterprise", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetFeature(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/features/privacy", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var feature site.Feature
	if err := json.NewDecoder(resp.Body).Decode(&feature); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if feature.Slug != "privacy" || feature.Title == "" {
		t.Fatalf("unexpected feature: %+v", feature)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/features/teleport", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
