package page

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/nexusai/internal/model/site"
)

func setupRouter() *chi.Mux {
	frame := Frame{SiteName: "NexusAI", Now: func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }}
	h := New(site.NewMemoryStore(site.Seed()), frame)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.NotFound(frame.NotFound)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestStaticPagesRender(t *testing.T) {
	r := setupRouter()
	titles := map[string]string{
		"/":         "<title>NexusAI - Intelligent Conversation Partner</title>",
		"/features": "<title>Features - NexusAI</title>",
		"/pricing":  "<title>Pricing - NexusAI</title>",
		"/about":    "<title>About - NexusAI</title>",
	}

	for path, title := range titles {
		resp := get(r, path)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
		if !strings.Contains(resp.Body.String(), title) {
			t.Fatalf("%s: missing %s", path, title)
		}
		if !strings.Contains(resp.Body.String(), "2025 NexusAI. All rights reserved.") {
			t.Fatalf("%s: footer year not rendered", path)
		}
	}
}

func TestPricingAnnualToggle(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/pricing?billing=annual")
	if !strings.Contains(resp.Body.String(), "month, billed annually") {
		t.Fatal("expected annual billing period")
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/does-not-exist")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, `id="navbar"`) {
		t.Fatal("expected 404 page inside the marketing layout")
	}
}

func TestTrailingSlashRedirectsToPage(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/pricing/?billing=annual")
	if resp.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/pricing?billing=annual" {
		t.Fatalf("unexpected location %q", loc)
	}

	resp = get(r, "/pricing/extra")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), `aria-current="page"`) {
		t.Fatal("404 page should not mark a nav link active")
	}
}
