package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/interaction/interactiontest"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/service/contact"
)

func setupRouter() *chi.Mux {
	h := New(contact.NewService(0, nil), site.NewMemoryStore(site.Seed()), page.Frame{SiteName: "NexusAI"}, interaction.SystemScheduler{}, nil)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	h.RegisterSubmitRoutes(r)
	return r
}

func TestSubmitMissingFields(t *testing.T) {
	r := setupRouter()
	body := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}}

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	html := resp.Body.String()
	for _, msg := range []string{"Subject is required", "Message is required"} {
		if !strings.Contains(html, msg) {
			t.Fatalf("expected %q", msg)
		}
	}
	if !strings.Contains(html, `value="Ada"`) {
		t.Fatal("expected name to be retained")
	}
}

func TestSubmitThenConfirmation(t *testing.T) {
	r := setupRouter()
	body := url.Values{
		"name": {"Ada"}, "email": {"ada@example.com"},
		"subject": {"Hello"}, "message": {"Just saying hi"},
	}

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	loc := resp.Header().Get("Location")

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, loc, nil))
	html := resp.Body.String()
	if !strings.Contains(html, "Message Sent!") {
		t.Fatal("expected confirmation block")
	}
	if strings.Contains(html, `id="contact-form"`) {
		t.Fatal("form should be replaced after sending")
	}
}

func submissionCount(t *testing.T, flow, outcome string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	prefix := `nexusai_submissions_total{flow="` + flow + `",outcome="` + outcome + `"} `
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return "0"
}

// postUntilPending sends the form in the background and cancels the request once its delay
// is scheduled, the way a browser abandons a slow submit.
func postUntilPending(t *testing.T, r http.Handler, sched *interactiontest.Scheduler, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode())).WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(resp, req)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for sched.Pending() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("submission never scheduled")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after cancellation")
	}
	return resp
}

func TestAbandonedContactCountsCancelled(t *testing.T) {
	sched := interactiontest.New()
	h := New(contact.NewService(time.Hour, nil), site.NewMemoryStore(site.Seed()), page.Frame{SiteName: "NexusAI"}, sched, nil)
	r := chi.NewRouter()
	h.RegisterSubmitRoutes(r)

	body := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "subject": {"Hi"}, "message": {"Hello"}}
	resp := postUntilPending(t, r, sched, "/contact", body)
	if resp.Header().Get("Location") != "" {
		t.Fatalf("abandoned contact should not redirect, got %q", resp.Header().Get("Location"))
	}
	if got := submissionCount(t, "contact", "cancelled"); got != "1" {
		t.Fatalf("expected 1 cancelled contact, got %s", got)
	}
}
