package account

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
	"github.com/zhouzirui/nexusai/internal/service/account"
)

func setupRouter() *chi.Mux {
	svc := account.NewService(0, nil)
	h := New(svc, site.NewMemoryStore(site.Seed()), page.Frame{SiteName: "NexusAI"}, interaction.SystemScheduler{}, nil)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	h.RegisterSubmitRoutes(r)
	return r
}

func post(r http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestLoginEmptyFieldsShowsBanner(t *testing.T) {
	r := setupRouter()

	resp := post(r, "/login", url.Values{"email": {"ada@example.com"}})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, account.CredentialsMessage) {
		t.Fatal("expected credential banner")
	}
	if !strings.Contains(body, `value="ada@example.com"`) {
		t.Fatal("expected email to be retained")
	}
}

func TestLoginRedirectsToDashboard(t *testing.T) {
	r := setupRouter()

	resp := post(r, "/login", url.Values{"email": {"a@b.co"}, "password": {"x"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestSignupShortPassword(t *testing.T) {
	r := setupRouter()

	resp := post(r, "/signup", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"1234567"},
		"confirmPassword": {"1234567"},
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Password must be at least 8 characters") {
		t.Fatal("expected password error")
	}
}

func TestSignupMismatchedConfirm(t *testing.T) {
	r := setupRouter()

	resp := post(r, "/signup", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"12345678"},
		"confirmPassword": {"12345679"},
	})
	if !strings.Contains(resp.Body.String(), "Passwords do not match") {
		t.Fatal("expected confirm error")
	}
}

func TestSignupValidRedirects(t *testing.T) {
	r := setupRouter()

	resp := post(r, "/signup", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"12345678"},
		"confirmPassword": {"12345678"},
	})
	if resp.Code != http.StatusSeeOther || resp.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard, got %d %q", resp.Code, resp.Header().Get("Location"))
	}
}

func TestSignupPageKeepsKnownPlan(t *testing.T) {
	r := setupRouter()

	for plan, want := range map[string]bool{"pro": true, "bogus": false} {
		req := httptest.NewRequest(http.MethodGet, "/signup?plan="+plan, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		got := strings.Contains(resp.Body.String(), `name="plan"`)
		if got != want {
			t.Fatalf("plan %s: hidden field present=%v, want %v", plan, got, want)
		}
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

func TestAbandonedLoginCountsCancelled(t *testing.T) {
	sched := interactiontest.New()
	h := New(account.NewService(time.Hour, nil), site.NewMemoryStore(site.Seed()), page.Frame{SiteName: "NexusAI"}, sched, nil)
	r := chi.NewRouter()
	h.RegisterSubmitRoutes(r)

	resp := postUntilPending(t, r, sched, "/login", url.Values{"email": {"ada@example.com"}, "password": {"secret"}})
	if resp.Header().Get("Location") != "" {
		t.Fatalf("abandoned login should not redirect, got %q", resp.Header().Get("Location"))
	}
	if got := submissionCount(t, "login", "cancelled"); got != "1" {
		t.Fatalf("expected 1 cancelled login, got %s", got)
	}
}
