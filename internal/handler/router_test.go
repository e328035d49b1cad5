package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/middleware"
	chatModel "github.com/zhouzirui/nexusai/internal/model/chat"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/service/account"
	"github.com/zhouzirui/nexusai/internal/service/chat"
	"github.com/zhouzirui/nexusai/internal/service/contact"
	"github.com/zhouzirui/nexusai/internal/service/dashboard"
)

type echoReplier struct{}

func (echoReplier) Reply(_ context.Context, _ []chatModel.Message, msg string) (string, error) {
	return "re: " + msg, nil
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	chatSvc := chat.NewService(echoReplier{}, chat.Config{ReplyDelay: time.Hour, IdleTTL: time.Minute}, nil)
	t.Cleanup(chatSvc.Shutdown)

	return NewRouter(Deps{
		Frame:     page.Frame{SiteName: "NexusAI"},
		Site:      site.NewMemoryStore(site.Seed()),
		Chat:      chatSvc,
		Dashboard: dashboard.NewService(time.Minute, nil),
		Account:   account.NewService(0, nil),
		Contact:   contact.NewService(0, nil),
		Limiter:   limiter,
		Static:    fstest.MapFS{"app.js": {Data: []byte("// app")}},
		Metrics:   true,
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMarketingRoutes(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, path := range []string{"/", "/features", "/pricing", "/about", "/contact", "/login", "/signup"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSessionRoutesRedirectToFreshSession(t *testing.T) {
	r := newTestRouter(t, nil)
	for path, prefix := range map[string]string{
		"/chat":      "/chat?session=",
		"/dashboard": "/dashboard?board=",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), prefix), rec.Header().Get("Location"))
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
	assert.Contains(t, rec.Body.String(), `id="navbar"`)
}

func TestStaticAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "// app", rec.Body.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nexusai_page_views_total")
}

func TestSubmitRoutesAreRateLimited(t *testing.T) {
	r := newTestRouter(t, middleware.NewRateLimiter(60, 1, time.Minute))
	post := func() int {
		body := url.Values{"email": {""}, "password": {""}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "10.1.1.1:4000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
