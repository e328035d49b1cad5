// Package page serves the static marketing pages and the shared page frame used by every
// HTML handler.
package page

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/shell"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/pages"
	"github.com/zhouzirui/nexusai/internal/view/sections"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

// Frame carries what every rendered document needs besides its content.
type Frame struct {
	SiteName string
	Now      func() time.Time
}

// Page describes the document for the request path.
func (f Frame) Page(r *http.Request, title string) layout.Page {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return layout.Page{
		Path:     r.URL.Path,
		Title:    title,
		SiteName: f.SiteName,
		Year:     now().Year(),
	}
}

// Render writes node with status and counts one view of the named page.
func (f Frame) Render(w http.ResponseWriter, status int, name string, node g.Node) {
	metrics.PageViews.WithLabelValues(name).Inc()
	w.Header().Set("Cache-Control", "no-store")
	utils.RenderHTML(w, status, node)
}

// NotFound renders the 404 page inside the marketing layout. Trailing-slash spellings of
// real pages are redirected to the page instead.
func (f Frame) NotFound(w http.ResponseWriter, r *http.Request) {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path != "/" && shell.Known(r.URL.Path) {
		target := strings.TrimRight(r.URL.Path, "/")
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}
	f.Render(w, http.StatusNotFound, "not_found", pages.NotFound(f.Page(r, "Page Not Found")))
}

// Handler serves pages whose content never changes per request.
type Handler struct {
	frame Frame
	store site.Store
}

func New(store site.Store, frame Frame) *Handler {
	return &Handler{frame: frame, store: store}
}

// RegisterRoutes 注册静态页面路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/features", h.handleFeatures)
	r.Get("/pricing", h.handlePricing)
	r.Get("/about", h.handleAbout)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.frame.Render(w, http.StatusOK, "home", pages.Home(h.frame.Page(r, ""), h.store.Content()))
}

func (h *Handler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	h.frame.Render(w, http.StatusOK, "features", pages.Features(h.frame.Page(r, "Features"), h.store.Content()))
}

func (h *Handler) handlePricing(w http.ResponseWriter, r *http.Request) {
	billing := sections.Billing{Annual: r.URL.Query().Get("billing") == "annual"}
	h.frame.Render(w, http.StatusOK, "pricing", pages.Pricing(h.frame.Page(r, "Pricing"), h.store.Content(), billing))
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.frame.Render(w, http.StatusOK, "about", pages.About(h.frame.Page(r, "About"), h.store.Content()))
}
