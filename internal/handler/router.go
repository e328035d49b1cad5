package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/handler/account"
	"github.com/zhouzirui/nexusai/internal/handler/chat"
	"github.com/zhouzirui/nexusai/internal/handler/contact"
	"github.com/zhouzirui/nexusai/internal/handler/content"
	"github.com/zhouzirui/nexusai/internal/handler/dashboard"
	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/handler/stream"
	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/metrics"
	middlewarePkg "github.com/zhouzirui/nexusai/internal/middleware"
	"github.com/zhouzirui/nexusai/internal/model/site"
	accountService "github.com/zhouzirui/nexusai/internal/service/account"
	chatService "github.com/zhouzirui/nexusai/internal/service/chat"
	contactService "github.com/zhouzirui/nexusai/internal/service/contact"
	dashboardService "github.com/zhouzirui/nexusai/internal/service/dashboard"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

// Deps are the services the router wires to HTTP.
type Deps struct {
	Log       *zap.Logger
	Frame     page.Frame
	Site      site.Store
	Chat      *chatService.Service
	Dashboard *dashboardService.Service
	Account   *accountService.Service
	Contact   *contactService.Service
	// Limiter guards the form and message posts; nil disables rate limiting.
	Limiter *middlewarePkg.RateLimiter
	// Scheduler drives the request-scoped form delays; nil means wall-clock timers.
	Scheduler interaction.Scheduler
	Static    fs.FS
	Metrics   bool
}

// NewRouter wires HTTP routes to core services.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Scheduler == nil {
		d.Scheduler = interaction.SystemScheduler{}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(d.Log))
	r.Use(middleware.Recoverer)

	pageHandler := page.New(d.Site, d.Frame)
	accountHandler := account.New(d.Account, d.Site, d.Frame, d.Scheduler, d.Log)
	contactHandler := contact.New(d.Contact, d.Site, d.Frame, d.Scheduler, d.Log)
	dashboardHandler := dashboard.New(d.Dashboard, d.Frame, d.Log)
	chatHandler := chat.New(d.Chat, d.Frame, d.Log)

	pageHandler.RegisterRoutes(r)
	accountHandler.RegisterRoutes(r)
	contactHandler.RegisterRoutes(r)
	dashboardHandler.RegisterRoutes(r)
	chatHandler.RegisterRoutes(r)
	stream.New(d.Chat, d.Log).RegisterRoutes(r)
	content.New(d.Site).RegisterRoutes(r)
	chat.NewWebSocketHandler(d.Chat, d.Log).RegisterWebSocketRoutes(r)

	r.Group(func(submit chi.Router) {
		if d.Limiter != nil {
			submit.Use(d.Limiter.Middleware)
		}
		accountHandler.RegisterSubmitRoutes(submit)
		contactHandler.RegisterSubmitRoutes(submit)
		dashboardHandler.RegisterSubmitRoutes(submit)
		chatHandler.RegisterSubmitRoutes(submit)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics {
		r.Handle("/metrics", metrics.Handler())
	}
	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(d.Static))))
	}

	r.NotFound(d.Frame.NotFound)

	return r
}
