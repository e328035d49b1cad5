// Package dashboard serves the mock chat list screen.
package dashboard

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/service/dashboard"
	"github.com/zhouzirui/nexusai/internal/view/pages"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

type Handler struct {
	svc   *dashboard.Service
	frame page.Frame
	log   *zap.Logger
}

func New(svc *dashboard.Service, frame page.Frame, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, frame: frame, log: log.Named("dashboard")}
}

// RegisterRoutes 注册仪表盘页面路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handlePage)
}

// RegisterSubmitRoutes 注册收藏与删除操作
func (h *Handler) RegisterSubmitRoutes(r chi.Router) {
	r.Post("/dashboard/{sessionID}/chats/{chatID}/star", h.handleStar)
	r.Post("/dashboard/{sessionID}/chats/{chatID}/delete", h.handleDelete)
}

// handlePage shows an open board, or opens a fresh one when the request names none.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	board, err := h.svc.Get(q.Get("board"))
	if err != nil {
		board = h.svc.Open()
		v := pages.DashboardView{BoardID: board.ID}
		http.Redirect(w, r, v.URL(dashboard.ParseCategory(q.Get("category")), q.Get("q")), http.StatusSeeOther)
		return
	}

	items := board.Items()
	v := pages.DashboardView{
		BoardID:  board.ID,
		Query:    q.Get("q"),
		Category: dashboard.ParseCategory(q.Get("category")),
		Total:    len(items),
	}
	v.Items = dashboard.Filter(items, v.Query, v.Category)
	h.frame.Render(w, http.StatusOK, "dashboard", pages.Dashboard(h.frame.Page(r, "Dashboard"), v))
}

func (h *Handler) handleStar(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.svc.ToggleStar)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.svc.Delete)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, op func(boardID, chatID string) error) {
	boardID := chi.URLParam(r, "sessionID")
	chatID := chi.URLParam(r, "chatID")

	if err := op(boardID, chatID); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, dashboard.ErrSessionNotFound), errors.Is(err, dashboard.ErrChatNotFound):
			status = http.StatusNotFound
		default:
			h.log.Error("dashboard action failed", zap.Error(err))
		}
		if wantsJSON(r) {
			utils.RespondError(w, status, err.Error())
			return
		}
		h.frame.NotFound(w, r)
		return
	}

	if wantsJSON(r) {
		board, err := h.svc.Get(boardID)
		if err != nil {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]any{"items": board.Items()})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	v := pages.DashboardView{BoardID: boardID}
	http.Redirect(w, r, v.URL(dashboard.ParseCategory(r.PostForm.Get("category")), r.PostForm.Get("q")), http.StatusSeeOther)
}
