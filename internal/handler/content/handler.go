package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

// Handler 以 JSON 形式提供站点内容（套餐与功能）
type Handler struct {
	store site.Store
}

// New 创建内容处理器
func New(store site.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 注册内容相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/plans", h.handleListPlans)
		r.Get("/plans/{planID}", h.handleGetPlan)
		r.Get("/features", h.handleListFeatures)
		r.Get("/features/{slug}", h.handleGetFeature)
	})
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Content().Plans)
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.store.FindPlan(chi.URLParam(r, "planID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "plan not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, plan)
}

func (h *Handler) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Content().Features)
}

func (h *Handler) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	feature, ok := h.store.FindFeature(chi.URLParam(r, "slug"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "feature not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, feature)
}
