// Package account serves the login and signup screens.
package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/form"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/service/account"
	"github.com/zhouzirui/nexusai/internal/view/pages"
)

// Handler 登录与注册页面的HTTP处理器
type Handler struct {
	svc   *account.Service
	store site.Store
	frame page.Frame
	sched interaction.Scheduler
	log   *zap.Logger
}

// New 创建账户处理器
func New(svc *account.Service, store site.Store, frame page.Frame, sched interaction.Scheduler, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, store: store, frame: frame, sched: sched, log: log.Named("account")}
}

// RegisterRoutes 注册登录注册路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/login", h.handleLoginPage)
	r.Get("/signup", h.handleSignupPage)
}

// RegisterSubmitRoutes registers the form posts separately so the router can rate limit them.
func (h *Handler) RegisterSubmitRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Post("/signup", h.handleSignup)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, f *form.State) {
	h.frame.Render(w, status, "login", pages.Login(h.frame.Page(r, "Login"), pages.LoginView{Form: f}))
}

func (h *Handler) renderSignup(w http.ResponseWriter, r *http.Request, status int, f *form.State, plan string) {
	h.frame.Render(w, status, "signup", pages.Signup(h.frame.Page(r, "Sign Up"), pages.SignupView{Form: f, Plan: plan}))
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, account.NewLoginForm())
}

// plan keeps the pricing selection only when it names a real plan.
func (h *Handler) plan(id string) string {
	if _, ok := h.store.FindPlan(id); ok {
		return id
	}
	return ""
}

func (h *Handler) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, http.StatusOK, account.NewSignupForm(), h.plan(r.URL.Query().Get("plan")))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	f := form.FromValues(r.PostForm, account.FieldEmail, account.FieldPassword)

	scope := interaction.NewScope(r.Context(), h.sched)
	defer scope.Close()

	sub, err := h.svc.Login(interaction.NewMachine(scope), f)
	if errors.Is(err, account.ErrCredentialsMissing) {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, f)
		return
	}
	if err != nil {
		h.log.Error("login submit failed", zap.Error(err))
		http.Error(w, "login unavailable", http.StatusInternalServerError)
		return
	}
	h.await(w, r, sub, "login")
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	f := form.FromValues(r.PostForm, account.FieldName, account.FieldEmail, account.FieldPassword, account.FieldConfirmPassword)

	scope := interaction.NewScope(r.Context(), h.sched)
	defer scope.Close()

	sub, err := h.svc.Signup(interaction.NewMachine(scope), f)
	if errors.Is(err, account.ErrInvalidForm) {
		h.renderSignup(w, r, http.StatusUnprocessableEntity, f, h.plan(r.PostForm.Get("plan")))
		return
	}
	if err != nil {
		h.log.Error("signup submit failed", zap.Error(err))
		http.Error(w, "signup unavailable", http.StatusInternalServerError)
		return
	}
	h.await(w, r, sub, "signup")
}

// await holds the request for the simulated delay, then follows the result's redirect.
// A client that disconnects first releases the scope and gets nothing.
func (h *Handler) await(w http.ResponseWriter, r *http.Request, sub *interaction.Submission, flow string) {
	res, err := sub.Wait(r.Context())
	if err != nil {
		metrics.Submissions.WithLabelValues(flow, "cancelled").Inc()
		h.log.Debug("submission abandoned", zap.String("flow", flow), zap.Error(err))
		return
	}
	http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
}
