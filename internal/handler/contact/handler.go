// Package contact serves the contact page and its message form.
package contact

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
	"github.com/zhouzirui/nexusai/internal/service/contact"
	"github.com/zhouzirui/nexusai/internal/view/pages"
)

// sentParam marks the page shown after a successful submit.
const sentParam = "sent"

type Handler struct {
	svc   *contact.Service
	store site.Store
	frame page.Frame
	sched interaction.Scheduler
	log   *zap.Logger
}

func New(svc *contact.Service, store site.Store, frame page.Frame, sched interaction.Scheduler, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, store: store, frame: frame, sched: sched, log: log.Named("contact")}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/contact", h.handlePage)
}

func (h *Handler) RegisterSubmitRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, v pages.ContactView) {
	h.frame.Render(w, status, "contact", pages.Contact(h.frame.Page(r, "Contact"), h.store.Content(), v))
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.ContactView{
		Form:      contact.NewForm(),
		Submitted: r.URL.Query().Has(sentParam),
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	f := form.FromValues(r.PostForm, contact.FieldName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage)

	scope := interaction.NewScope(r.Context(), h.sched)
	defer scope.Close()

	sub, err := h.svc.Submit(interaction.NewMachine(scope), f)
	if errors.Is(err, contact.ErrInvalidForm) {
		h.render(w, r, http.StatusUnprocessableEntity, pages.ContactView{Form: f})
		return
	}
	if err != nil {
		h.log.Error("contact submit failed", zap.Error(err))
		http.Error(w, "contact unavailable", http.StatusInternalServerError)
		return
	}

	if _, err := sub.Wait(r.Context()); err != nil {
		metrics.Submissions.WithLabelValues("contact", "cancelled").Inc()
		h.log.Debug("submission abandoned", zap.Error(err))
		return
	}
	http.Redirect(w, r, "/contact?"+sentParam+"=1", http.StatusSeeOther)
}
