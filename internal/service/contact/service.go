// Package contact simulates sending the contact form.
package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/form"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

var ErrInvalidForm = errors.New("form has validation errors")

var labels = map[string]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldSubject: "Subject",
	FieldMessage: "Message",
}

// NewForm returns an empty contact form.
func NewForm() *form.State {
	return form.New(FieldName, FieldEmail, FieldSubject, FieldMessage)
}

type Service struct {
	delay time.Duration
	log   *zap.Logger
}

func NewService(delay time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{delay: delay, log: log.Named("contact")}
}

// Validate requires every field to be non-empty, like the inputs' required attribute.
func Validate(f *form.State) bool {
	f.ClearErrors()
	for _, field := range f.Fields() {
		if f.Value(field) == "" {
			f.SetError(field, labels[field]+" is required")
		}
	}
	return !f.HasErrors()
}

// Submit schedules the simulated send. On success the form is cleared.
func (s *Service) Submit(m *interaction.Machine, f *form.State) (*interaction.Submission, error) {
	if !Validate(f) {
		metrics.Submissions.WithLabelValues("contact", "invalid").Inc()
		return nil, ErrInvalidForm
	}

	subject := f.Value(FieldSubject)
	sub, err := m.Submit(s.delay, func(context.Context) interaction.Result {
		f.Clear()
		metrics.Submissions.WithLabelValues("contact", "succeeded").Inc()
		s.log.Info("contact message accepted", zap.String("subject", subject))
		return interaction.Result{State: interaction.Succeeded}
	})
	if err != nil {
		return nil, err
	}
	metrics.Submissions.WithLabelValues("contact", "submitted").Inc()
	return sub, nil
}
