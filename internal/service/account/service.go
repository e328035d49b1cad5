// Package account simulates sign-in and sign-up: validate, wait, then send the visitor to
// the dashboard. Nothing is stored and no credential is checked.
package account

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/form"
)

// Destination is where a successful login or signup lands.
const Destination = "/dashboard"

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// CredentialsMessage is the shared login error shown above the form.
const CredentialsMessage = "Please enter both email and password"

const minPasswordLength = 8

var (
	ErrCredentialsMissing = errors.New("email and password are required")
	ErrInvalidForm        = errors.New("form has validation errors")
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// NewLoginForm returns an empty login form.
func NewLoginForm() *form.State {
	return form.New(FieldEmail, FieldPassword)
}

// NewSignupForm returns an empty signup form.
func NewSignupForm() *form.State {
	return form.New(FieldName, FieldEmail, FieldPassword, FieldConfirmPassword)
}

// Service drives the login and signup flows.
type Service struct {
	delay time.Duration
	log   *zap.Logger
}

func NewService(delay time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{delay: delay, log: log.Named("account")}
}

func (s *Service) succeed(flow string) func(context.Context) interaction.Result {
	return func(context.Context) interaction.Result {
		metrics.Submissions.WithLabelValues(flow, "succeeded").Inc()
		s.log.Debug("simulated sign-in complete", zap.String("flow", flow))
		return interaction.Result{State: interaction.Succeeded, Redirect: Destination}
	}
}

// Login fails immediately when either credential is empty, recording CredentialsMessage on
// the form. Otherwise it schedules the redirect to Destination.
func (s *Service) Login(m *interaction.Machine, f *form.State) (*interaction.Submission, error) {
	f.ClearErrors()
	if f.Value(FieldEmail) == "" || f.Value(FieldPassword) == "" {
		f.SetError(form.General, CredentialsMessage)
		m.Fail(ErrCredentialsMissing)
		metrics.Submissions.WithLabelValues("login", "failed").Inc()
		return nil, ErrCredentialsMissing
	}

	sub, err := m.Submit(s.delay, s.succeed("login"))
	if err != nil {
		return nil, err
	}
	metrics.Submissions.WithLabelValues("login", "submitted").Inc()
	return sub, nil
}

// ValidateSignup records one message per offending field and reports whether the form is valid.
func ValidateSignup(f *form.State) bool {
	f.ClearErrors()

	if strings.TrimSpace(f.Value(FieldName)) == "" {
		f.SetError(FieldName, "Name is required")
	}

	email := f.Value(FieldEmail)
	switch {
	case strings.TrimSpace(email) == "":
		f.SetError(FieldEmail, "Email is required")
	case !emailPattern.MatchString(email):
		f.SetError(FieldEmail, "Email is invalid")
	}

	password := f.Value(FieldPassword)
	switch {
	case password == "":
		f.SetError(FieldPassword, "Password is required")
	case utf8.RuneCountInString(password) < minPasswordLength:
		f.SetError(FieldPassword, "Password must be at least 8 characters")
	}

	if password != f.Value(FieldConfirmPassword) {
		f.SetError(FieldConfirmPassword, "Passwords do not match")
	}

	return !f.HasErrors()
}

// Signup validates synchronously; an invalid form leaves the machine Idle and schedules nothing.
func (s *Service) Signup(m *interaction.Machine, f *form.State) (*interaction.Submission, error) {
	if !ValidateSignup(f) {
		metrics.Submissions.WithLabelValues("signup", "invalid").Inc()
		return nil, ErrInvalidForm
	}

	sub, err := m.Submit(s.delay, s.succeed("signup"))
	if err != nil {
		return nil, err
	}
	metrics.Submissions.WithLabelValues("signup", "submitted").Inc()
	return sub, nil
}
