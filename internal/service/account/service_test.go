package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/interaction/interactiontest"
	"github.com/zhouzirui/nexusai/internal/model/form"
)

const delay = 1500 * time.Millisecond

func newMachine(t *testing.T) (*interaction.Machine, *interactiontest.Scheduler) {
	t.Helper()
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)
	t.Cleanup(scope.Close)
	return interaction.NewMachine(scope), sched
}

func TestLoginEmptyFieldsFailsSynchronously(t *testing.T) {
	svc := NewService(delay, nil)

	for _, tc := range []struct{ email, password string }{
		{"", ""},
		{"a@b.co", ""},
		{"", "secret"},
	} {
		m, sched := newMachine(t)
		f := NewLoginForm()
		f.Edit(FieldEmail, tc.email)
		f.Edit(FieldPassword, tc.password)

		sub, err := svc.Login(m, f)

		assert.ErrorIs(t, err, ErrCredentialsMissing)
		assert.Nil(t, sub)
		assert.Equal(t, CredentialsMessage, f.Error(form.General))
		assert.Equal(t, interaction.Idle, m.State())
		assert.Equal(t, interaction.Failed, m.Last().State)
		assert.Empty(t, m.Last().Redirect)
		assert.Zero(t, sched.Pending())
		assert.Equal(t, tc.email, f.Value(FieldEmail))
	}
}

func TestLoginNavigatesAfterDelay(t *testing.T) {
	svc := NewService(delay, nil)
	m, sched := newMachine(t)
	f := NewLoginForm()
	f.Edit(FieldEmail, "a@b.co")
	f.Edit(FieldPassword, "x")

	sub, err := svc.Login(m, f)
	require.NoError(t, err)
	assert.Equal(t, interaction.Submitting, m.State())

	sched.Advance(delay - time.Millisecond)
	select {
	case <-sub.Done():
		t.Fatal("navigated before the delay")
	default:
	}

	sched.Advance(time.Millisecond)
	res, err := sub.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, interaction.Succeeded, res.State)
	assert.Equal(t, Destination, res.Redirect)
}

func TestLoginRetryClearsPreviousError(t *testing.T) {
	svc := NewService(delay, nil)
	m, _ := newMachine(t)
	f := NewLoginForm()

	_, err := svc.Login(m, f)
	require.ErrorIs(t, err, ErrCredentialsMissing)

	f.Edit(FieldEmail, "a@b.co")
	f.Edit(FieldPassword, "x")
	_, err = svc.Login(m, f)
	require.NoError(t, err)
	assert.Empty(t, f.Error(form.General))
}

func validSignup() *form.State {
	f := NewSignupForm()
	f.Edit(FieldName, "Ada")
	f.Edit(FieldEmail, "ada@example.com")
	f.Edit(FieldPassword, "password1")
	f.Edit(FieldConfirmPassword, "password1")
	return f
}

func TestSignupShortPassword(t *testing.T) {
	svc := NewService(delay, nil)
	m, sched := newMachine(t)
	f := validSignup()
	f.Edit(FieldPassword, "1234567")
	f.Edit(FieldConfirmPassword, "1234567")

	sub, err := svc.Signup(m, f)

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Nil(t, sub)
	assert.Equal(t, map[string]string{FieldPassword: "Password must be at least 8 characters"}, f.Errors())
	assert.Equal(t, interaction.Idle, m.State())
	assert.Zero(t, sched.Pending())
}

func TestSignupMismatchedConfirm(t *testing.T) {
	svc := NewService(delay, nil)
	m, sched := newMachine(t)
	f := validSignup()
	f.Edit(FieldConfirmPassword, "password2")

	_, err := svc.Signup(m, f)

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, map[string]string{FieldConfirmPassword: "Passwords do not match"}, f.Errors())
	assert.Zero(t, sched.Pending())
}

func TestValidateSignupMessages(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *form.State)
		field string
		want  string
	}{
		{"blank name", func(f *form.State) { f.Edit(FieldName, "   ") }, FieldName, "Name is required"},
		{"missing email", func(f *form.State) { f.Edit(FieldEmail, "") }, FieldEmail, "Email is required"},
		{"invalid email", func(f *form.State) { f.Edit(FieldEmail, "ada@example") }, FieldEmail, "Email is invalid"},
		{"missing password", func(f *form.State) {
			f.Edit(FieldPassword, "")
			f.Edit(FieldConfirmPassword, "")
		}, FieldPassword, "Password is required"},
		{"accented password too short", func(f *form.State) {
			f.Edit(FieldPassword, "éééé")
			f.Edit(FieldConfirmPassword, "éééé")
		}, FieldPassword, "Password must be at least 8 characters"},
		{"emoji password too short", func(f *form.State) {
			f.Edit(FieldPassword, "😀😀")
			f.Edit(FieldConfirmPassword, "😀😀")
		}, FieldPassword, "Password must be at least 8 characters"},
		{"seven han characters", func(f *form.State) {
			f.Edit(FieldPassword, "密码密码密码7")
			f.Edit(FieldConfirmPassword, "密码密码密码7")
		}, FieldPassword, "Password must be at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSignup()
			tt.edit(f)
			assert.False(t, ValidateSignup(f))
			assert.Equal(t, map[string]string{tt.field: tt.want}, f.Errors())
		})
	}
}

func TestValidateSignupCountsCharacters(t *testing.T) {
	f := validSignup()
	f.Edit(FieldPassword, "éééééééé")
	f.Edit(FieldConfirmPassword, "éééééééé")
	assert.True(t, ValidateSignup(f))
}

func TestSignupValidNavigatesAfterDelay(t *testing.T) {
	svc := NewService(delay, nil)
	m, sched := newMachine(t)

	sub, err := svc.Signup(m, validSignup())
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(delay)
	res, err := sub.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Destination, res.Redirect)
}
