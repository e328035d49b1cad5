package form_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhouzirui/nexusai/internal/model/form"
)

func TestEditClearsFieldError(t *testing.T) {
	s := form.New("name", "email")
	s.SetError("name", "Name is required")
	s.SetError("email", "Email is invalid")

	s.Edit("name", "Ada")

	assert.Equal(t, "Ada", s.Value("name"))
	assert.Empty(t, s.Error("name"))
	assert.Equal(t, "Email is invalid", s.Error("email"), "other fields keep their errors")
}

func TestFromValuesCopiesDeclaredFields(t *testing.T) {
	v := url.Values{"email": {"a@b.co"}, "password": {"secret"}, "extra": {"x"}}
	s := form.FromValues(v, "email", "password")

	assert.Equal(t, "a@b.co", s.Value("email"))
	assert.Equal(t, "secret", s.Value("password"))
	assert.Empty(t, s.Value("extra"))
	assert.Equal(t, []string{"email", "password"}, s.Fields())
}

func TestClearResetsValuesAndErrors(t *testing.T) {
	s := form.FromValues(url.Values{"subject": {"Hi"}}, "subject")
	s.SetError(form.General, "boom")

	s.Clear()

	assert.Empty(t, s.Value("subject"))
	assert.False(t, s.HasErrors())
}
