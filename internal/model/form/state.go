package form

import "net/url"

// General keys errors that are not tied to a single field.
const General = "_form"

// State holds field values and their validation messages for one form.
type State struct {
	fields []string
	values map[string]string
	errors map[string]string
}

// New returns an empty state for the given fields.
func New(fields ...string) *State {
	return &State{
		fields: append([]string(nil), fields...),
		values: make(map[string]string, len(fields)),
		errors: make(map[string]string),
	}
}

// FromValues copies the named fields out of submitted form values.
func FromValues(v url.Values, fields ...string) *State {
	s := New(fields...)
	for _, f := range fields {
		s.values[f] = v.Get(f)
	}
	return s
}

// Fields lists the field names in declaration order.
func (s *State) Fields() []string {
	return append([]string(nil), s.fields...)
}

// Value returns the current text of field.
func (s *State) Value(field string) string {
	return s.values[field]
}

// Edit sets a field value and clears any error recorded for it.
func (s *State) Edit(field, value string) {
	s.values[field] = value
	delete(s.errors, field)
}

// SetError records a validation message for field.
func (s *State) SetError(field, message string) {
	s.errors[field] = message
}

// Error returns the validation message for field, if any.
func (s *State) Error(field string) string {
	return s.errors[field]
}

// Errors returns a copy of all validation messages.
func (s *State) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// HasErrors reports whether any validation message is set.
func (s *State) HasErrors() bool {
	return len(s.errors) > 0
}

// ClearErrors drops every validation message and keeps the values.
func (s *State) ClearErrors() {
	clear(s.errors)
}

// Clear resets all values and errors.
func (s *State) Clear() {
	for _, f := range s.fields {
		s.values[f] = ""
	}
	clear(s.errors)
}
