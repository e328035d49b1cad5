package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FieldProps configures Input and TextArea.
type FieldProps struct {
	Name         string
	Label        string
	Type         string
	Value        string
	Placeholder  string
	Error        string
	LeftIcon     string
	Required     bool
	AutoComplete string
	Rows         int
	Class        string
	Attrs        []g.Node
}

func (p FieldProps) id() string {
	if p.Name != "" {
		return p.Name
	}
	return strings.ReplaceAll(strings.ToLower(p.Label), " ", "-")
}

const fieldBase = "block w-full rounded-xl border border-neutral-200 bg-white transition-all duration-300 focus:ring-2 focus:ring-primary-300 focus:border-primary-300 outline-none p-3"

func (p FieldProps) controlClass() string {
	var errClass, iconClass string
	if p.Error != "" {
		errClass = "border-error-500 focus:ring-error-300 focus:border-error-300"
	}
	if p.LeftIcon != "" {
		iconClass = "pl-10"
	}
	return classes(fieldBase, errClass, iconClass)
}

func (p FieldProps) wrap(control g.Node) g.Node {
	id := p.id()
	return h.Div(
		h.Class(classes("w-full", p.Class)),
		g.Attr("data-field", p.Name),
		g.If(p.Label != "", h.Label(
			h.For(id),
			h.Class("block text-sm font-medium text-neutral-700 mb-1"),
			g.Text(p.Label),
		)),
		h.Div(
			h.Class("relative"),
			g.If(p.LeftIcon != "", h.Div(
				h.Class("absolute inset-y-0 left-0 flex items-center pl-3 pointer-events-none text-neutral-500"),
				Icon(p.LeftIcon, ""),
			)),
			control,
		),
		g.If(p.Error != "", h.P(
			h.Class("field-error mt-1 text-sm text-error-500"),
			h.ID(id+"-error"),
			g.Text(p.Error),
		)),
	)
}

// Input renders a labelled text input with an optional inline error.
func Input(p FieldProps) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	id := p.id()
	return p.wrap(h.Input(
		h.ID(id),
		h.Name(p.Name),
		h.Type(typ),
		h.Class(p.controlClass()),
		g.If(typ != "password", h.Value(p.Value)),
		g.If(p.Placeholder != "", h.Placeholder(p.Placeholder)),
		g.If(p.AutoComplete != "", h.AutoComplete(p.AutoComplete)),
		g.If(p.Required, h.Required()),
		g.If(p.Error != "", g.Group([]g.Node{
			g.Attr("aria-invalid", "true"),
			g.Attr("aria-describedby", id+"-error"),
		})),
		g.Group(p.Attrs),
	))
}

// TextArea renders a labelled multi-line input.
func TextArea(p FieldProps) g.Node {
	rows := p.Rows
	if rows <= 0 {
		rows = 5
	}
	return p.wrap(h.Textarea(
		h.ID(p.id()),
		h.Name(p.Name),
		h.Class(p.controlClass()),
		h.Rows(itoa(rows)),
		g.If(p.Placeholder != "", h.Placeholder(p.Placeholder)),
		g.If(p.Required, h.Required()),
		g.If(p.Error != "", g.Attr("aria-invalid", "true")),
		g.Group(p.Attrs),
		g.Text(p.Value),
	))
}
