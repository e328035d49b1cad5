package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Variant string

const (
	Primary   Variant = "primary"
	Secondary Variant = "secondary"
	Outline   Variant = "outline"
	Ghost     Variant = "ghost"
)

type Size string

const (
	Small  Size = "sm"
	Medium Size = "md"
	Large  Size = "lg"
)

var variantClasses = map[Variant]string{
	Primary:   "bg-primary-500 hover:bg-primary-600 text-white shadow-button hover:shadow-button-hover focus:ring-primary-500",
	Secondary: "bg-white hover:bg-neutral-100 text-primary-600 border border-neutral-200 shadow-sm hover:shadow focus:ring-primary-400",
	Outline:   "bg-transparent hover:bg-primary-50 text-primary-500 border border-primary-500 focus:ring-primary-400",
	Ghost:     "bg-transparent hover:bg-neutral-100 text-neutral-700 hover:text-primary-500 focus:ring-neutral-400",
}

var sizeClasses = map[Size]string{
	Small:  "text-xs px-3 py-2",
	Medium: "text-sm px-4 py-2.5",
	Large:  "text-base px-6 py-3",
}

const buttonBase = "btn inline-flex items-center justify-center rounded-full font-medium transition-all duration-300 focus:outline-none focus:ring-2 focus:ring-offset-2"

// ButtonProps configures Button and ButtonLink.
type ButtonProps struct {
	Variant   Variant
	Size      Size
	FullWidth bool
	// Loading shows the spinner and disables the button. The page script applies the same
	// state on submit.
	Loading   bool
	Disabled  bool
	Type      string
	LeftIcon  string
	RightIcon string
	Class     string
	Attrs     []g.Node
}

func (p ButtonProps) className() string {
	variant, ok := variantClasses[p.Variant]
	if !ok {
		variant = variantClasses[Primary]
	}
	size, ok := sizeClasses[p.Size]
	if !ok {
		size = sizeClasses[Medium]
	}

	var full, disabled, loading string
	if p.FullWidth {
		full = "w-full"
	}
	if p.Disabled || p.Loading {
		disabled = "opacity-50 cursor-not-allowed"
	}
	if p.Loading {
		loading = "is-loading"
	}
	return classes(buttonBase, variant, size, full, disabled, loading, p.Class)
}

func (p ButtonProps) content(label string) g.Node {
	return g.Group([]g.Node{
		h.Span(h.Class("btn-spinner"), g.Attr("aria-hidden", "true")),
		g.If(p.LeftIcon != "", h.Span(h.Class("btn-label mr-2"), Icon(p.LeftIcon, ""))),
		h.Span(h.Class("btn-label"), g.Text(label)),
		g.If(p.RightIcon != "", h.Span(h.Class("btn-label ml-2"), Icon(p.RightIcon, ""))),
	})
}

// Button renders a <button>. Buttons inside forms carry data-loading-button so the page
// script can switch them to the loading state on submit.
func Button(p ButtonProps, label string) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "button"
	}
	return h.Button(
		h.Type(typ),
		h.Class(p.className()),
		g.If(p.Disabled || p.Loading, h.Disabled()),
		g.If(typ == "submit", g.Attr("data-loading-button")),
		g.If(p.Loading, g.Attr("aria-busy", "true")),
		g.Group(p.Attrs),
		p.content(label),
	)
}

// ButtonLink renders an anchor styled as a button.
func ButtonLink(href string, p ButtonProps, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Class(p.className()),
		g.Group(p.Attrs),
		p.content(label),
	)
}
