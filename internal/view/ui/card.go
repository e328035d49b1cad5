package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type CardVariant string

const (
	CardDefault CardVariant = "default"
	CardGlass   CardVariant = "glass"
	CardOutline CardVariant = "outline"
)

var cardVariants = map[CardVariant]string{
	CardDefault: "bg-white border border-neutral-200 shadow-sm",
	CardGlass:   "glass-card",
	CardOutline: "border border-neutral-200 bg-transparent",
}

type CardProps struct {
	Variant   CardVariant
	Hover     bool
	NoPadding bool
	Class     string
}

// Card is a rounded container.
func Card(p CardProps, children ...g.Node) g.Node {
	variant, ok := cardVariants[p.Variant]
	if !ok {
		variant = cardVariants[CardDefault]
	}
	var hover, padding string
	if p.Hover {
		hover = "hover:shadow-md hover:-translate-y-1"
	}
	if !p.NoPadding {
		padding = "p-6"
	}
	return h.Div(
		h.Class(classes("rounded-2xl transition-all duration-300", variant, hover, padding, p.Class)),
		g.Group(children),
	)
}

// FeatureCard presents one capability with its icon.
func FeatureCard(icon, title, description string) g.Node {
	return h.Div(
		h.Class("glass-card overflow-hidden group"),
		h.Div(
			h.Class("p-6 sm:p-8"),
			h.Div(
				h.Class("mb-4 p-3 rounded-full bg-primary-100 w-fit text-primary-500 group-hover:bg-primary-500 group-hover:text-white transition-colors duration-300"),
				Icon(icon+" size-6", ""),
			),
			h.H3(h.Class("text-xl font-semibold mb-2 text-neutral-900 group-hover:text-primary-500 transition-colors"), g.Text(title)),
			h.P(h.Class("text-neutral-600"), g.Text(description)),
		),
		h.Div(h.Class("h-1 w-full bg-gradient-to-r from-primary-500 via-secondary-500 to-accent-400 group-hover:opacity-100 opacity-0 transition-opacity duration-300")),
	)
}

// Stars renders a rating out of five.
func Stars(rating int) g.Node {
	stars := make([]g.Node, 0, 5)
	for i := 0; i < 5; i++ {
		color := "text-neutral-300"
		if i < rating {
			color = "text-yellow-400"
		}
		stars = append(stars, Icon("lucide--star size-4 "+color, ""))
	}
	return h.Div(
		h.Class("flex mb-4"),
		g.Attr("aria-label", strconv.Itoa(rating)+" out of 5 stars"),
		g.Group(stars),
	)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
