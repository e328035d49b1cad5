// Package ui holds the presentational primitives shared by every page.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders an Iconify icon. iconClass is "set--name" optionally followed by size
// classes, e.g. "lucide--zap size-6".
func Icon(iconClass, ariaLabel string) g.Node {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return nil
	}
	name := strings.Replace(parts[0], "--", ":", 1)
	classes := "iconify inline-block"
	if len(parts) > 1 {
		classes += " " + strings.Join(parts[1:], " ")
	}

	if ariaLabel != "" {
		return h.Span(
			h.Class(classes),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return h.Span(
		h.Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// Logo is the brand mark used in the navbar, footer and auth cards.
func Logo(siteName, textClass string) g.Node {
	return h.A(
		h.Href("/"),
		h.Class("flex items-center space-x-2"),
		Icon("lucide--message-square size-7 text-primary-500", ""),
		h.Span(h.Class("text-xl md:text-2xl font-bold "+textClass), g.Text(siteName)),
	)
}

// classes joins the non-empty class fragments.
func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
