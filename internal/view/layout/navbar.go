package layout

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/shell"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

func navLink(link shell.Link, path, extra string) g.Node {
	state := "text-neutral-700"
	if shell.Active(link, path) {
		state = "active-nav-link"
	}
	return A(
		Href(link.Href),
		Class(extra+" text-sm font-medium transition-colors hover:text-primary-500 "+state),
		g.If(shell.Active(link, path), g.Attr("aria-current", "page")),
		g.Text(link.Label),
	)
}

func action(a shell.Action, extra string) g.Node {
	if a.Primary {
		return A(Href(a.Href), Class("btn-primary "+extra), g.Text(a.Label))
	}
	return A(Href(a.Href), Class("text-neutral-700 hover:text-primary-500 font-medium text-sm "+extra), g.Text(a.Label))
}

// Navbar renders the fixed site header. App screens always use the scrolled style; elsewhere
// the page script toggles data-scrolled past shell.ScrollThreshold.
func Navbar(path, siteName string) g.Node {
	scrolled := "false"
	if shell.Scrolled(path, 0) {
		scrolled = "true"
	}
	actions := shell.Actions(path)

	return Header(
		ID("navbar"),
		g.Attr("data-scrolled", scrolled),
		g.If(shell.AppMode(path), g.Attr("data-app", "true")),
		Class("navbar fixed top-0 left-0 right-0 z-50 transition-all duration-300"),
		Div(
			Class("container mx-auto px-4 md:px-8"),
			Div(
				Class("flex items-center justify-between"),
				ui.Logo(siteName, "text-neutral-900"),
				Nav(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(shell.NavLinks, func(l shell.Link) g.Node {
						return navLink(l, path, "")
					})),
				),
				Div(
					Class("hidden md:flex items-center space-x-4"),
					g.Group(g.Map(actions, func(a shell.Action) g.Node {
						return action(a, "")
					})),
				),
				Details(
					Class("md:hidden mobile-menu"),
					Summary(
						Class("p-2 text-neutral-700 hover:text-primary-500 transition-colors list-none cursor-pointer"),
						g.Attr("aria-label", "Toggle menu"),
						ui.Icon("lucide--menu size-6", ""),
					),
					Div(
						Class("absolute left-0 right-0 bg-white shadow-md px-4 py-4 space-y-4"),
						g.Group(g.Map(shell.NavLinks, func(l shell.Link) g.Node {
							return navLink(l, path, "block py-2")
						})),
						Div(
							Class("pt-4 border-t border-neutral-200 space-y-4"),
							g.Group(g.Map(actions, func(a shell.Action) g.Node {
								return action(a, "block text-center")
							})),
						),
					),
				),
			),
		),
	)
}
