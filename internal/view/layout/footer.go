package layout

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/shell"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

type footerColumn struct {
	Title string
	Links []shell.Link
}

var footerColumns = []footerColumn{
	{Title: "Product", Links: []shell.Link{
		{Label: "Features", Href: "/features"},
		{Label: "Pricing", Href: "/pricing"},
		{Label: "Roadmap", Href: "#"},
		{Label: "API", Href: "#"},
	}},
	{Title: "Company", Links: []shell.Link{
		{Label: "About", Href: "/about"},
		{Label: "Blog", Href: "#"},
		{Label: "Careers", Href: "#"},
		{Label: "Contact", Href: "/contact"},
	}},
	{Title: "Resources", Links: []shell.Link{
		{Label: "Documentation", Href: "#"},
		{Label: "Support", Href: "#"},
		{Label: "Privacy", Href: "#"},
		{Label: "Terms", Href: "#"},
	}},
}

var socials = []struct{ Icon, Label string }{
	{"lucide--twitter", "Twitter"},
	{"lucide--linkedin", "LinkedIn"},
	{"lucide--github", "GitHub"},
	{"lucide--instagram", "Instagram"},
}

// SiteFooter renders the marketing footer with link columns and the copyright line.
func SiteFooter(siteName string, year int) g.Node {
	return Footer(
		ID("footer"),
		Class("bg-neutral-900 text-white pt-16 pb-8"),
		Div(
			Class("container mx-auto px-4 md:px-8"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-5 gap-8 mb-12"),
				Div(
					Class("lg:col-span-2"),
					Div(Class("mb-4"), ui.Logo(siteName, "text-white")),
					P(
						Class("text-neutral-400 mb-6 max-w-md"),
						g.Text("Experience the next generation of conversational AI with "+siteName+". We're redefining what's possible in human-AI interaction."),
					),
					Div(
						Class("flex space-x-4"),
						g.Group(g.Map(socials, func(s struct{ Icon, Label string }) g.Node {
							return A(Href("#"), Class("text-neutral-400 hover:text-white transition-colors"), g.Attr("aria-label", s.Label), ui.Icon(s.Icon+" size-5", ""))
						})),
					),
				),
				g.Group(g.Map(footerColumns, func(c footerColumn) g.Node {
					return Div(
						H3(Class("text-sm font-semibold uppercase tracking-wider mb-4"), g.Text(c.Title)),
						Ul(
							Class("space-y-3"),
							g.Group(g.Map(c.Links, func(l shell.Link) g.Node {
								return Li(A(Href(l.Href), Class("text-neutral-400 hover:text-white transition-colors"), g.Text(l.Label)))
							})),
						),
					)
				})),
			),
			Div(
				Class("pt-8 border-t border-neutral-800 flex flex-col md:flex-row items-center justify-between"),
				P(Class("text-neutral-500 text-sm mb-4 md:mb-0"), g.Raw("&copy; "), g.Text(strconv.Itoa(year)+" "+siteName+". All rights reserved.")),
				Div(
					Class("flex space-x-6"),
					A(Href("#"), Class("text-neutral-500 hover:text-white text-sm transition-colors"), g.Text("Privacy Policy")),
					A(Href("#"), Class("text-neutral-500 hover:text-white text-sm transition-colors"), g.Text("Terms of Service")),
					A(Href("#"), Class("text-neutral-500 hover:text-white text-sm transition-colors"), g.Text("Cookies")),
				),
			),
		),
	)
}
