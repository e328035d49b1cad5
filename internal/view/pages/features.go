package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

func Features(p layout.Page, c *site.Content) g.Node {
	return layout.Layout(p,
		pageHero(
			g.Group([]g.Node{g.Text("Features that Make NexusAI "), Br(), Span(Class("gradient-text"), g.Text("Exceptional"))}),
			g.Text("Discover how NexusAI combines cutting-edge AI technology with thoughtful design to create a chat experience that's truly remarkable."),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				A(Href("/signup"), Class("btn-primary"), g.Text("Try For Free")),
				A(Href("#features"), Class("btn-secondary"), g.Text("Explore Features")),
			),
		),
		featureDetails(c.Features),
		comparisonTable(c.Comparison),
		featuresCTA(),
	)
}

func featureDetails(features []site.Feature) g.Node {
	return Section(
		ID("features"),
		Class("py-16 md:py-24 bg-neutral-50"),
		container(
			Div(
				Class("text-center max-w-3xl mx-auto mb-16"),
				Div(
					Class("flex items-center justify-center space-x-2 mb-6"),
					ui.Icon("lucide--sparkles size-5 text-primary-500", ""),
					Span(Class("text-primary-600 font-medium"), g.Text("Cutting-Edge Capabilities")),
				),
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Powerful Features for Modern Conversations")),
				P(Class("text-lg text-neutral-600"), g.Text("Every feature is designed to make your AI interactions more natural, productive, and enjoyable.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8 mb-16"),
				g.Group(g.Map(features, func(f site.Feature) g.Node {
					return Div(
						ID(f.Slug),
						Class("bg-white rounded-2xl shadow-md overflow-hidden border border-neutral-200"),
						Div(
							Class("p-8"),
							Div(
								Class("flex items-center mb-6"),
								Div(Class("p-3 rounded-lg bg-primary-100 text-primary-500 mr-4"), ui.Icon(f.Icon+" size-8", "")),
								H3(Class("text-2xl font-bold"), g.Text(f.Title)),
							),
							P(Class("text-neutral-600 mb-6"), g.Text(f.Description)),
							Ul(
								Class("space-y-3"),
								g.Group(g.Map(f.Details, func(d string) g.Node {
									return Li(
										Class("flex items-start"),
										ui.Icon("lucide--check size-[18px] text-primary-500 mr-2 mt-1 flex-shrink-0", ""),
										Span(Class("text-neutral-700"), g.Text(d)),
									)
								})),
							),
						),
					)
				})),
			),
		),
	)
}

func comparisonTable(rows []site.Comparison) g.Node {
	body := make([]g.Node, 0, len(rows))
	for i, row := range rows {
		stripe := "bg-white"
		if i%2 == 1 {
			stripe = "bg-neutral-50"
		}
		body = append(body, Tr(
			Class(stripe),
			Td(Class("py-4 px-6 font-medium"), g.Text(row.Feature)),
			Td(Class("py-4 px-6 bg-primary-50 text-primary-900 font-medium"), g.Text(row.Ours)),
			Td(Class("py-4 px-6 text-neutral-600"), g.Text(row.Others)),
		))
	}

	return Section(
		Class("py-16 md:py-24"),
		container(
			sectionTitle(highlighted("Why Choose", "NexusAI", "?"), "See how NexusAI compares to other AI assistants in the market."),
			Div(
				Class("max-w-4xl mx-auto overflow-x-auto"),
				Table(
					Class("w-full border-collapse"),
					THead(Tr(
						Class("bg-neutral-900 text-white"),
						Th(Class("py-4 px-6 text-left rounded-tl-lg"), g.Text("Feature")),
						Th(Class("py-4 px-6 text-left bg-primary-600"), g.Text("NexusAI")),
						Th(Class("py-4 px-6 text-left rounded-tr-lg"), g.Text("Other AI Assistants")),
					)),
					TBody(g.Group(body)),
				),
			),
		),
	)
}

func featuresCTA() g.Node {
	return Section(
		Class("py-16 md:py-24 bg-gradient-to-r from-primary-600 via-primary-500 to-secondary-500 text-white"),
		container(
			Div(
				Class("text-center max-w-3xl mx-auto"),
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Ready to Experience NexusAI?")),
				P(Class("text-xl opacity-90 mb-8"), g.Text("Join thousands of users who are already enjoying smarter, more productive AI conversations.")),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(Href("/signup"), Class("bg-white text-primary-600 hover:bg-neutral-100 btn-secondary"), g.Text("Get Started Free")),
					A(Href("/pricing"), Class("border border-white hover:bg-white/10 text-white rounded-full py-3 px-6 transition-all duration-300"), g.Text("View Pricing")),
				),
			),
		),
	)
}
