package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

func About(p layout.Page, c *site.Content) g.Node {
	return layout.Layout(p,
		pageHero(
			g.Group([]g.Node{g.Text("Our Mission to Transform"), Br(), Span(Class("gradient-text"), g.Text("AI Conversations"))}),
			g.Text("At NexusAI, we're building the future of human-AI interaction, creating technology that understands, assists, and delights in a uniquely human way."),
		),
		Section(
			Class("py-12 bg-neutral-900 text-white"),
			container(Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-6"),
				g.Group(g.Map(c.Stats, func(s site.Stat) g.Node {
					return Div(
						Class("text-center"),
						P(Class("text-3xl md:text-4xl font-bold gradient-text mb-2"), g.Text(s.Value)),
						P(Class("text-neutral-400"), g.Text(s.Label)),
					)
				})),
			)),
		),
		story(c.Story),
		timeline(c.Timeline),
		Section(
			Class("py-16 md:py-24"),
			container(
				sectionTitle(g.Text("Our Values"), "The principles that guide everything we do at NexusAI."),
				Div(
					Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
					g.Group(g.Map(c.Values, func(v site.Value) g.Node {
						return Div(
							Class("bg-white p-8 rounded-2xl shadow-sm border border-neutral-200"),
							Div(Class("text-primary-500 mb-4"), ui.Icon(v.Icon+" size-8", "")),
							H3(Class("text-xl font-bold mb-3"), g.Text(v.Title)),
							P(Class("text-neutral-600"), g.Text(v.Description)),
						)
					})),
				),
			),
		),
		Section(
			Class("py-16 md:py-24 bg-neutral-50"),
			container(
				sectionTitle(g.Text("Our Leadership Team"), "Meet the passionate experts behind NexusAI."),
				Div(
					Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
					g.Group(g.Map(c.Team, member)),
				),
			),
		),
		Section(
			Class("py-16 md:py-24 bg-gradient-to-r from-primary-600 via-primary-500 to-secondary-500 text-white"),
			container(Div(
				Class("text-center max-w-3xl mx-auto"),
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Join Us on Our Mission")),
				P(Class("text-xl opacity-90 mb-8"), g.Text("Experience the future of AI conversation with NexusAI.")),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(Href("/signup"), Class("bg-white text-primary-600 hover:bg-neutral-100 btn-secondary"), g.Text("Get Started Free")),
					A(Href("/contact"), Class("border border-white hover:bg-white/10 text-white rounded-full py-3 px-6 transition-all duration-300"), g.Text("Contact Us")),
				),
			)),
		),
	)
}

func story(paragraphs []string) g.Node {
	return Section(
		Class("py-16 md:py-24"),
		container(Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
			Div(
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Our Story")),
				g.Group(g.Map(paragraphs, func(text string) g.Node {
					return P(Class("text-neutral-600 mb-4"), g.Text(text))
				})),
				A(
					Href("/contact"),
					Class("text-primary-600 font-medium hover:text-primary-700 flex items-center transition-colors"),
					Span(g.Text("Get in touch with our team")),
					ui.Icon("lucide--arrow-right size-4 ml-2", ""),
				),
			),
			Div(
				Class("relative rounded-2xl overflow-hidden h-full min-h-[320px] animated-gradient flex items-center justify-center"),
				ui.Icon("lucide--users size-24 text-white/80", "NexusAI team working together"),
			),
		)),
	)
}

func timeline(events []site.Milestone) g.Node {
	rows := make([]g.Node, 0, len(events))
	for i, e := range events {
		even := i%2 == 0
		align, row := "text-left", "flex items-start relative mb-12"
		if even {
			align, row = "text-right", row+" flex-row-reverse"
		}
		rows = append(rows, Div(
			Class(row),
			Div(
				Class("w-1/2 pr-8 "+align),
				Div(
					Class("mb-2 flex items-center justify-end"),
					Span(Class("text-sm font-medium bg-primary-100 text-primary-600 px-3 py-1 rounded-full"), g.Text(e.Year)),
				),
				H3(Class("text-xl font-bold mb-2"), g.Text(e.Title)),
				P(Class("text-neutral-600"), g.Text(e.Description)),
			),
			Div(
				Class("absolute left-1/2 transform -translate-x-1/2 flex items-center justify-center"),
				Div(Class("w-5 h-5 rounded-full bg-primary-500 border-4 border-white")),
			),
			Div(Class("w-1/2 pl-8")),
		))
	}

	return Section(
		Class("py-16 md:py-24 bg-neutral-50"),
		container(
			sectionTitle(g.Text("Our Journey"), "A look at the key milestones that have shaped NexusAI."),
			Div(
				Class("max-w-4xl mx-auto"),
				Div(
					Class("relative"),
					Div(Class("absolute left-1/2 transform -translate-x-1/2 h-full w-0.5 bg-neutral-200")),
					g.Group(rows),
				),
			),
		),
	)
}

func member(m site.Member) g.Node {
	return Div(
		Class("bg-white rounded-2xl overflow-hidden shadow-sm border border-neutral-200"),
		Div(
			Class("h-48 bg-neutral-200 flex items-center justify-center"),
			Div(Class("w-20 h-20 rounded-full bg-primary-100 text-primary-500 flex items-center justify-center text-2xl font-bold"), g.Text(initial(m.Name))),
		),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold mb-1"), g.Text(m.Name)),
			P(Class("text-primary-500 text-sm font-medium mb-4"), g.Text(m.Role)),
			P(Class("text-neutral-600"), g.Text(m.Bio)),
		),
	)
}
