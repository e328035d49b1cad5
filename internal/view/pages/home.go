package pages

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/sections"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

func Home(p layout.Page, c *site.Content) g.Node {
	return layout.Layout(p,
		sections.Hero(c.Hero),
		sections.FeaturesSection(c.Features),
		testimonials(c.Testimonials),
		homeCTA(),
		sections.PricingSection(c.Plans),
	)
}

func testimonials(items []site.Testimonial) g.Node {
	return Section(
		Class("py-16 md:py-24 bg-neutral-900 text-white"),
		container(
			Div(
				Class("text-center max-w-3xl mx-auto mb-16"),
				H2(Class("text-3xl md:text-4xl font-bold mb-6"), highlighted("Loved by", "Thousands", "of Users")),
				P(Class("text-lg text-neutral-300"), g.Text("Here's what people are saying about their experience with NexusAI.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(items, func(t site.Testimonial) g.Node {
					return Div(
						Class("bg-neutral-800 p-6 rounded-2xl border border-neutral-700"),
						ui.Stars(t.Rating),
						P(Class("text-neutral-300 mb-6"), g.Text(t.Text)),
						Div(
							Class("flex items-center"),
							Div(
								Class("mr-4"),
								Div(Class("w-10 h-10 rounded-full bg-primary-500 flex items-center justify-center text-white font-medium"), g.Text(initial(t.Name))),
							),
							Div(
								P(Class("font-medium text-white"), g.Text(t.Name)),
								P(Class("text-sm text-neutral-400"), g.Text(t.Role)),
							),
						),
					)
				})),
			),
		),
	)
}

func homeCTA() g.Node {
	return Section(
		Class("py-16 md:py-24 relative overflow-hidden"),
		Div(Class("absolute inset-0 animated-gradient opacity-10 -z-10")),
		container(
			Div(
				Class("max-w-4xl mx-auto bg-white rounded-2xl shadow-xl overflow-hidden"),
				Div(
					Class("p-8 md:p-12 flex flex-col md:flex-row items-center"),
					Div(
						Class("md:w-2/3 mb-8 md:mb-0 md:pr-8"),
						H2(Class("text-3xl font-bold mb-4"), g.Text("Ready to Experience Smarter Conversations?")),
						P(Class("text-neutral-600 mb-6"), g.Text("Start chatting with NexusAI today and discover why thousands of users trust us for their AI conversation needs.")),
						Div(
							Class("space-y-3"),
							checkItem("No credit card required"),
							checkItem("Free tier available"),
							checkItem("Cancel anytime"),
						),
					),
					Div(
						Class("md:w-1/3 flex justify-center md:justify-end"),
						A(Href("/signup"), Class("btn-primary flex items-center whitespace-nowrap"),
							Span(g.Text("Get Started Free")),
							ui.Icon("lucide--arrow-right size-4 ml-2", ""),
						),
					),
				),
			),
		),
	)
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}
