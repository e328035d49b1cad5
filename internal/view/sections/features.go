package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// Heading renders a centred section title with one highlighted word.
func Heading(lead, highlight, tail, body string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16"),
		H2(
			Class("text-3xl md:text-4xl font-bold mb-6"),
			g.Text(lead+" "),
			Span(Class("gradient-text"), g.Text(highlight)),
			g.If(tail != "", g.Text(" "+tail)),
		),
		g.If(body != "", P(Class("text-lg text-neutral-600"), g.Text(body))),
	)
}

// FeaturesSection renders the feature card grid.
func FeaturesSection(features []site.Feature) g.Node {
	return Section(
		ID("features"),
		Class("py-16 md:py-24 bg-neutral-50"),
		Div(
			Class("container mx-auto px-4 md:px-8"),
			Heading("Powerful Features for", "Effortless", "Conversations",
				"NexusAI combines cutting-edge technology with intuitive design to create a chat experience that feels natural and productive."),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Group(g.Map(features, func(f site.Feature) g.Node {
					return ui.FeatureCard(f.Icon, f.Title, f.Description)
				})),
			),
		),
	)
}
