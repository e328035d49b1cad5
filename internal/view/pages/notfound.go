package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/view/layout"
)

func NotFound(p layout.Page) g.Node {
	return layout.Layout(p, Section(
		ID("not-found"),
		Class("pt-28 pb-16 md:pt-36 md:pb-24 min-h-[60vh] flex items-center"),
		container(Div(
			Class("text-center max-w-xl mx-auto"),
			P(Class("text-6xl font-bold gradient-text mb-4"), g.Text("404")),
			H1(Class("text-3xl font-bold mb-4"), g.Text("Page not found")),
			P(Class("text-neutral-600 mb-8"), g.Text("The page you're looking for doesn't exist or has been moved.")),
			A(Href("/"), Class("btn-primary inline-block"), g.Text("Back to Home")),
		)),
	))
}
