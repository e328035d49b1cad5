// Package pages renders every route of the site as a complete document.
package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

func container(children ...g.Node) g.Node {
	return Div(Class("container mx-auto px-4 md:px-8"), g.Group(children))
}

// pageHero is the centred title block that opens the secondary marketing pages.
func pageHero(title, body g.Node, extra ...g.Node) g.Node {
	return Section(
		Class("pt-28 pb-16 md:pt-36 md:pb-24"),
		container(
			Div(
				Class("text-center max-w-3xl mx-auto"),
				H1(Class("text-4xl md:text-5xl font-bold mb-6"), title),
				P(Class("text-lg text-neutral-600 mb-8"), body),
				g.Group(extra),
			),
		),
	)
}

func highlighted(lead, word, tail string) g.Node {
	return g.Group([]g.Node{
		g.If(lead != "", g.Text(lead+" ")),
		Span(Class("gradient-text"), g.Text(word)),
		g.If(tail != "", g.Text(" "+tail)),
	})
}

func checkItem(text string) g.Node {
	return Div(
		Class("flex items-center"),
		ui.Icon("lucide--check size-[18px] text-primary-500 mr-2 flex-shrink-0", ""),
		Span(Class("text-neutral-700"), g.Text(text)),
	)
}

func faqGrid(faqs []site.FAQ) g.Node {
	return Div(
		Class("max-w-3xl mx-auto grid grid-cols-1 md:grid-cols-2 gap-8"),
		g.Group(g.Map(faqs, func(f site.FAQ) g.Node {
			return Div(
				Class("bg-white p-6 rounded-xl shadow-sm"),
				H3(
					Class("text-lg font-semibold mb-3 flex items-start"),
					ui.Icon("lucide--help-circle size-5 text-primary-500 mr-2 flex-shrink-0 mt-1", ""),
					Span(g.Text(f.Question)),
				),
				P(Class("text-neutral-600"), g.Text(f.Answer)),
			)
		})),
	)
}

func sectionTitle(title g.Node, body string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16"),
		H2(Class("text-3xl md:text-4xl font-bold mb-6"), title),
		g.If(body != "", P(Class("text-lg text-neutral-600"), g.Text(body))),
	)
}
