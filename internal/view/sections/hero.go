// Package sections holds the home page blocks that other pages reuse.
package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// Hero renders the headline block with the scripted demo conversation.
func Hero(hero site.Hero) g.Node {
	return Section(
		Class("relative pt-24 pb-12 md:pt-32 md:pb-24 overflow-hidden"),
		Div(
			Class("absolute inset-0 -z-10 h-full w-full bg-white"),
			Div(Class("absolute right-0 top-0 h-[500px] w-[500px] -translate-x-[30%] translate-y-[20%] rounded-full bg-primary-500/20 blur-2xl")),
			Div(Class("absolute bottom-0 right-0 h-[500px] w-[500px] translate-x-[30%] translate-y-[20%] rounded-full bg-secondary-500/20 blur-2xl")),
		),
		Div(
			Class("container mx-auto px-4 md:px-8"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				Div(
					Class("flex flex-col"),
					Div(
						Class("flex items-center space-x-2 mb-6 bg-primary-50 text-primary-600 rounded-full px-4 py-2 w-fit text-sm font-medium"),
						ui.Icon("lucide--sparkles size-4", ""),
						Span(g.Text(hero.Badge)),
					),
					H1(
						Class("text-4xl sm:text-5xl lg:text-6xl font-bold mb-6 leading-tight"),
						g.Text(hero.Lead+" "),
						Span(Class("gradient-text"), g.Text(hero.Highlight)),
						g.Text(" "+hero.Tail),
					),
					P(Class("text-lg text-neutral-600 mb-8 max-w-lg"), g.Text(hero.Body)),
					Div(
						Class("flex flex-col sm:flex-row gap-4 mb-8"),
						A(Href("/signup"), Class("btn-primary flex items-center justify-center"),
							Span(g.Text("Try for Free")),
							ui.Icon("lucide--arrow-right size-4 ml-2", ""),
						),
						A(Href("/features"), Class("btn-secondary"), g.Text("Explore Features")),
					),
					Div(
						Class("flex items-center space-x-2 text-sm text-neutral-500"),
						Div(
							Class("flex -space-x-2"),
							g.Group(g.Map([]string{"A", "B", "C", "D"}, func(initial string) g.Node {
								return Div(
									Class("w-8 h-8 rounded-full border-2 border-white bg-neutral-200 flex items-center justify-center overflow-hidden"),
									Span(Class("text-xs font-medium text-neutral-600"), g.Text(initial)),
								)
							})),
						),
						P(
							g.Text("Join "),
							Span(Class("font-medium text-primary-500"), g.Text(hero.SocialProof)),
							g.Text(" users already chatting"),
						),
					),
				),
				Div(
					Class("lg:ml-auto order-first lg:order-last"),
					demoWindow(hero),
				),
			),
		),
	)
}

// demoWindow renders the whole conversation; the page script replays it one message per
// data-demo-interval, with a data-demo-typing indicator ahead of each assistant reply.
func demoWindow(hero site.Hero) g.Node {
	return Div(
		Class("relative mx-auto max-w-md"),
		g.Attr("data-demo"),
		g.Attr("data-demo-interval", strconv.FormatInt(hero.DemoInterval.Milliseconds(), 10)),
		g.Attr("data-demo-typing", strconv.FormatInt(hero.DemoTyping.Milliseconds(), 10)),
		Div(
			Class("glass-effect rounded-2xl overflow-hidden border-2 border-white/30 shadow-xl"),
			Div(
				Class("bg-neutral-800 px-4 py-3 flex items-center"),
				Div(
					Class("flex space-x-2"),
					Div(Class("w-3 h-3 rounded-full bg-red-500")),
					Div(Class("w-3 h-3 rounded-full bg-yellow-500")),
					Div(Class("w-3 h-3 rounded-full bg-green-500")),
				),
				Div(Class("mx-auto text-white text-sm font-medium"), g.Text("NexusAI Chat")),
			),
			Div(
				Class("bg-neutral-50 p-4 h-[400px] overflow-y-auto flex flex-col"),
				Div(
					Class("flex-grow space-y-4"),
					g.Group(g.Map(hero.Demo, func(m site.DemoMessage) g.Node {
						return Div(
							g.Attr("data-demo-step"),
							g.Attr("data-demo-user", strconv.FormatBool(m.User)),
							ui.ChatBubble(m.Content, m.User, ""),
						)
					})),
				),
				Template(g.Attr("data-demo-typing-template"), ui.DemoTypingBubble()),
			),
			Div(
				Class("bg-white p-3 border-t border-neutral-200"),
				Div(
					Class("flex items-center"),
					Input(
						Type("text"),
						Placeholder("Type your message..."),
						Class("flex-grow bg-neutral-100 rounded-full py-2 px-4 focus:outline-none text-sm"),
						Disabled(),
					),
					Span(
						Class("ml-2 p-2 bg-primary-500 text-white rounded-full flex items-center justify-center"),
						ui.Icon("lucide--arrow-right size-4", ""),
					),
				),
			),
		),
	)
}
