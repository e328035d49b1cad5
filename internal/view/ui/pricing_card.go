package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
)

// PricingCard shows one plan at the given price. period is omitted for free plans.
func PricingCard(plan site.Plan, price, period string) g.Node {
	border := "border border-neutral-200 shadow-md"
	variant := Outline
	if plan.Popular {
		border = "border-2 border-primary-500 shadow-xl"
		variant = Primary
	}
	button := plan.Button
	if button == "" {
		button = "Get Started"
	}

	return h.Div(
		h.Class("relative rounded-2xl overflow-hidden "+border),
		g.If(plan.Popular, h.Div(
			h.Class("absolute top-0 right-0 bg-primary-500 text-white text-xs font-bold uppercase tracking-wider py-1 px-3 rounded-bl-lg"),
			g.Text("Popular"),
		)),
		h.Div(
			h.Class("p-6 sm:p-8 bg-white"),
			h.H3(h.Class("text-lg font-semibold text-neutral-900 mb-2"), g.Text(plan.Title)),
			h.P(h.Class("text-neutral-600 mb-4"), g.Text(plan.Description)),
			h.Div(
				h.Class("flex items-baseline mb-6"),
				h.Span(h.Class("text-4xl font-bold text-neutral-900"), g.Text(price)),
				g.If(price != "Free", h.Span(h.Class("ml-1 text-neutral-500"), g.Text("/"+period))),
			),
			ButtonLink("/signup?plan="+plan.ID, ButtonProps{Variant: variant, FullWidth: true}, button),
			h.Div(
				h.Class("mt-8 space-y-4"),
				g.Group(g.Map(plan.Features, func(f site.PlanFeature) g.Node {
					mark, text := "text-neutral-300 bg-neutral-50", "text-neutral-400"
					if f.Included {
						mark, text = "text-success-500 bg-success-50", "text-neutral-700"
					}
					return h.Div(
						h.Class("flex items-start"),
						h.Div(h.Class("mr-3 rounded-full p-1 "+mark), Icon("lucide--check size-4", "")),
						h.Span(h.Class("text-sm "+text), g.Text(f.Text)),
					)
				})),
			),
		),
	)
}
