package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/sections"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// Pricing renders the plans with the monthly/annual toggle. The toggle is two links so the
// page works without script.
func Pricing(p layout.Page, c *site.Content, billing sections.Billing) g.Node {
	return layout.Layout(p,
		pageHero(
			highlighted("Simple, Transparent", "Pricing", ""),
			g.Text("Choose the plan that fits your needs. All plans include our core features with different usage limits and capabilities."),
			billingToggle(billing),
		),
		Section(
			Class("py-8 md:py-12 mb-8"),
			container(
				sections.PlanGrid(c.Plans, billing),
				Div(
					Class("mt-16 max-w-4xl mx-auto bg-neutral-50 rounded-2xl p-8"),
					H3(Class("text-xl font-semibold mb-6 text-center"), g.Text("All Plans Include")),
					Div(
						Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
						g.Group(g.Map(c.PlanIncludes, checkItem)),
					),
				),
			),
		),
		planMatrix(c.Plans, c.PlanMatrix),
		Section(
			Class("py-16 md:py-24 bg-neutral-50"),
			container(
				sectionTitle(g.Text("Frequently Asked Questions"), "Here are some common questions about our pricing and plans."),
				faqGrid(c.PricingFAQ),
				Div(
					Class("text-center mt-12"),
					P(Class("text-neutral-600 mb-4"), g.Text("Still have questions? We're here to help.")),
					A(Href("/contact"), Class("text-primary-600 font-medium hover:text-primary-700 transition-colors"), g.Text("Contact our support team")),
				),
			),
		),
		Section(
			Class("py-16 md:py-24"),
			container(
				Div(
					Class("max-w-4xl mx-auto bg-gradient-to-r from-primary-500 to-secondary-500 rounded-2xl shadow-xl overflow-hidden"),
					Div(
						Class("p-8 md:p-12 text-white text-center"),
						H2(Class("text-3xl font-bold mb-6"), g.Text("Ready to Start Your NexusAI Journey?")),
						P(Class("text-white/90 text-lg mb-8"), g.Text("Join thousands of users and experience the future of AI conversation today. Start with our free plan - no credit card required.")),
						A(Href("/signup"), Class("bg-white text-primary-600 hover:bg-neutral-100 rounded-full py-3 px-8 font-medium transition-all inline-block"), g.Text("Get Started Free")),
					),
				),
			),
		),
	)
}

func billingToggle(billing sections.Billing) g.Node {
	tab := func(href string, active bool, label ...g.Node) g.Node {
		state := "text-neutral-600 hover:text-neutral-800"
		if active {
			state = "bg-white text-primary-600 shadow-sm"
		}
		return A(
			Href(href),
			Class("py-2 px-6 rounded-full text-sm font-medium transition-all "+state),
			g.If(active, g.Attr("aria-current", "true")),
			g.Group(label),
		)
	}
	return Div(
		Class("bg-neutral-100 p-1 rounded-full inline-flex mb-8"),
		tab("/pricing", !billing.Annual, g.Text("Monthly")),
		tab("/pricing?billing=annual", billing.Annual,
			g.Text("Annual "),
			Span(Class("text-xs text-green-600 font-normal ml-1"), g.Text("Save 20%")),
		),
	)
}

func matrixCell(value string, highlight bool) g.Node {
	class := "py-4 px-4 text-center"
	if highlight {
		class += " bg-primary-50"
	}
	switch value {
	case "yes":
		return Td(Class(class), ui.Icon("lucide--check size-[18px] inline text-primary-500", "Included"))
	case "no":
		return Td(Class(class), ui.Icon("lucide--x size-[18px] inline text-neutral-400", "Not included"))
	default:
		return Td(Class(class), g.Text(value))
	}
}

func planMatrix(plans []site.Plan, rows []site.PlanRow) g.Node {
	header := []g.Node{Th(Class("py-4 px-6 text-left"), g.Text("Feature"))}
	for _, plan := range plans {
		class := "py-4 px-4 text-center"
		if plan.Popular {
			class += " bg-primary-50"
		}
		header = append(header, Th(Class(class), g.Text(plan.Title)))
	}

	body := make([]g.Node, 0, len(rows))
	for i, row := range rows {
		cells := []g.Node{Td(Class("py-4 px-6 font-medium"), g.Text(row.Feature))}
		for j, v := range row.Values {
			cells = append(cells, matrixCell(v, j < len(plans) && plans[j].Popular))
		}
		body = append(body, Tr(g.If(i < len(rows)-1, Class("border-b border-neutral-200")), g.Group(cells)))
	}

	return Section(
		Class("py-8 md:py-16 bg-white"),
		container(
			Div(
				Class("text-center max-w-3xl mx-auto mb-12"),
				H2(Class("text-3xl font-bold mb-6"), g.Text("Compare Plan Features")),
				P(Class("text-neutral-600"), g.Text("A detailed breakdown of what's included in each plan.")),
			),
			Div(
				Class("max-w-5xl mx-auto overflow-x-auto"),
				Table(
					Class("w-full border-collapse"),
					THead(Tr(Class("border-b-2 border-neutral-200"), g.Group(header))),
					TBody(g.Group(body)),
				),
			),
		),
	)
}
