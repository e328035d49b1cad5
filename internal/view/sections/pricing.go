package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// Billing selects which plan price is shown.
type Billing struct {
	Annual bool
}

// Price returns the plan price for this billing period.
func (b Billing) Price(p site.Plan) string {
	if b.Annual && p.AnnualPrice != "" {
		return p.AnnualPrice
	}
	return p.Price
}

func (b Billing) Period() string {
	if b.Annual {
		return "month, billed annually"
	}
	return "month"
}

// PlanGrid renders the three plan cards.
func PlanGrid(plans []site.Plan, billing Billing) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-5xl mx-auto"),
		g.Group(g.Map(plans, func(p site.Plan) g.Node {
			return ui.PricingCard(p, billing.Price(p), billing.Period())
		})),
	)
}

// PricingSection is the pricing block on the home page, always monthly.
func PricingSection(plans []site.Plan) g.Node {
	return Section(
		ID("pricing"),
		Class("py-16 md:py-24"),
		Div(
			Class("container mx-auto px-4 md:px-8"),
			Heading("Choose the Perfect", "Plan", "for You",
				"Whether you're a casual user or a business with complex needs, we have a plan that fits your requirements."),
			PlanGrid(plans, Billing{}),
			Div(
				Class("mt-12 text-center"),
				P(Class("text-neutral-500 mb-2"), g.Text("Need a custom solution for your enterprise?")),
				A(Href("/contact"), Class("text-primary-600 font-medium hover:text-primary-700 transition-colors"), g.Text("Contact our sales team")),
			),
		),
	)
}
