package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/form"
	"github.com/zhouzirui/nexusai/internal/model/site"
	"github.com/zhouzirui/nexusai/internal/service/contact"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// ContactView is the state of the contact form for one render.
type ContactView struct {
	Form      *form.State
	Submitted bool
}

func Contact(p layout.Page, c *site.Content, v ContactView) g.Node {
	if v.Form == nil {
		v.Form = contact.NewForm()
	}
	return layout.Layout(p,
		pageHero(
			highlighted("We'd Love to", "Hear from You", ""),
			g.Text("Have questions about NexusAI? Looking for support? Or just want to say hello? We're here to help."),
		),
		Section(
			Class("py-8 md:py-16"),
			container(Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-5xl mx-auto mb-16"),
				channel("lucide--mail", "Email Us",
					P(Class("text-neutral-600 mb-2"), g.Text("For general inquiries:")),
					A(Href("mailto:hello@nexusai.com"), Class("text-primary-600 font-medium hover:text-primary-700 transition-colors"), g.Text("hello@nexusai.com")),
					P(Class("text-neutral-600 mt-2 mb-2"), g.Text("For support:")),
					A(Href("mailto:support@nexusai.com"), Class("text-primary-600 font-medium hover:text-primary-700 transition-colors"), g.Text("support@nexusai.com")),
				),
				channel("lucide--phone", "Call Us",
					P(Class("text-neutral-600 mb-2"), g.Text("Monday-Friday, 9am-5pm PT")),
					A(Href("tel:+18005551234"), Class("text-primary-600 font-medium hover:text-primary-700 transition-colors"), g.Text("+1 (800) 555-1234")),
					P(Class("text-neutral-600 mt-4 text-sm"), g.Text("For faster support, please use our live chat")),
				),
				channel("lucide--message-square", "Live Chat",
					P(Class("text-neutral-600 mb-4"), g.Text("Get instant support through our live chat")),
					A(
						Href("/chat"),
						Class("flex items-center justify-center mx-auto text-primary-600 font-medium hover:text-primary-700 transition-colors"),
						Span(g.Text("Start a conversation")),
						ui.Icon("lucide--send size-4 ml-2", ""),
					),
					P(Class("text-neutral-600 mt-4 text-sm"), g.Text("Available 24/7")),
				),
			)),
		),
		Section(
			Class("py-8 md:py-16 bg-neutral-50"),
			container(Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 max-w-6xl mx-auto"),
				Div(
					H2(Class("text-3xl font-bold mb-6"), g.Text("Send Us a Message")),
					P(Class("text-neutral-600 mb-8"), g.Text("Fill out the form and our team will get back to you as soon as possible.")),
					contactBody(v),
				),
				Div(
					Class("rounded-2xl overflow-hidden h-[500px] bg-neutral-200 hidden lg:flex items-center justify-center"),
					ui.Icon("lucide--map-pin size-16 text-neutral-400", "San Francisco, CA 94103"),
				),
			)),
		),
		Section(
			Class("py-16 md:py-24"),
			container(
				sectionTitle(g.Text("Visit Our Offices"), "We'd love to meet you in person at one of our global locations."),
				Div(
					Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-5xl mx-auto"),
					g.Group(g.Map(c.Offices, office)),
				),
			),
		),
		Section(
			Class("py-16 md:py-24 bg-neutral-50"),
			container(
				sectionTitle(g.Text("Frequently Asked Questions"), "Quick answers to common questions."),
				Div(
					Class("max-w-3xl mx-auto space-y-6"),
					g.Group(g.Map(c.ContactFAQ, func(f site.FAQ) g.Node {
						return Div(
							Class("bg-white rounded-xl shadow-sm border border-neutral-200 p-6"),
							H3(Class("text-lg font-semibold mb-3"), g.Text(f.Question)),
							P(Class("text-neutral-600"), g.Text(f.Answer)),
						)
					})),
				),
			),
		),
	)
}

func channel(icon, title string, children ...g.Node) g.Node {
	return Div(
		Class("bg-white p-6 rounded-xl shadow-sm border border-neutral-200 text-center"),
		Div(
			Class("bg-primary-100 text-primary-500 w-12 h-12 rounded-full flex items-center justify-center mx-auto mb-4"),
			ui.Icon(icon+" size-6", ""),
		),
		H3(Class("text-lg font-semibold mb-2"), g.Text(title)),
		g.Group(children),
	)
}

// contactBody is the confirmation once a message went through, otherwise the form.
func contactBody(v ContactView) g.Node {
	if v.Submitted {
		return Div(
			ID("contact-success"),
			Class("bg-success-50 border border-success-200 text-success-800 p-4 rounded-lg mb-6"),
			Role("status"),
			H3(Class("font-semibold text-lg mb-2"), g.Text("Message Sent!")),
			P(g.Text("Thank you for reaching out. We'll get back to you shortly.")),
		)
	}

	f := v.Form
	return Form(
		ID("contact-form"),
		Method("post"),
		Action("/contact"),
		Class("space-y-6"),
		g.Attr("novalidate"),
		generalError(f),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
			ui.Input(ui.FieldProps{
				Name: contact.FieldName, Label: "Your Name", Placeholder: "John Doe", Required: true,
				Value: f.Value(contact.FieldName), Error: f.Error(contact.FieldName),
			}),
			ui.Input(ui.FieldProps{
				Name: contact.FieldEmail, Label: "Your Email", Type: "email", Placeholder: "john@example.com", Required: true,
				Value: f.Value(contact.FieldEmail), Error: f.Error(contact.FieldEmail),
			}),
		),
		ui.Input(ui.FieldProps{
			Name: contact.FieldSubject, Label: "Subject", Placeholder: "How can we help you?", Required: true,
			Value: f.Value(contact.FieldSubject), Error: f.Error(contact.FieldSubject),
		}),
		ui.TextArea(ui.FieldProps{
			Name: contact.FieldMessage, Label: "Message", Placeholder: "Let us know how we can help...", Required: true, Rows: 5,
			Value: f.Value(contact.FieldMessage), Error: f.Error(contact.FieldMessage),
		}),
		ui.Button(ui.ButtonProps{Type: "submit", Size: ui.Large, RightIcon: "lucide--send"}, "Send Message"),
	)
}

func office(o site.Office) g.Node {
	lines := make([]g.Node, 0, 2*len(o.Address))
	for i, line := range o.Address {
		if i > 0 {
			lines = append(lines, Br())
		}
		lines = append(lines, g.Text(line))
	}
	return Div(
		Class("bg-white rounded-xl shadow-sm border border-neutral-200 p-6"),
		Div(
			Class("flex items-start mb-4"),
			ui.Icon("lucide--map-pin size-5 text-primary-500 mr-2 flex-shrink-0 mt-0.5", ""),
			Div(
				H3(Class("font-semibold text-lg"), g.Text(o.City)),
				P(Class("text-neutral-600 mt-2"), g.Group(lines)),
				P(Class("text-neutral-600 mt-2"), Span(Class("font-medium"), g.Text("Phone:")), g.Text(" "+o.Phone)),
			),
		),
		A(
			Href("#"),
			Class("text-primary-600 hover:text-primary-700 font-medium text-sm flex items-center transition-colors"),
			Span(g.Text("Get directions")),
			ui.Icon("lucide--arrow-right size-4 ml-1", ""),
		),
	)
}

// generalError is the banner for errors not tied to one field.
func generalError(f *form.State) g.Node {
	msg := f.Error(form.General)
	if msg == "" {
		return g.Group(nil)
	}
	return Div(
		ID("form-error"),
		Class("mb-4 bg-error-50 border border-error-200 text-error-700 px-4 py-3 rounded-lg"),
		Role("alert"),
		g.Text(msg),
	)
}
