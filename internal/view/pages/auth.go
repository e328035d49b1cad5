package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/form"
	"github.com/zhouzirui/nexusai/internal/service/account"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

type LoginView struct {
	Form *form.State
}

type SignupView struct {
	Form *form.State
	// Plan is the plan id picked on the pricing page, if any.
	Plan string
}

func authShell(siteName, title, subtitle string, body ...g.Node) g.Node {
	return Div(
		Class("min-h-screen flex items-center justify-center bg-neutral-50 py-12 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-md w-full space-y-8"),
			Div(
				Class("text-center"),
				A(
					Href("/"),
					Class("inline-block"),
					Div(
						Class("flex items-center justify-center"),
						Div(Class("rounded-full bg-primary-500 p-2 text-white mb-2"), ui.Icon("lucide--message-square size-6", "")),
					),
					H2(Class("text-3xl font-extrabold text-neutral-900"), g.Text(siteName)),
				),
				H2(Class("mt-6 text-2xl font-bold text-neutral-900"), g.Text(title)),
				P(Class("mt-2 text-sm text-neutral-600"), g.Text(subtitle)),
			),
			g.Group(body),
		),
	)
}

// passwordField puts the label row above the input so login can add the reset link.
func passwordField(f *form.State, name, label string, extra g.Node) g.Node {
	return Div(
		Div(
			Class("flex items-center justify-between mb-1"),
			Label(For(name), Class("block text-sm font-medium text-neutral-700"), g.Text(label)),
			extra,
		),
		Div(
			Class("relative"),
			ui.Input(ui.FieldProps{
				Name: name, Type: "password", Placeholder: "••••••••", Required: true,
				LeftIcon: "lucide--lock", AutoComplete: "current-password",
				Error: f.Error(name),
			}),
			Button(
				Type("button"),
				Class("absolute right-3 top-3 text-neutral-500 hover:text-neutral-700"),
				g.Attr("data-toggle-password", name),
				g.Attr("aria-label", "Show password"),
				ui.Icon("lucide--eye size-4", ""),
			),
		),
	)
}

func socialButtons(caption string) g.Node {
	provider := func(icon, label string) g.Node {
		return Div(A(
			Href("#"),
			Class("w-full inline-flex justify-center py-2 px-4 border border-neutral-300 rounded-md shadow-sm bg-white text-sm font-medium text-neutral-700 hover:bg-neutral-50"),
			ui.Icon(icon+" size-5", label),
		))
	}
	return Div(
		Class("mt-8"),
		Div(
			Class("relative"),
			Div(Class("absolute inset-0 flex items-center"), Div(Class("w-full border-t border-neutral-300"))),
			Div(Class("relative flex justify-center text-sm"), Span(Class("px-2 bg-neutral-50 text-neutral-500"), g.Text(caption))),
		),
		Div(
			Class("mt-6 grid grid-cols-2 gap-3"),
			provider("lucide--github", "GitHub"),
			provider("lucide--chrome", "Google"),
		),
	)
}

func Login(p layout.Page, v LoginView) g.Node {
	f := v.Form
	if f == nil {
		f = account.NewLoginForm()
	}
	return layout.Layout(p, authShell(p.SiteName, "Welcome back", "Sign in to continue to your account",
		Div(
			Class("mt-8"),
			generalError(f),
			Form(
				ID("login-form"),
				Method("post"),
				Action("/login"),
				Class("space-y-6"),
				g.Attr("novalidate"),
				ui.Input(ui.FieldProps{
					Name: account.FieldEmail, Label: "Email address", Type: "email", Placeholder: "you@example.com",
					Required: true, LeftIcon: "lucide--mail", AutoComplete: "email",
					Value: f.Value(account.FieldEmail),
				}),
				passwordField(f, account.FieldPassword, "Password",
					Div(Class("text-sm"), A(Href("#"), Class("text-primary-600 hover:text-primary-500"), g.Text("Forgot password?"))),
				),
				ui.Button(ui.ButtonProps{Type: "submit", FullWidth: true}, "Sign in"),
			),
			socialButtons("Or continue with"),
		),
		Div(
			Class("mt-6 text-center"),
			P(
				Class("text-sm text-neutral-600"),
				g.Text("Don't have an account? "),
				A(Href("/signup"), Class("font-medium text-primary-600 hover:text-primary-500"), g.Text("Sign up")),
			),
		),
	))
}

func Signup(p layout.Page, v SignupView) g.Node {
	f := v.Form
	if f == nil {
		f = account.NewSignupForm()
	}
	return layout.Layout(p, authShell(p.SiteName, "Create your account", "Start your 7-day free trial, no credit card required",
		Div(
			generalError(f),
			Form(
				ID("signup-form"),
				Method("post"),
				Action("/signup"),
				Class("mt-8 space-y-6"),
				g.Attr("novalidate"),
				g.If(v.Plan != "", Input(Type("hidden"), Name("plan"), Value(v.Plan))),
				ui.Input(ui.FieldProps{
					Name: account.FieldName, Label: "Full name", Placeholder: "John Doe", Required: true,
					LeftIcon: "lucide--user", AutoComplete: "name",
					Value: f.Value(account.FieldName), Error: f.Error(account.FieldName),
				}),
				ui.Input(ui.FieldProps{
					Name: account.FieldEmail, Label: "Email address", Type: "email", Placeholder: "you@example.com",
					Required: true, LeftIcon: "lucide--mail", AutoComplete: "email",
					Value: f.Value(account.FieldEmail), Error: f.Error(account.FieldEmail),
				}),
				passwordField(f, account.FieldPassword, "Password", nil),
				passwordField(f, account.FieldConfirmPassword, "Confirm password", nil),
				Div(
					Class("flex items-center"),
					Input(ID("terms"), Name("terms"), Type("checkbox"), Class("h-4 w-4 text-primary-600 focus:ring-primary-500 border-neutral-300 rounded"), Required()),
					Label(
						For("terms"),
						Class("ml-2 block text-sm text-neutral-700"),
						g.Text("I agree to the "),
						A(Href("#"), Class("text-primary-600 hover:text-primary-500"), g.Text("Terms of Service")),
						g.Text(" and "),
						A(Href("#"), Class("text-primary-600 hover:text-primary-500"), g.Text("Privacy Policy")),
					),
				),
				ui.Button(ui.ButtonProps{Type: "submit", FullWidth: true}, "Create Account"),
			),
			socialButtons("Or sign up with"),
		),
		Div(
			Class("flex items-start mt-6"),
			Div(Class("flex-shrink-0"), ui.Icon("lucide--check size-5 text-primary-500", "")),
			Div(
				Class("ml-3"),
				P(Class("text-sm text-neutral-600"), g.Text("By signing up, you get 7 days of unlimited access to NexusAI on the Pro plan. No credit card required.")),
			),
		),
		Div(
			Class("mt-6 text-center"),
			P(
				Class("text-sm text-neutral-600"),
				g.Text("Already have an account? "),
				A(Href("/login"), Class("font-medium text-primary-600 hover:text-primary-500"), g.Text("Log in")),
			),
		),
	))
}
