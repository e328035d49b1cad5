// Package layout wraps page content in the document shell, navbar and footer.
package layout

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/shell"
)

// Page describes the document being rendered.
type Page struct {
	Path        string
	Title       string
	Description string
	SiteName    string
	Year        int
	// Head carries extra nodes for <head>, such as a meta refresh.
	Head []g.Node
}

// DocumentTitle is "<Title> - <SiteName>", or the tagline title on the home page.
func (p Page) DocumentTitle() string {
	if p.Title == "" {
		return p.SiteName + " - Intelligent Conversation Partner"
	}
	return p.Title + " - " + p.SiteName
}

const defaultDescription = "NexusAI redefines conversational intelligence with natural, helpful, and accurate responses for work, creativity, and learning."

const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        primary: {50:'#eef2ff',100:'#e0e7ff',200:'#c7d2fe',300:'#a5b4fc',400:'#818cf8',500:'#6366f1',600:'#4f46e5',700:'#4338ca',800:'#3730a3',900:'#312e81'},
        secondary: {500:'#8b5cf6'},
        accent: {400:'#f472b6'},
        success: {50:'#f0fdf4',200:'#bbf7d0',500:'#22c55e',800:'#166534'},
        error: {50:'#fef2f2',200:'#fecaca',300:'#fca5a5',500:'#ef4444',700:'#b91c1c'}
      },
      boxShadow: {
        button: '0 4px 14px 0 rgba(99,102,241,0.25)',
        'button-hover': '0 6px 20px rgba(99,102,241,0.35)'
      }
    }
  }
}`

// Layout renders a full HTML document for p around content.
func Layout(p Page, content ...g.Node) g.Node {
	description := p.Description
	if description == "" {
		description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(p.DocumentTitle())),
				Meta(Name("description"), Content(description)),
				Meta(g.Attr("property", "og:title"), Content(p.DocumentTitle())),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Link(Rel("icon"), Href("/static/favicon.svg")),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(tailwindConfig)),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				g.Group(p.Head),
			),
			Body(
				Class("bg-neutral-50 text-neutral-900"),
				g.Attr("data-path", p.Path),
				g.Attr("data-scroll-threshold", strconv.Itoa(shell.ScrollThreshold)),
				Div(
					Class("flex flex-col min-h-screen bg-neutral-50"),
					g.If(shell.ShowNavbar(p.Path), Navbar(p.Path, p.SiteName)),
					Main(Class("flex-grow"), g.Group(content)),
					g.If(shell.ShowFooter(p.Path), SiteFooter(p.SiteName, p.Year)),
				),
				Script(Src("/static/app.js"), Defer()),
			),
		),
	})
}
