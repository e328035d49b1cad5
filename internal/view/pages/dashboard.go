package pages

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/chat"
	"github.com/zhouzirui/nexusai/internal/service/dashboard"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// DashboardView is one board's filtered list. Items is already filtered; Total counts the
// whole board.
type DashboardView struct {
	BoardID  string
	Query    string
	Category dashboard.Category
	Items    []chat.ListItem
	Total    int
}

// URL links back to the board with the given filters.
func (v DashboardView) URL(category dashboard.Category, query string) string {
	q := url.Values{}
	q.Set("board", v.BoardID)
	if category != dashboard.CategoryAll {
		q.Set("category", string(category))
	}
	if query != "" {
		q.Set("q", query)
	}
	return "/dashboard?" + q.Encode()
}

var categoryIcons = map[dashboard.Category]string{
	dashboard.CategoryAll:       "lucide--message-square",
	dashboard.CategoryStarred:   "lucide--star",
	dashboard.CategoryDocuments: "lucide--file-text",
}

func Dashboard(p layout.Page, v DashboardView) g.Node {
	return layout.Layout(p, Div(
		ID("dashboard"),
		Class("min-h-screen pt-16 bg-neutral-50"),
		g.Attr("data-board", v.BoardID),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8"),
			Div(
				Class("flex flex-col lg:flex-row gap-8"),
				sidebar(v),
				Div(
					Class("flex-1"),
					Div(
						Class("bg-white rounded-xl shadow-sm border border-neutral-200 overflow-hidden"),
						searchBox(v),
						chatList(v),
					),
					usage(v.Total),
				),
			),
		),
	))
}

func sidebar(v DashboardView) g.Node {
	return Div(
		Class("lg:w-64 flex-shrink-0"),
		Div(
			Class("bg-white rounded-xl shadow-sm border border-neutral-200 overflow-hidden"),
			Div(Class("p-4"), ui.ButtonLink("/chat", ui.ButtonProps{LeftIcon: "lucide--plus", FullWidth: true}, "New Chat")),
			Div(
				Class("border-t border-neutral-200"),
				Nav(
					Class("flex flex-col p-2"),
					g.Group(g.Map(dashboard.Categories, func(c dashboard.Category) g.Node {
						state := "text-neutral-700 hover:bg-neutral-100"
						if c == v.Category {
							state = "bg-primary-50 text-primary-700 font-medium"
						}
						return A(
							Href(v.URL(c, v.Query)),
							Class("flex items-center px-3 py-2 text-sm rounded-lg "+state),
							g.If(c == v.Category, g.Attr("aria-current", "page")),
							ui.Icon(categoryIcons[c]+" size-[18px] mr-2", ""),
							Span(g.Text(c.Label())),
						)
					})),
				),
			),
			Div(
				Class("border-t border-neutral-200 p-4"),
				Div(
					Class("flex items-center mb-2"),
					Div(
						Class("flex-shrink-0"),
						Div(Class("h-9 w-9 rounded-full bg-primary-100 flex items-center justify-center text-primary-700 font-medium"), g.Text("JD")),
					),
					Div(
						Class("ml-3 flex-1"),
						P(Class("text-sm font-medium text-neutral-900"), g.Text("John Doe")),
						P(Class("text-xs text-neutral-500"), g.Text("Pro Plan")),
					),
					ui.Icon("lucide--chevron-down size-4 text-neutral-600", ""),
				),
				Div(
					Class("mt-3 space-y-1"),
					profileLink("lucide--settings", "Settings", "#"),
					profileLink("lucide--user", "Account", "#"),
					profileLink("lucide--log-out", "Log out", "/"),
				),
			),
		),
	)
}

func profileLink(icon, label, href string) g.Node {
	return A(
		Href(href),
		Class("flex items-center w-full px-3 py-2 text-sm rounded-lg text-neutral-700 hover:bg-neutral-100"),
		ui.Icon(icon+" size-4 mr-2", ""),
		Span(g.Text(label)),
	)
}

func searchBox(v DashboardView) g.Node {
	return Form(
		Method("get"),
		Action("/dashboard"),
		Class("p-4 border-b border-neutral-200"),
		Role("search"),
		Input(Type("hidden"), Name("board"), Value(v.BoardID)),
		g.If(v.Category != dashboard.CategoryAll, Input(Type("hidden"), Name("category"), Value(string(v.Category)))),
		Div(
			Class("relative"),
			Div(Class("absolute inset-y-0 left-0 pl-3 flex items-center pointer-events-none"), ui.Icon("lucide--search size-[18px] text-neutral-400", "")),
			Input(
				Type("search"),
				Name("q"),
				Value(v.Query),
				Placeholder("Search chats..."),
				g.Attr("data-autosubmit"),
				Class("w-full py-2 pl-10 pr-4 border border-neutral-300 rounded-lg focus:outline-none focus:ring-2 focus:ring-primary-300 focus:border-primary-300"),
			),
		),
	)
}

// rowAction is a one-button form that changes a single chat and returns to the same view.
func rowAction(v DashboardView, item chat.ListItem, verb, class, label string, icon g.Node) g.Node {
	return Form(
		Method("post"),
		Action("/dashboard/"+v.BoardID+"/chats/"+url.PathEscape(item.ID)+"/"+verb),
		Input(Type("hidden"), Name("q"), Value(v.Query)),
		Input(Type("hidden"), Name("category"), Value(string(v.Category))),
		Button(Type("submit"), Class("p-1 rounded-full "+class), g.Attr("aria-label", label), icon),
	)
}

func chatList(v DashboardView) g.Node {
	if len(v.Items) == 0 {
		return Div(
			Class("divide-y divide-neutral-200"),
			Div(
				Class("p-8 text-center"),
				P(Class("text-neutral-500"), g.Text("No chats found")),
				A(Href("/chat"), Class("text-primary-600 font-medium hover:text-primary-700 mt-2 inline-block"), g.Text("Start a new chat")),
			),
		)
	}

	return Ul(
		Class("divide-y divide-neutral-200"),
		g.Group(g.Map(v.Items, func(item chat.ListItem) g.Node {
			starClass, starIcon, starLabel := "text-neutral-400 hover:bg-neutral-100", "lucide--star size-4", "Star"
			if item.Starred {
				starClass, starIcon, starLabel = "text-yellow-500 hover:bg-yellow-50", "lucide--star size-4 fill-yellow-500", "Unstar"
			}
			return Li(
				Class("p-4 hover:bg-neutral-50 transition-colors"),
				g.Attr("data-chat", item.ID),
				Div(
					Class("flex items-center justify-between"),
					A(
						Href("/chat?id="+url.QueryEscape(item.ID)),
						Class("flex-1 min-w-0"),
						Div(
							Class("flex items-center"),
							ui.Icon("lucide--message-square size-[18px] text-neutral-400 mr-3 flex-shrink-0", ""),
							Div(
								Class("flex-1 min-w-0"),
								H3(Class("text-sm font-medium text-neutral-900 truncate"), g.Text(item.Title)),
								P(Class("text-xs text-neutral-500 truncate mt-1"), g.Text(item.Preview)),
							),
						),
					),
					Div(
						Class("ml-4 flex flex-shrink-0 items-center space-x-2"),
						Span(Class("text-xs text-neutral-500"), g.Text(item.Date)),
						rowAction(v, item, "star", starClass, starLabel, ui.Icon(starIcon, "")),
						Button(Type("button"), Class("p-1 rounded-full text-neutral-400 hover:bg-neutral-100"), g.Attr("aria-label", "Share"), ui.Icon("lucide--share-2 size-4", "")),
						rowAction(v, item, "delete", "text-neutral-400 hover:bg-neutral-100 hover:text-error-500", "Delete", ui.Icon("lucide--trash-2 size-4", "")),
					),
				),
			)
		})),
	)
}

func usageCard(title, value, bar, width, note string) g.Node {
	return Div(
		Class("bg-white rounded-xl shadow-sm border border-neutral-200 p-4"),
		H3(Class("text-sm font-medium text-neutral-600 mb-2"), g.Text(title)),
		P(Class("text-2xl font-bold"), g.Text(value)),
		Div(
			Class("mt-2 h-2 bg-neutral-100 rounded-full overflow-hidden"),
			Div(Class("h-full rounded-full "+bar), Style("width: "+width)),
		),
		P(Class("text-xs text-neutral-500 mt-2"), g.Text(note)),
	)
}

func usage(total int) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-3 gap-4 mt-6"),
		usageCard("Messages Today", "42", "bg-primary-500", "42%", "42% of daily limit"),
		usageCard("Active Chats", strconv.Itoa(total), "bg-secondary-500", "15%", "From 5 unique topics"),
		usageCard("Pro Plan", "12 days", "bg-accent-400", "60%", "12 days left in trial"),
	)
}
