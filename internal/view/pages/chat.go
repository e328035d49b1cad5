package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zhouzirui/nexusai/internal/model/chat"
	"github.com/zhouzirui/nexusai/internal/view/layout"
	"github.com/zhouzirui/nexusai/internal/view/ui"
)

// ChatView is the conversation page for one session.
type ChatView struct {
	SessionID string
	Messages  []chat.Message
	Typing    bool
	Draft     string
	Error     string
}

// Suggestion is the prompt offered by the hint bar.
const Suggestion = "Explain quantum computing"

func chatActionURL(id string) string {
	return "/chat/" + id + "/messages"
}

// Chat renders the transcript and composer. While a reply is pending the page refreshes
// itself for clients without script; the live client replaces that with a stream.
func Chat(p layout.Page, v ChatView) g.Node {
	if v.Typing {
		p.Head = append(p.Head, NoScript(Meta(g.Attr("http-equiv", "refresh"), Content("1"))))
	}
	return layout.Layout(p, Div(
		ID("chat"),
		Class("min-h-screen pt-16 flex flex-col"),
		g.Attr("data-session", v.SessionID),
		g.Attr("data-events", "/chat/"+v.SessionID+"/events"),
		g.Attr("data-socket", "/chat/"+v.SessionID+"/ws"),
		Header(
			Class("bg-white border-b border-neutral-200 shadow-sm py-2 px-4"),
			Div(
				Class("max-w-6xl mx-auto flex items-center justify-between"),
				Div(
					Class("flex items-center"),
					A(Href("/dashboard"), Class("mr-4 text-neutral-600 hover:text-neutral-900"), g.Attr("aria-label", "Back to dashboard"), ui.Icon("lucide--arrow-left size-5", "")),
					Div(
						H1(Class("text-lg font-medium"), g.Text("New Conversation")),
						P(Class("text-xs text-neutral-500"), g.Text("Started just now")),
					),
				),
				Div(
					Class("flex items-center space-x-2"),
					iconButton("lucide--star", "Star conversation"),
					iconButton("lucide--download", "Export conversation"),
					iconButton("lucide--more-vertical", "More options"),
				),
			),
		),
		Main(
			Class("flex-1 bg-neutral-50 overflow-y-auto"),
			Div(
				Class("max-w-3xl mx-auto py-6 px-4"),
				Div(
					ID("messages"),
					Class("space-y-6"),
					g.Attr("aria-live", "polite"),
					g.Group(g.Map(v.Messages, func(m chat.Message) g.Node {
						return Div(g.Attr("data-message", m.ID), ui.ChatBubble(m.Content, m.IsUser, m.Timestamp))
					})),
					g.If(v.Typing, ui.TypingBubble()),
				),
				g.If(v.Error != "", Div(
					ID("chat-error"),
					Class("mt-4 bg-error-50 border border-error-200 text-error-700 px-4 py-3 rounded-lg text-sm"),
					Role("alert"),
					g.Text(v.Error),
				)),
				Div(ID("messages-end")),
			),
		),
		composer(v),
		hintBar(v.SessionID),
		bubbleTemplates(),
	))
}

func iconButton(icon, label string) g.Node {
	return Button(Type("button"), Class("p-2 rounded-full text-neutral-600 hover:bg-neutral-100"), g.Attr("aria-label", label), ui.Icon(icon+" size-[18px]", ""))
}

func composer(v ChatView) g.Node {
	return Footer(
		Class("bg-white border-t border-neutral-200 py-4 px-4 sm:px-6"),
		Div(
			Class("max-w-3xl mx-auto"),
			Form(
				ID("composer"),
				Method("post"),
				Action(chatActionURL(v.SessionID)),
				Class("flex items-end rounded-xl border border-neutral-300 bg-white focus-within:border-primary-300 focus-within:ring-2 focus-within:ring-primary-300"),
				Div(
					Class("flex-1 min-w-0 p-2"),
					Textarea(
						ID("composer-input"),
						Name("content"),
						Placeholder("Message NexusAI..."),
						Rows("1"),
						g.Attr("aria-label", "Message"),
						Class("block w-full resize-none border-0 bg-transparent p-2 text-neutral-900 placeholder:text-neutral-400 focus:ring-0 sm:text-sm"),
						Style("max-height: 200px"),
						g.Text(v.Draft),
					),
					Div(
						Class("flex items-center pt-2 border-t border-neutral-200 mt-2"),
						Div(
							Class("flex space-x-1"),
							attachButton("lucide--image", "Attach image"),
							attachButton("lucide--paperclip", "Attach file"),
							attachButton("lucide--mic", "Voice input"),
						),
						Div(Class("flex-grow")),
						Div(
							Class("text-xs text-neutral-500 hidden sm:block"),
							Span(Class("mr-1"), g.Text("Shift + Enter for new line")),
							Span(Class("hidden lg:inline"), g.Text("· Ctrl + / for commands")),
						),
					),
				),
				Div(
					Class("flex-shrink-0 pr-2 pb-2"),
					ui.Button(ui.ButtonProps{
						Type:      "submit",
						Size:      ui.Small,
						RightIcon: "lucide--send",
						Attrs:     []g.Node{ID("composer-send")},
					}, "Send"),
				),
			),
			Div(
				Class("mt-3 flex items-center justify-between text-xs text-neutral-500"),
				Div(
					Class("flex items-center"),
					ui.Icon("lucide--sparkles size-[14px] text-primary-500 mr-1", ""),
					Span(g.Text("Using NexusAI Pro Model")),
				),
				Div(
					Class("flex items-center space-x-4"),
					Button(Type("button"), Class("flex items-center hover:text-neutral-700"), ui.Icon("lucide--refresh-cw size-[14px] mr-1", ""), Span(g.Text("Regenerate"))),
					Button(Type("button"), Class("flex items-center hover:text-neutral-700"), g.Attr("data-copy-last"), ui.Icon("lucide--copy size-[14px] mr-1", ""), Span(g.Text("Copy last"))),
				),
			),
		),
	)
}

func attachButton(icon, label string) g.Node {
	return Button(Type("button"), Class("p-1.5 rounded-full text-neutral-500 hover:text-neutral-700 hover:bg-neutral-100"), g.Attr("aria-label", label), ui.Icon(icon+" size-4", ""))
}

// hintBar offers a canned prompt; submitting it sends the prompt as a message.
func hintBar(sessionID string) g.Node {
	return Div(
		ID("chat-hints"),
		Class("fixed bottom-24 left-1/2 transform -translate-x-1/2 bg-white rounded-full shadow-lg px-4 py-2 flex items-center space-x-4 text-sm"),
		Form(
			Method("post"),
			Action(chatActionURL(sessionID)),
			Input(Type("hidden"), Name("content"), Value(Suggestion)),
			Button(
				Type("submit"),
				Class("flex items-center text-primary-600 hover:text-primary-700"),
				g.Attr("data-suggest", Suggestion),
				ui.Icon("lucide--message-square size-[14px] mr-1", ""),
				Span(g.Text(`Try: "`+Suggestion+`"`)),
			),
		),
		Span(Class("text-neutral-300"), g.Text("|")),
		Button(Type("button"), Class("flex items-center text-primary-600 hover:text-primary-700"), ui.Icon("lucide--info size-[14px] mr-1", ""), Span(g.Text("Tips"))),
		Button(Type("button"), Class("ml-2 text-neutral-400 hover:text-neutral-600"), g.Attr("data-dismiss", "chat-hints"), g.Attr("aria-label", "Dismiss"), ui.Icon("lucide--x size-[14px]", "")),
	)
}

// bubbleTemplates give the live client the same markup the server renders.
func bubbleTemplates() g.Node {
	return g.Group([]g.Node{
		Template(ID("tpl-user"), ui.ChatBubble("", true, " ")),
		Template(ID("tpl-assistant"), ui.ChatBubble("", false, " ")),
		Template(ID("tpl-typing"), ui.TypingBubble()),
	})
}
