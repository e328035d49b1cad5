package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func bubbleRow(isUser bool, body g.Node, timestamp string) g.Node {
	justify, tone, align := "justify-start", "bg-white border border-neutral-200 text-neutral-800", "text-left"
	if isUser {
		justify, tone, align = "justify-end", "bg-primary-500 text-white", "text-right"
	}
	return h.Div(
		h.Class("flex "+justify+" mb-4"),
		h.Div(
			h.Class("max-w-[80%] md:max-w-[70%]"),
			h.Div(h.Class("rounded-2xl px-4 py-3 "+tone), body),
			g.If(timestamp != "", h.P(h.Class("text-xs text-neutral-500 mt-1 "+align), g.Text(timestamp))),
		),
	)
}

// ChatBubble renders one transcript message.
func ChatBubble(message string, isUser bool, timestamp string) g.Node {
	return bubbleRow(isUser, h.P(h.Class("text-sm sm:text-base whitespace-pre-wrap"), g.Text(message)), timestamp)
}

func typingDots() g.Node {
	dot := func(delay string) g.Node {
		return h.Div(h.Class("typing-dot w-2 h-2 rounded-full bg-primary-500"), h.Style("animation-delay: "+delay))
	}
	return bubbleRow(false, h.Div(h.Class("flex space-x-2 items-center h-6 px-2"), dot("0s"), dot("0.2s"), dot("0.4s")), "")
}

// TypingBubble is the assistant's three-dot indicator.
func TypingBubble() g.Node {
	return h.Div(
		h.ID("typing-indicator"),
		g.Attr("aria-live", "polite"),
		g.Attr("aria-label", "NexusAI is typing"),
		typingDots(),
	)
}

// DemoTypingBubble is the indicator used by the home page demo, which may sit beside a live chat.
func DemoTypingBubble() g.Node {
	return h.Div(g.Attr("data-demo-typing-indicator"), g.Attr("aria-hidden", "true"), typingDots())
}
