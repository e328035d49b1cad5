package chat

// Event types pushed to live chat subscribers.
const (
	EventMessage = "message"
	EventTyping  = "typing"
	EventError   = "error"
)

// Event is a change in a conversation delivered over SSE or websocket.
type Event struct {
	Type    string   `json:"type"`
	Message *Message `json:"message,omitempty"`
	Typing  bool     `json:"typing"`
	Error   string   `json:"error,omitempty"`
}
