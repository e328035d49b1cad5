package chat

import "time"

// Session captures a transient anonymous conversation bound to one open chat page.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
