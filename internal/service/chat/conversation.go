package chat

import (
	"sync"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/model/chat"
)

const subscriberBuffer = 16

// conversation is the page session behind one open chat screen.
type conversation struct {
	session chat.Session
	scope   *interaction.Scope
	machine *interaction.Machine

	mu          sync.Mutex
	closed      bool
	messages    []chat.Message
	subscribers map[uint64]chan chat.Event
	nextSub     uint64
}

func (c *conversation) append(msg chat.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	c.broadcastLocked(chat.Event{Type: chat.EventMessage, Message: &msg})
}

func (c *conversation) transcript() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]chat.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

func (c *conversation) broadcast(ev chat.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcastLocked(ev)
}

// broadcastLocked never blocks; a subscriber that stops draining misses events.
func (c *conversation) broadcastLocked(ev chat.Event) {
	for _, ch := range c.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (c *conversation) subscribe() (<-chan chat.Event, func(), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil, false
	}

	c.nextSub++
	id := c.nextSub
	ch := make(chan chat.Event, subscriberBuffer)
	c.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel, true
}

// Close stops pending replies, then ends every subscription.
func (c *conversation) Close() {
	c.scope.Close()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subscribers {
		delete(c.subscribers, id)
		close(ch)
	}
}
