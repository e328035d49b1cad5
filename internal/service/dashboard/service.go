// Package dashboard keeps the mock chat list of each open dashboard page.
package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/model/chat"
	"github.com/zhouzirui/nexusai/internal/session"
)

var (
	ErrSessionNotFound = errors.New("dashboard session not found")
	ErrChatNotFound    = errors.New("chat not found")
)

// Board is the chat list owned by one dashboard page session.
type Board struct {
	ID string

	mu    sync.Mutex
	items []chat.ListItem
}

// Items returns a copy of the current collection.
func (b *Board) Items() []chat.ListItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]chat.ListItem(nil), b.items...)
}

func (b *Board) update(id string, fn func([]chat.ListItem, string) []chat.ListItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range b.items {
		if item.ID == id {
			b.items = fn(b.items, id)
			return nil
		}
	}
	return ErrChatNotFound
}

// Close implements session.Resource; a board owns no timers.
func (b *Board) Close() {}

// Service opens and tracks dashboard boards.
type Service struct {
	boards *session.Registry[*Board]
	log    *zap.Logger
}

func NewService(idleTTL time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		boards: session.NewRegistry[*Board]("dashboard", idleTTL),
		log:    log.Named("dashboard"),
	}
}

// Sessions exposes the board registry to the idle sweeper.
func (s *Service) Sessions() session.Sweepable {
	return s.boards
}

// Open starts a board seeded with the sample chats.
func (s *Service) Open() *Board {
	b := &Board{ID: uuid.NewString(), items: chat.SeedItems()}
	s.boards.Put(b.ID, b)
	s.log.Debug("board opened", zap.String("session", b.ID))
	return b
}

// Get returns an open board.
func (s *Service) Get(id string) (*Board, error) {
	b, ok := s.boards.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return b, nil
}

// ToggleStar flips the starred flag of one chat on a board.
func (s *Service) ToggleStar(boardID, chatID string) error {
	b, err := s.Get(boardID)
	if err != nil {
		return err
	}
	return b.update(chatID, ToggleStar)
}

// Delete removes one chat from a board.
func (s *Service) Delete(boardID, chatID string) error {
	b, err := s.Get(boardID)
	if err != nil {
		return err
	}
	return b.update(chatID, Remove)
}
