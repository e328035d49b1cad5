// Package chat runs the mock chat screen: a transcript per open page, user messages
// appended immediately, and one canned assistant reply per send after a fixed delay.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/metrics"
	"github.com/zhouzirui/nexusai/internal/model/chat"
	"github.com/zhouzirui/nexusai/internal/session"
)

// Greeting opens every new conversation.
const Greeting = "Hi there! I'm NexusAI. How can I help you today?"

// TimestampLayout renders message times as hh:mm AM/PM.
const TimestampLayout = "03:04 PM"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
)

// Replier produces the assistant text for a user message.
type Replier interface {
	Reply(ctx context.Context, transcript []chat.Message, userMessage string) (string, error)
}

// Config holds the timing and presentation settings of the chat flow.
type Config struct {
	ReplyDelay time.Duration
	IdleTTL    time.Duration
	Location   *time.Location
}

// Option customises a Service.
type Option func(*Service)

// WithScheduler replaces the timer source used for reply delays.
func WithScheduler(sched interaction.Scheduler) Option {
	return func(s *Service) { s.sched = sched }
}

// WithClock replaces the wall clock used for message timestamps and session activity.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// Service encapsulates conversation state management.
type Service struct {
	replier  Replier
	cfg      Config
	sched    interaction.Scheduler
	clock    func() time.Time
	log      *zap.Logger
	sessions *session.Registry[*conversation]
}

// NewService bootstraps the in-memory chat service.
func NewService(replier Replier, cfg Config, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	s := &Service{
		replier: replier,
		cfg:     cfg,
		sched:   interaction.SystemScheduler{},
		clock:   time.Now,
		log:     log.Named("chat"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sessions = session.NewRegistry[*conversation]("chat", cfg.IdleTTL, session.WithClock(s.clock))
	return s
}

// Sessions exposes the conversation registry to the idle sweeper.
func (s *Service) Sessions() session.Sweepable {
	return s.sessions
}

// Shutdown closes every open conversation.
func (s *Service) Shutdown() {
	s.sessions.CloseAll()
}

func (s *Service) newMessage(content string, isUser bool) chat.Message {
	now := s.clock()
	return chat.Message{
		ID:        uuid.NewString(),
		Content:   content,
		IsUser:    isUser,
		Timestamp: now.In(s.cfg.Location).Format(TimestampLayout),
		CreatedAt: now.UTC(),
	}
}

// CreateSession opens a conversation seeded with the greeting.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	conv := &conversation{
		session: chat.Session{
			ID:        uuid.NewString(),
			CreatedAt: s.clock().UTC(),
		},
		scope:       interaction.NewScope(context.Background(), s.sched),
		messages:    make([]chat.Message, 0, 16),
		subscribers: make(map[uint64]chan chat.Event),
	}
	conv.messages = append(conv.messages, s.newMessage(Greeting, false))
	conv.machine = interaction.NewMachine(conv.scope,
		interaction.WithOverlap(),
		interaction.WithRearm(),
		interaction.OnChange(func(state interaction.State) {
			conv.broadcast(chat.Event{Type: chat.EventTyping, Typing: state == interaction.Submitting})
		}),
	)

	s.sessions.Put(conv.session.ID, conv)
	s.log.Debug("conversation opened", zap.String("session", conv.session.ID))
	return conv.session, nil
}

func (s *Service) lookup(sessionID string) (*conversation, error) {
	conv, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// Send appends the user's message as typed and schedules one assistant reply. Input that
// is blank once trimmed is refused without touching the transcript.
func (s *Service) Send(_ context.Context, sessionID, content string) (chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	conv, err := s.lookup(sessionID)
	if err != nil {
		return chat.Message{}, err
	}

	userMsg := s.newMessage(content, true)
	conv.append(userMsg)
	metrics.Submissions.WithLabelValues("chat", "submitted").Inc()

	_, err = conv.machine.Submit(s.cfg.ReplyDelay, func(ctx context.Context) interaction.Result {
		text, err := s.replier.Reply(ctx, conv.transcript(), content)
		if err != nil {
			s.log.Error("reply failed", zap.String("session", sessionID), zap.Error(err))
			conv.broadcast(chat.Event{Type: chat.EventError, Error: "Something went wrong. Please try again."})
			metrics.Submissions.WithLabelValues("chat", "failed").Inc()
			return interaction.Result{State: interaction.Failed, Err: err}
		}
		conv.append(s.newMessage(text, false))
		metrics.ChatReplies.Inc()
		metrics.Submissions.WithLabelValues("chat", "succeeded").Inc()
		return interaction.Result{State: interaction.Succeeded}
	})
	if err != nil {
		if errors.Is(err, interaction.ErrClosed) {
			return chat.Message{}, fmt.Errorf("schedule reply: %w", ErrSessionNotFound)
		}
		return chat.Message{}, fmt.Errorf("schedule reply: %w", err)
	}
	return userMsg, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	conv, err := s.lookup(sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	return conv.session, nil
}

// LoadTranscript returns stored messages for the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	conv, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return conv.transcript(), nil
}

// Typing reports whether an assistant reply is pending.
func (s *Service) Typing(sessionID string) (bool, error) {
	conv, err := s.lookup(sessionID)
	if err != nil {
		return false, err
	}
	return conv.machine.State() == interaction.Submitting, nil
}

// Subscribe streams transcript and typing changes. The returned cancel func must be called
// when the subscriber goes away; the channel is also closed when the session ends.
func (s *Service) Subscribe(sessionID string) (<-chan chat.Event, func(), error) {
	conv, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel, ok := conv.subscribe()
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	return ch, cancel, nil
}

// Close ends the conversation, dropping any pending reply.
func (s *Service) Close(sessionID string) bool {
	closed := s.sessions.Close(sessionID)
	if closed {
		s.log.Debug("conversation closed", zap.String("session", sessionID))
	}
	return closed
}
