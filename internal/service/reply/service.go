// Package reply produces assistant replies for the chat screen.
//
// Replies run through an eino chain (prompt template followed by a chat model) so the
// transcript is shaped exactly as a real model would receive it; the model itself is an
// in-process canned responder.
package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/model/chat"
)

const (
	systemPrompt = "You are NexusAI, a friendly and concise conversation partner."
	historyLimit = 10
)

// Service turns a transcript plus the latest user message into an assistant reply.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
	log   *zap.Logger
}

// NewService compiles the reply chain around a canned model that draws from replies using src.
func NewService(ctx context.Context, log *zap.Logger, src Source, replies []string) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(replies) == 0 {
		return nil, errNoReplies
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(newCannedModel(replies, src))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile reply chain: %w", err)
	}

	return &Service{chain: runnable, log: log.Named("reply")}, nil
}

// Reply returns the assistant text for userMessage given the transcript so far.
func (s *Service) Reply(ctx context.Context, transcript []chat.Message, userMessage string) (string, error) {
	input := map[string]any{
		"system":  systemPrompt,
		"history": buildHistoryMessages(transcript, userMessage),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run reply chain: %w", err)
	}

	s.log.Debug("generated reply", zap.Int("history", len(transcript)), zap.Int("length", len(response.Content)))
	return strings.TrimSpace(response.Content), nil
}

// buildHistoryMessages keeps the most recent turns. A trailing user message equal to the
// query is dropped so it is not sent twice.
func buildHistoryMessages(messages []chat.Message, query string) []*schema.Message {
	if hasMatchingUserMessage(messages, query) {
		messages = messages[:len(messages)-1]
	}
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		if msg.IsUser {
			history = append(history, schema.UserMessage(msg.Content))
		} else {
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}

func hasMatchingUserMessage(messages []chat.Message, content string) bool {
	if len(messages) == 0 {
		return false
	}
	last := messages[len(messages)-1]
	return last.IsUser && last.Content == content
}
