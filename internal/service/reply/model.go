package reply

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// StockReplies are the assistant sentences the chat screen draws from.
var StockReplies = []string{
	"I understand what you're asking. Based on the latest data, the answer to your question involves several factors...",
	"That's an interesting question! Here's what I can tell you based on my knowledge...",
	"I've analyzed your request, and here's what I found. There are multiple perspectives to consider...",
	"Great question! From my analysis, I can provide the following insights on this topic...",
	"I've processed your query, and I can share some valuable information about this subject...",
}

var errNoReplies = errors.New("no canned replies configured")

// cannedModel is a chat model that ignores its input and answers with a randomly chosen
// canned sentence.
type cannedModel struct {
	replies []string
	src     Source
}

var _ model.ChatModel = (*cannedModel)(nil)

func newCannedModel(replies []string, src Source) *cannedModel {
	return &cannedModel{replies: append([]string(nil), replies...), src: src}
}

func (m *cannedModel) Generate(ctx context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.replies) == 0 {
		return nil, errNoReplies
	}
	return schema.AssistantMessage(m.replies[m.src.IntN(len(m.replies))], nil), nil
}

func (m *cannedModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// BindTools is a no-op; canned replies never call tools.
func (m *cannedModel) BindTools(_ []*schema.ToolInfo) error {
	return nil
}
