// Package llmtest provides a scripted llms.Model for tests.
package llmtest

import (
	"context"
	"errors"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// Reply is one scripted answer: Content, or Err when set.
type Reply struct {
	Content    string
	StopReason string
	Err        error
}

// Model answers GenerateContent calls with its replies in order and
// records the messages it receives. The last reply repeats once the script runs out.
type Model struct {
	mu       sync.Mutex
	replies  []Reply
	requests [][]llms.MessageContent
}

var _ llms.Model = (*Model)(nil)

func NewModel(replies ...Reply) *Model {
	return &Model{replies: replies}
}

// Text is a shortcut for a model that always answers content.
func Text(content string) *Model {
	return NewModel(Reply{Content: content, StopReason: "stop"})
}

func (m *Model) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, messages)

	if len(m.replies) == 0 {
		return nil, errors.New("llmtest: no replies scripted")
	}

	idx := min(len(m.requests), len(m.replies)) - 1
	reply := m.replies[idx]

	if reply.Err != nil {
		return nil, reply.Err
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: reply.Content, StopReason: reply.StopReason},
		},
	}, nil
}

func (m *Model) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.requests)
}

// Request returns the messages of the i-th call.
func (m *Model) Request(i int) []llms.MessageContent {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.requests[i]
}

// TextOf concatenates the text parts of a message.
func TextOf(message llms.MessageContent) string {
	var text string
	for _, part := range message.Parts {
		if tc, ok := part.(llms.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}

// ImageURLOf returns the first image URL part of a message.
func ImageURLOf(message llms.MessageContent) (string, bool) {
	for _, part := range message.Parts {
		if ic, ok := part.(llms.ImageURLContent); ok {
			return ic.URL, true
		}
	}
	return "", false
}
