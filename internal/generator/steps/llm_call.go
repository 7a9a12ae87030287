package steps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/tmc/langchaingo/llms"
)

var errEmptyResponse = errors.New("empty response")

type LLMCall struct {
	llm             llms.Model
	promptKey       string
	responseKey     string
	systemPromptKey string
	imageKey        string
	callOptions     []llms.CallOption
	maxRetries      uint64
	backoff         time.Duration
}

type LLMCallOption func(*LLMCall)

// WithSystemPrompt sends the value under key as the system message.
func WithSystemPrompt(key string) LLMCallOption {
	return func(s *LLMCall) {
		s.systemPromptKey = key
	}
}

// WithImage attaches the data URL stored under key to the human message.
func WithImage(key string) LLMCallOption {
	return func(s *LLMCall) {
		s.imageKey = key
	}
}

func WithTemperature(temperature float64) LLMCallOption {
	return func(s *LLMCall) {
		s.callOptions = append(s.callOptions, llms.WithTemperature(temperature))
	}
}

func WithMaxTokens(maxTokens int) LLMCallOption {
	return func(s *LLMCall) {
		s.callOptions = append(s.callOptions, llms.WithMaxTokens(maxTokens))
	}
}

// WithRetry retries failed calls up to maxRetries times with exponential backoff.
func WithRetry(maxRetries uint64, backoff time.Duration) LLMCallOption {
	return func(s *LLMCall) {
		s.maxRetries = maxRetries
		s.backoff = backoff
	}
}

func NewLLMCall(llm llms.Model, promptKey, llmResponseKey string, opts ...LLMCallOption) (LLMCall, error) {
	var s LLMCall

	if llm == nil {
		return s, fmt.Errorf("llm is nil")
	}
	if promptKey == "" {
		return s, fmt.Errorf("promptKey is empty")
	}
	if llmResponseKey == "" {
		return s, fmt.Errorf("llmResponseKey is empty")
	}

	s = LLMCall{
		llm:         llm,
		promptKey:   promptKey,
		responseKey: llmResponseKey,
		maxRetries:  2,
		backoff:     500 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.backoff <= 0 {
		return s, fmt.Errorf("backoff must be positive")
	}

	return s, nil
}

func (s LLMCall) Name() string {
	return "llm_call"
}

func (s LLMCall) Run(ctx context.Context, dataCtx DataContext) error {
	content, err := s.messages(dataCtx)
	if err != nil {
		return fmt.Errorf("s.messages: %w", err)
	}

	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.backoff))

	var response string

	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := s.generate(ctx, content)
		if err != nil {
			slog.Warn("LLM call failed",
				"method", "LLMCall.Run",
				"error", err)
			return retry.RetryableError(err)
		}

		response = r
		return nil
	}); err != nil {
		return fmt.Errorf("retry.Do: %w", err)
	}

	dataCtx[s.responseKey] = response

	return nil
}

func (s LLMCall) messages(dataCtx DataContext) ([]llms.MessageContent, error) {
	prompt, ok := dataCtx[s.promptKey]
	if !ok {
		return nil, fmt.Errorf("key[%s] not found in data context", s.promptKey)
	}

	var content []llms.MessageContent

	if s.systemPromptKey != "" {
		systemPrompt, ok := dataCtx[s.systemPromptKey]
		if !ok {
			return nil, fmt.Errorf("key[%s] not found in data context", s.systemPromptKey)
		}
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}

	human := llms.TextParts(llms.ChatMessageTypeHuman, prompt)

	if s.imageKey != "" {
		imageURL, ok := dataCtx[s.imageKey]
		if !ok {
			return nil, fmt.Errorf("key[%s] not found in data context", s.imageKey)
		}
		human.Parts = append(human.Parts, llms.ImageURLPart(imageURL))
	}

	return append(content, human), nil
}

func (s LLMCall) generate(ctx context.Context, content []llms.MessageContent) (string, error) {
	completion, err := s.llm.GenerateContent(ctx, content, s.callOptions...)
	if err != nil {
		return "", fmt.Errorf("llm.GenerateContent: %w", err)
	}

	var response strings.Builder
	for _, choice := range completion.Choices {
		if choice == nil {
			continue
		}

		response.WriteString(choice.Content)

		// "stop" stop reason is expected at least in OpenAI
		if choice.StopReason != "" && choice.StopReason != "stop" {
			slog.Warn("Unexpected stop reason",
				"method", "LLMCall.Run",
				"stop_reason", choice.StopReason)
		}
	}

	if strings.TrimSpace(response.String()) == "" {
		return "", errEmptyResponse
	}

	return response.String(), nil
}
