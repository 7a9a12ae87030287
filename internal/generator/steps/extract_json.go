package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ExtractJSON struct {
	llmResponseKey string
	jsonKey        string
}

func NewExtractJSON(llmResponseKey, jsonKey string) (ExtractJSON, error) {
	var s ExtractJSON

	if llmResponseKey == "" {
		return s, fmt.Errorf("llmResponseKey is empty")
	}
	if jsonKey == "" {
		return s, fmt.Errorf("jsonKey is empty")
	}

	return ExtractJSON{
		llmResponseKey: llmResponseKey,
		jsonKey:        jsonKey,
	}, nil
}

func (s ExtractJSON) Name() string {
	return "extract_json"
}

func (s ExtractJSON) Run(_ context.Context, dataCtx DataContext) error {
	llmResponse, ok := dataCtx[s.llmResponseKey]
	if !ok {
		return fmt.Errorf("key[%s] not found in data context", s.llmResponseKey)
	}

	extracted, err := extractJSON(llmResponse)
	if err != nil {
		return fmt.Errorf("extractJSON: %w", err)
	}

	dataCtx[s.jsonKey] = extracted

	return nil
}

// extractJSON drops markdown fences and any prose around the outermost
// JSON object or array.
func extractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "```"); start != -1 {
		text = text[start+3:]
		text = strings.TrimPrefix(text, "json")
		if end := strings.Index(text, "```"); end != -1 {
			text = text[:end]
		}
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return "", errors.New("start of JSON not found")
	}

	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}

	end := strings.LastIndex(text, closer)
	if end < start {
		return "", errors.New("end of JSON not found")
	}

	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", errors.New("invalid JSON")
	}

	return candidate, nil
}
