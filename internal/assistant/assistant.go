// Package assistant implements the AI-backed ports on top of generator pipelines.
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/samber/lo"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 24 * time.Hour
)

type options struct {
	now       func() time.Time
	callOpts  []steps.LLMCallOption
	cacheSize int
	cacheTTL  time.Duration
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithCallOptions appends LLM call options, applied after the assistant's own defaults.
func WithCallOptions(opts ...steps.LLMCallOption) Option {
	return func(o *options) {
		o.callOpts = append(o.callOpts, opts...)
	}
}

// WithCache sizes the expiry estimation cache.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *options) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

func applyOptions(opts []Option) options {
	o := options{
		now:       time.Now,
		cacheSize: defaultCacheSize,
		cacheTTL:  defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// callOptions puts the assistant defaults before the caller's overrides.
func (o options) callOptions(defaults ...steps.LLMCallOption) []steps.LLMCallOption {
	return append(defaults, o.callOpts...)
}

func decodeJSON[T any](raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return v, nil
}

// optionalText trims s and turns blank into nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return lo.ToPtr(trimmed)
}
