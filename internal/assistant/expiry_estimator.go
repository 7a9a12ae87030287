package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/generator"
	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/nikolayk812/foodie/internal/template"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/text/cases"
)

var _ port.ExpiryEstimator = (*ExpiryEstimator)(nil)

const noLocation = "none"

// ExpiryEstimator asks the model how long a product keeps. Answers are cached
// per (folded name, status, location) as day counts, so a hit is dated from
// the current clock. Failed calls are not cached.
type ExpiryEstimator struct {
	pipeline generator.Pipeline
	cache    *expirable.LRU[string, shelfLife]
	logger   *slog.Logger
	now      func() time.Time
}

func NewExpiryEstimator(llm llms.Model, renderer steps.Renderer, logger *slog.Logger, opts ...Option) (*ExpiryEstimator, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	o := applyOptions(opts)

	if o.cacheSize <= 0 {
		return nil, fmt.Errorf("cache size must be positive")
	}

	pipeline, err := generator.NewTextPipeline(llm, renderer, generator.Prompt{
		SystemTemplate: template.ExpirySystem,
		UserTemplate:   template.Expiry,
		InputKeys:      []string{"name", "status", "location"},
	}, o.callOptions(steps.WithTemperature(0.1), steps.WithMaxTokens(200))...)
	if err != nil {
		return nil, fmt.Errorf("generator.NewTextPipeline: %w", err)
	}

	return &ExpiryEstimator{
		pipeline: pipeline,
		cache:    expirable.NewLRU[string, shelfLife](o.cacheSize, nil, o.cacheTTL),
		logger:   logger,
		now:      o.now,
	}, nil
}

func (e *ExpiryEstimator) Estimate(ctx context.Context, name string, status domain.ProductStatus, location *domain.ProductLocation) domain.ExpiryEstimation {
	loc := noLocation
	if location != nil {
		loc = location.String()
	}

	// cases.Caser is stateful, one per call
	key := fmt.Sprintf("%s|%s|%s", cases.Fold().String(name), status, loc)

	if cached, ok := e.cache.Get(key); ok {
		return cached.estimation(e.now())
	}

	output, err := e.pipeline.Run(ctx, steps.DataContext{
		"name":     name,
		"status":   status.String(),
		"location": loc,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "expiry estimation failed",
			"method", "ExpiryEstimator.Estimate",
			"name", name,
			"error", err)
		return domain.NoEstimation()
	}

	life := parseShelfLife(output[generator.JSONKey])
	e.cache.Add(key, life)

	return life.estimation(e.now())
}

type estimationJSON struct {
	DaysUntilExpiry *int   `json:"daysUntilExpiry"`
	Confidence      string `json:"confidence"`
}

// shelfLife is a model answer relative to the day it is used.
// The zero value means no estimation.
type shelfLife struct {
	days       int
	confidence domain.Confidence
}

func (l shelfLife) estimation(now time.Time) domain.ExpiryEstimation {
	if l.confidence == "" {
		return domain.NoEstimation()
	}

	date := now.UTC().AddDate(0, 0, l.days)

	return domain.ExpiryEstimation{
		Date:       &date,
		Confidence: l.confidence,
	}
}

// parseShelfLife never fails: anything unusable is the zero shelfLife.
// Negative day counts are clamped to today.
func parseShelfLife(raw string) shelfLife {
	parsed, err := decodeJSON[estimationJSON](raw)
	if err != nil || parsed.DaysUntilExpiry == nil {
		return shelfLife{}
	}

	confidence, err := domain.ToConfidence(parsed.Confidence)
	if err != nil || confidence == domain.ConfidenceNone {
		return shelfLife{}
	}

	return shelfLife{
		days:       max(0, *parsed.DaysUntilExpiry),
		confidence: confidence,
	}
}
