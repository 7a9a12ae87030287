package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/samber/lo"
)

type SuggestionService struct {
	products  port.ProductRepository
	generator port.SuggestionGenerator
	logger    *slog.Logger
	now       func() time.Time
}

func NewSuggestionService(products port.ProductRepository, generator port.SuggestionGenerator, logger *slog.Logger, opts ...Option) (*SuggestionService, error) {
	if products == nil {
		return nil, fmt.Errorf("products is nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("generator is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	o := applyOptions(opts)

	return &SuggestionService{
		products:  products,
		generator: generator,
		logger:    logger,
		now:       o.now,
	}, nil
}

// Generate passes the owner's active, unexpired products to the generator,
// most urgent first. No products left means no suggestions and no generator call.
func (s *SuggestionService) Generate(ctx context.Context, ownerID string, limit int) ([]domain.Suggestion, error) {
	products, err := s.products.ListActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	now := s.now()

	candidates := lo.Reject(products, func(p domain.Product, _ int) bool {
		return domain.IsExpired(p, now)
	})

	if len(candidates) == 0 {
		return []domain.Suggestion{}, nil
	}

	domain.SortByUrgency(candidates, now)

	suggestions, err := s.generator.Generate(ctx, candidates, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughProducts) || errors.Is(err, domain.ErrInvalidSuggestion) {
			return nil, err
		}
		return nil, wrapAs(err, domain.ErrGenerationFailed)
	}

	s.logger.InfoContext(ctx, "suggestions generated",
		"candidates", len(candidates),
		"suggestions", len(suggestions))

	return suggestions, nil
}
