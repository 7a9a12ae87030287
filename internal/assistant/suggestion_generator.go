package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/generator"
	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/nikolayk812/foodie/internal/template"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
)

var _ port.SuggestionGenerator = (*SuggestionGenerator)(nil)

type SuggestionGenerator struct {
	pipeline generator.Pipeline
	now      func() time.Time
}

func NewSuggestionGenerator(llm llms.Model, renderer steps.Renderer, opts ...Option) (*SuggestionGenerator, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}

	o := applyOptions(opts)

	pipeline, err := generator.NewTextPipeline(llm, renderer, generator.Prompt{
		SystemTemplate: template.SuggestionSystem,
		UserTemplate:   template.Suggestion,
		InputKeys:      []string{"products", "limit"},
	}, o.callOptions(steps.WithTemperature(0.7), steps.WithMaxTokens(2000))...)
	if err != nil {
		return nil, fmt.Errorf("generator.NewTextPipeline: %w", err)
	}

	return &SuggestionGenerator{
		pipeline: pipeline,
		now:      o.now,
	}, nil
}

// Generate expects products ranked most urgent first. Entries of the model
// answer that lack a title or a usable ingredient are dropped.
func (g *SuggestionGenerator) Generate(ctx context.Context, products []domain.Product, limit int) ([]domain.Suggestion, error) {
	if len(products) == 0 || limit <= 0 {
		return []domain.Suggestion{}, nil
	}

	now := g.now()

	output, err := g.pipeline.Run(ctx, steps.DataContext{
		"products": formatProducts(products, now),
		"limit":    strconv.Itoa(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: pipeline.Run: %w", domain.ErrGenerationFailed, err)
	}

	suggestions, err := parseSuggestions(output[generator.JSONKey], products, now)
	if err != nil {
		return nil, fmt.Errorf("%w: parseSuggestions: %w", domain.ErrGenerationFailed, err)
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions, nil
}

// formatProducts renders one line per product:
// "- Milk [id:...] (use_soon, expires in 2 days)".
func formatProducts(products []domain.Product, now time.Time) string {
	lines := lo.Map(products, func(p domain.Product, _ int) string {
		expiry := "no expiry date"
		if days, ok := domain.DaysUntilExpiry(p, now); ok {
			expiry = fmt.Sprintf("expires in %d days", days)
		}

		return fmt.Sprintf("- %s [id:%s] (%s, %s)", p.Name, p.ID, domain.Urgency(p, now), expiry)
	})

	return strings.Join(lines, "\n")
}

type suggestionJSON struct {
	Title         string           `json:"title"`
	Description   *string          `json:"description"`
	EstimatedTime string           `json:"estimatedTime"`
	Ingredients   []ingredientJSON `json:"ingredients"`
	Steps         []string         `json:"steps"`
}

type ingredientJSON struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	IsUrgent    bool   `json:"isUrgent"`
}

// parseSuggestions accepts a bare array or an object with a "suggestions" array.
func parseSuggestions(raw string, products []domain.Product, now time.Time) ([]domain.Suggestion, error) {
	var entries []suggestionJSON

	if strings.HasPrefix(strings.TrimSpace(raw), "[") {
		decoded, err := decodeJSON[[]suggestionJSON](raw)
		if err != nil {
			return nil, err
		}
		entries = decoded
	} else {
		decoded, err := decodeJSON[struct {
			Suggestions []suggestionJSON `json:"suggestions"`
		}](raw)
		if err != nil {
			return nil, err
		}
		entries = decoded.Suggestions
	}

	quantities := lo.SliceToMap(products, func(p domain.Product) (string, *string) {
		return p.ID.String(), p.Quantity
	})

	suggestions := make([]domain.Suggestion, 0, len(entries))

	for idx, entry := range entries {
		ingredients := lo.FilterMap(entry.Ingredients, func(ing ingredientJSON, _ int) (domain.SuggestionIngredient, bool) {
			id := strings.TrimSpace(ing.ProductID)
			name := strings.TrimSpace(ing.ProductName)
			if id == "" || name == "" {
				return domain.SuggestionIngredient{}, false
			}

			return domain.SuggestionIngredient{
				ProductID:   id,
				ProductName: name,
				Quantity:    quantities[id],
				IsUrgent:    ing.IsUrgent,
			}, true
		})

		estimatedTime, err := domain.ToTimeRange(entry.EstimatedTime)
		if err != nil {
			estimatedTime = domain.TimeRangeMedium
		}

		stepsList := lo.Filter(entry.Steps, func(s string, _ int) bool {
			return strings.TrimSpace(s) != ""
		})
		if stepsList == nil {
			stepsList = []string{}
		}

		id := fmt.Sprintf("openai-%d-%d", now.UnixMilli(), idx)

		suggestion, err := domain.NewSuggestion(id, entry.Title, optionalText(entry.Description), estimatedTime, ingredients, stepsList)
		if err != nil {
			continue
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}
