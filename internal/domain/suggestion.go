package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// TimeRange is the rough preparation time of a suggestion.
type TimeRange string

const (
	TimeRangeQuick  TimeRange = "quick"  // ~10 minutes
	TimeRangeMedium TimeRange = "medium" // ~20 minutes
	TimeRangeLong   TimeRange = "long"   // 30+ minutes
)

func ToTimeRange(s string) (TimeRange, error) {
	switch tr := TimeRange(s); tr {
	case TimeRangeQuick, TimeRangeMedium, TimeRangeLong:
		return tr, nil
	}

	return "", ErrInvalidTimeRange
}

type SuggestionIngredient struct {
	ProductID   string
	ProductName string
	Quantity    *string
	IsUrgent    bool
}

type Suggestion struct {
	ID                string
	Title             string
	Description       *string
	EstimatedTime     TimeRange
	Ingredients       []SuggestionIngredient
	UrgentIngredients []string // product IDs
	Steps             []string

	CreatedAt time.Time
}

func NewSuggestion(id, title string, description *string, estimatedTime TimeRange, ingredients []SuggestionIngredient, steps []string) (Suggestion, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(ingredients) == 0 {
		return Suggestion{}, ErrInvalidSuggestion
	}

	if description != nil {
		description = lo.ToPtr(strings.TrimSpace(*description))
	}

	urgent := lo.FilterMap(ingredients, func(ing SuggestionIngredient, _ int) (string, bool) {
		return ing.ProductID, ing.IsUrgent
	})

	return Suggestion{
		ID:                id,
		Title:             title,
		Description:       description,
		EstimatedTime:     estimatedTime,
		Ingredients:       ingredients,
		UrgentIngredients: urgent,
		Steps:             steps,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
