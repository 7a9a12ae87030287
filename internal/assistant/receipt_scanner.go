package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/generator"
	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/nikolayk812/foodie/internal/template"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
)

var _ port.ReceiptScanner = (*ReceiptScanner)(nil)

type ReceiptScanner struct {
	pipeline generator.Pipeline
}

func NewReceiptScanner(llm llms.Model, renderer steps.Renderer, opts ...Option) (*ReceiptScanner, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}

	o := applyOptions(opts)

	pipeline, err := generator.NewVisionPipeline(llm, renderer, generator.Prompt{
		SystemTemplate: template.ReceiptSystem,
		UserTemplate:   template.Receipt,
	}, o.callOptions(steps.WithTemperature(0.1), steps.WithMaxTokens(1500))...)
	if err != nil {
		return nil, fmt.Errorf("generator.NewVisionPipeline: %w", err)
	}

	return &ReceiptScanner{pipeline: pipeline}, nil
}

func (s *ReceiptScanner) Scan(ctx context.Context, imageBase64 string) (domain.ReceiptScanResult, error) {
	output, err := s.pipeline.Run(ctx, steps.DataContext{generator.ImageKey: imageBase64})
	if err != nil {
		return domain.ReceiptScanResult{}, fmt.Errorf("%w: pipeline.Run: %w", domain.ErrScanFailed, err)
	}

	items, err := parseReceiptItems(output[generator.JSONKey])
	if err != nil {
		return domain.ReceiptScanResult{}, fmt.Errorf("%w: parseReceiptItems: %w", domain.ErrScanFailed, err)
	}

	return domain.ReceiptScanResult{Items: items}, nil
}

type receiptItemJSON struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
}

// parseReceiptItems skips unnamed lines. Confidence is high unless the model says low.
func parseReceiptItems(raw string) ([]domain.ReceiptItem, error) {
	parsed, err := decodeJSON[[]receiptItemJSON](raw)
	if err != nil {
		return nil, err
	}

	items := lo.FilterMap(parsed, func(item receiptItemJSON, _ int) (domain.ReceiptItem, bool) {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return domain.ReceiptItem{}, false
		}

		confidence := domain.IdentificationConfidenceHigh
		if item.Confidence == string(domain.IdentificationConfidenceLow) {
			confidence = domain.IdentificationConfidenceLow
		}

		return domain.ReceiptItem{Name: name, Confidence: confidence}, true
	})

	if items == nil {
		items = []domain.ReceiptItem{}
	}

	return items, nil
}
