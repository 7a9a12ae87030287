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
	"github.com/tmc/langchaingo/llms"
)

var _ port.ProductIdentifier = (*ProductIdentifier)(nil)

// BarcodeLookup resolves a barcode to a product, OpenFoodFacts implements it.
type BarcodeLookup interface {
	Lookup(ctx context.Context, barcode string) (domain.ProductIdentification, error)
}

// ProductIdentifier recognises a product from a photo with the model, or
// from a barcode through a BarcodeLookup.
type ProductIdentifier struct {
	pipeline generator.Pipeline
	barcodes BarcodeLookup
}

func NewProductIdentifier(llm llms.Model, renderer steps.Renderer, barcodes BarcodeLookup, opts ...Option) (*ProductIdentifier, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if barcodes == nil {
		return nil, fmt.Errorf("barcodes is nil")
	}

	o := applyOptions(opts)

	pipeline, err := generator.NewVisionPipeline(llm, renderer, generator.Prompt{
		SystemTemplate: template.IdentifySystem,
		UserTemplate:   template.Identify,
	}, o.callOptions(steps.WithTemperature(0.1), steps.WithMaxTokens(300))...)
	if err != nil {
		return nil, fmt.Errorf("generator.NewVisionPipeline: %w", err)
	}

	return &ProductIdentifier{
		pipeline: pipeline,
		barcodes: barcodes,
	}, nil
}

func (i *ProductIdentifier) IdentifyByImage(ctx context.Context, imageBase64 string) (domain.ProductIdentification, error) {
	output, err := i.pipeline.Run(ctx, steps.DataContext{generator.ImageKey: imageBase64})
	if err != nil {
		return domain.ProductIdentification{}, fmt.Errorf("%w: pipeline.Run: %w", domain.ErrIdentificationFailed, err)
	}

	identification, err := parseIdentification(output[generator.JSONKey])
	if err != nil {
		return domain.ProductIdentification{}, fmt.Errorf("%w: parseIdentification: %w", domain.ErrIdentificationFailed, err)
	}

	return identification, nil
}

func (i *ProductIdentifier) IdentifyByBarcode(ctx context.Context, barcode string) (domain.ProductIdentification, error) {
	identification, err := i.barcodes.Lookup(ctx, barcode)
	if err != nil {
		return domain.ProductIdentification{}, fmt.Errorf("%w: barcodes.Lookup: %w", domain.ErrIdentificationFailed, err)
	}

	return identification, nil
}

type identificationJSON struct {
	Name              string  `json:"name"`
	Confidence        string  `json:"confidence"`
	SuggestedLocation *string `json:"suggestedLocation"`
	SuggestedQuantity *string `json:"suggestedQuantity"`
}

// parseIdentification rejects a blank name, the model's way of saying it does not know.
func parseIdentification(raw string) (domain.ProductIdentification, error) {
	parsed, err := decodeJSON[identificationJSON](raw)
	if err != nil {
		return domain.ProductIdentification{}, err
	}

	name := strings.TrimSpace(parsed.Name)
	if name == "" {
		return domain.ProductIdentification{}, fmt.Errorf("product not recognised")
	}

	confidence := domain.IdentificationConfidenceLow
	if parsed.Confidence == string(domain.IdentificationConfidenceHigh) {
		confidence = domain.IdentificationConfidenceHigh
	}

	var location *domain.ProductLocation
	if parsed.SuggestedLocation != nil {
		if l, err := domain.ToProductLocation(*parsed.SuggestedLocation); err == nil {
			location = &l
		}
	}

	return domain.ProductIdentification{
		Name:              name,
		Confidence:        confidence,
		Method:            domain.IdentificationMethodVisual,
		SuggestedLocation: location,
		SuggestedQuantity: optionalText(parsed.SuggestedQuantity),
	}, nil
}
