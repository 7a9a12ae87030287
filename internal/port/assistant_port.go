package port

import (
	"context"

	"github.com/nikolayk812/foodie/internal/domain"
)

// SuggestionGenerator turns products, already ranked most urgent first,
// into at most limit cooking suggestions.
type SuggestionGenerator interface {
	Generate(ctx context.Context, products []domain.Product, limit int) ([]domain.Suggestion, error)
}

// ExpiryEstimator never fails, it returns domain.NoEstimation when it cannot answer.
type ExpiryEstimator interface {
	Estimate(ctx context.Context, name string, status domain.ProductStatus, location *domain.ProductLocation) domain.ExpiryEstimation
}

type ProductIdentifier interface {
	IdentifyByImage(ctx context.Context, imageBase64 string) (domain.ProductIdentification, error)
	IdentifyByBarcode(ctx context.Context, barcode string) (domain.ProductIdentification, error)
}

type ReceiptScanner interface {
	Scan(ctx context.Context, imageBase64 string) (domain.ReceiptScanResult, error)
}
