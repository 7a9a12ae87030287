package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
)

// ProductRepository stores products. Every read and delete is scoped by owner,
// a product of another owner is reported as ErrNotFound.
type ProductRepository interface {
	ListAll(ctx context.Context, ownerID string) ([]domain.Product, error)
	ListActive(ctx context.Context, ownerID string) ([]domain.Product, error)

	Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, error)

	// Save inserts or replaces the product by ID.
	Save(ctx context.Context, product domain.Product) error

	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
}
