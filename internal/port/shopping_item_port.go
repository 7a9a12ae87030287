package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
)

type ShoppingItemRepository interface {
	ListAll(ctx context.Context, ownerID string) ([]domain.ShoppingItem, error)

	Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.ShoppingItem, error)

	// FindByProduct returns the item linked to productID, found is false when there is none.
	FindByProduct(ctx context.Context, productID uuid.UUID, ownerID string) (item domain.ShoppingItem, found bool, err error)

	Save(ctx context.Context, item domain.ShoppingItem) error

	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID, ownerID string) error
	DeleteBought(ctx context.Context, ownerID string) (int64, error)
}
