package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/db"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/samber/lo"
)

type shoppingItemRepository struct {
	q *db.Queries
}

// NewShoppingItem accepts a *pgxpool.Pool or a pgx.Tx.
func NewShoppingItem(dbtx db.DBTX) port.ShoppingItemRepository {
	return &shoppingItemRepository{
		q: db.New(dbtx),
	}
}

func (r *shoppingItemRepository) ListAll(ctx context.Context, ownerID string) ([]domain.ShoppingItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListShoppingItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListShoppingItems: %w", mapDBError(err))
	}

	return lo.Map(rows, func(row db.ShoppingItem, _ int) domain.ShoppingItem {
		return mapDBShoppingItemToDomain(row)
	}), nil
}

func (r *shoppingItemRepository) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.ShoppingItem, error) {
	row, err := r.q.GetShoppingItem(ctx, db.GetShoppingItemParams{ID: id, UserID: ownerID})
	if err != nil {
		return domain.ShoppingItem{}, fmt.Errorf("q.GetShoppingItem: %w", mapDBError(err))
	}

	return mapDBShoppingItemToDomain(row), nil
}

func (r *shoppingItemRepository) FindByProduct(ctx context.Context, productID uuid.UUID, ownerID string) (domain.ShoppingItem, bool, error) {
	row, err := r.q.FindShoppingItemByProduct(ctx, db.FindShoppingItemByProductParams{
		ProductID: &productID,
		UserID:    ownerID,
	})
	if err != nil {
		mapped := mapDBError(err)
		if errors.Is(mapped, port.ErrNotFound) {
			return domain.ShoppingItem{}, false, nil
		}
		return domain.ShoppingItem{}, false, fmt.Errorf("q.FindShoppingItemByProduct: %w", mapped)
	}

	return mapDBShoppingItemToDomain(row), true, nil
}

func (r *shoppingItemRepository) Save(ctx context.Context, item domain.ShoppingItem) error {
	if item.ID == uuid.Nil {
		return fmt.Errorf("item.ID is empty")
	}
	if item.OwnerID == "" {
		return fmt.Errorf("item.OwnerID is empty")
	}

	rowsAffected, err := r.q.UpsertShoppingItem(ctx, db.UpsertShoppingItemParams{
		ID:        item.ID,
		UserID:    item.OwnerID,
		Name:      item.Name,
		ProductID: item.ProductID,
		IsBought:  item.IsBought,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertShoppingItem: %w", mapDBError(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpsertShoppingItem: %w", port.ErrNotFound)
	}

	return nil
}

func (r *shoppingItemRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	rowsAffected, err := r.q.DeleteShoppingItem(ctx, db.DeleteShoppingItemParams{ID: id, UserID: ownerID})
	if err != nil {
		return fmt.Errorf("q.DeleteShoppingItem: %w", mapDBError(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeleteShoppingItem: %w", port.ErrNotFound)
	}

	return nil
}

// DeleteByProduct is a no-op when nothing links productID.
func (r *shoppingItemRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID, ownerID string) error {
	if _, err := r.q.DeleteShoppingItemsByProduct(ctx, db.DeleteShoppingItemsByProductParams{
		ProductID: &productID,
		UserID:    ownerID,
	}); err != nil {
		return fmt.Errorf("q.DeleteShoppingItemsByProduct: %w", mapDBError(err))
	}

	return nil
}

func (r *shoppingItemRepository) DeleteBought(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	count, err := r.q.DeleteBoughtShoppingItems(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteBoughtShoppingItems: %w", mapDBError(err))
	}

	return count, nil
}

func mapDBShoppingItemToDomain(row db.ShoppingItem) domain.ShoppingItem {
	return domain.RestoreShoppingItem(
		row.ID,
		row.UserID,
		row.Name,
		row.ProductID,
		row.IsBought,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
