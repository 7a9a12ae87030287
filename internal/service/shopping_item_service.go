package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
)

type ShoppingItemService struct {
	items  port.ShoppingItemRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewShoppingItemService(items port.ShoppingItemRepository, logger *slog.Logger, opts ...Option) (*ShoppingItemService, error) {
	if items == nil {
		return nil, fmt.Errorf("items is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	o := applyOptions(opts)

	return &ShoppingItemService{
		items:  items,
		logger: logger,
		now:    o.now,
	}, nil
}

// Create adds an item to the list. When productID is already linked by an
// item of the same owner that item is returned instead of a duplicate.
// A failed lookup does not block the create.
func (s *ShoppingItemService) Create(ctx context.Context, ownerID, name string, productID *uuid.UUID) (domain.ShoppingItem, error) {
	item, err := domain.NewShoppingItem(ownerID, name, productID)
	if err != nil {
		return domain.ShoppingItem{}, err
	}

	if productID != nil {
		existing, found, err := s.items.FindByProduct(ctx, *productID, ownerID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "shopping list lookup failed", "method", "Create", "product_id", *productID, "error", err)
		case found:
			return existing, nil
		}
	}

	if err := s.items.Save(ctx, item); err != nil {
		return domain.ShoppingItem{}, repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	s.logger.InfoContext(ctx, "shopping item created", "item_id", item.ID)

	return item, nil
}

// GetAll lists unbought items first, then oldest first.
func (s *ShoppingItemService) GetAll(ctx context.Context, ownerID string) ([]domain.ShoppingItem, error) {
	items, err := s.items.ListAll(ctx, ownerID)
	if err != nil {
		return nil, repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	return items, nil
}

// Update replaces the provided fields, nil fields keep their values.
func (s *ShoppingItemService) Update(ctx context.Context, id uuid.UUID, ownerID string, name *string, isBought *bool) (domain.ShoppingItem, error) {
	existing, err := s.items.Get(ctx, id, ownerID)
	if err != nil {
		return domain.ShoppingItem{}, repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	updated, err := existing.Update(name, isBought, s.now())
	if err != nil {
		return domain.ShoppingItem{}, err
	}

	if err := s.items.Save(ctx, updated); err != nil {
		return domain.ShoppingItem{}, repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	s.logger.InfoContext(ctx, "shopping item updated", "item_id", id, "is_bought", updated.IsBought)

	return updated, nil
}

func (s *ShoppingItemService) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	if _, err := s.items.Get(ctx, id, ownerID); err != nil {
		return repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	if err := s.items.Delete(ctx, id, ownerID); err != nil {
		return repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	s.logger.InfoContext(ctx, "shopping item deleted", "item_id", id)

	return nil
}

// ClearBought removes every bought item of the owner and returns how many were removed.
func (s *ShoppingItemService) ClearBought(ctx context.Context, ownerID string) (int64, error) {
	count, err := s.items.DeleteBought(ctx, ownerID)
	if err != nil {
		return 0, repositoryError(err, domain.ErrShoppingItemNotFound)
	}

	s.logger.InfoContext(ctx, "bought shopping items cleared", "count", count)

	return count, nil
}
