package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShoppingItem is an entry on the owner's shopping list.
// ProductID is a weak reference: the product may no longer exist.
type ShoppingItem struct {
	ID        uuid.UUID
	OwnerID   string
	Name      string
	ProductID *uuid.UUID
	IsBought  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewShoppingItem(ownerID, name string, productID *uuid.UUID) (ShoppingItem, error) {
	if strings.TrimSpace(name) == "" {
		return ShoppingItem{}, ErrNameEmpty
	}

	now := time.Now().UTC()

	return RestoreShoppingItem(uuid.New(), ownerID, name, productID, false, now, now), nil
}

func RestoreShoppingItem(id uuid.UUID, ownerID, name string, productID *uuid.UUID, isBought bool, createdAt, updatedAt time.Time) ShoppingItem {
	return ShoppingItem{
		ID:        id,
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		ProductID: productID,
		IsBought:  isBought,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func (i ShoppingItem) LinksProduct(productID uuid.UUID) bool {
	return i.ProductID != nil && *i.ProductID == productID
}

// Update returns a copy of i with the provided fields replaced.
// A nil field keeps its current value, the product link is never changed.
func (i ShoppingItem) Update(name *string, isBought *bool, now time.Time) (ShoppingItem, error) {
	newName := i.Name
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ShoppingItem{}, ErrNameEmpty
		}
		newName = *name
	}

	bought := i.IsBought
	if isBought != nil {
		bought = *isBought
	}

	return RestoreShoppingItem(i.ID, i.OwnerID, newName, i.ProductID, bought, i.CreatedAt, now.UTC()), nil
}
