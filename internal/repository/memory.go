package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
)

// MemoryStore keeps products and shopping items in process memory.
// Values are stored and returned by copy.
type MemoryStore struct {
	mu            sync.RWMutex
	products      map[uuid.UUID]domain.Product
	shoppingItems map[uuid.UUID]domain.ShoppingItem
	productSeq    []uuid.UUID // insertion order
	itemSeq       []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:      make(map[uuid.UUID]domain.Product),
		shoppingItems: make(map[uuid.UUID]domain.ShoppingItem),
	}
}

func (m *MemoryStore) Products() port.ProductRepository {
	return &memoryProducts{store: m}
}

func (m *MemoryStore) ShoppingItems() port.ShoppingItemRepository {
	return &memoryShoppingItems{store: m}
}

type memoryProducts struct{ store *MemoryStore }

var _ port.ProductRepository = (*memoryProducts)(nil)

func (r *memoryProducts) ListAll(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return r.list(ownerID, func(domain.Product) bool { return true }), nil
}

func (r *memoryProducts) ListActive(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return r.list(ownerID, domain.Product.IsActive), nil
}

// list returns newest first, like the SQL queries.
func (r *memoryProducts) list(ownerID string, keep func(domain.Product) bool) []domain.Product {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Product, 0)
	for i := len(r.store.productSeq) - 1; i >= 0; i-- {
		p := r.store.products[r.store.productSeq[i]]
		if p.OwnerID == ownerID && keep(p) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

func (r *memoryProducts) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok || p.OwnerID != ownerID {
		return domain.Product{}, fmt.Errorf("memory.Get: %w", port.ErrNotFound)
	}

	return p, nil
}

func (r *memoryProducts) Save(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("product.ID is empty")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ID]
	if ok && existing.OwnerID != product.OwnerID {
		return fmt.Errorf("memory.Save: %w", port.ErrNotFound)
	}
	if !ok {
		r.store.productSeq = append(r.store.productSeq, product.ID)
	} else {
		product.CreatedAt = existing.CreatedAt
	}

	r.store.products[product.ID] = product

	return nil
}

func (r *memoryProducts) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok || p.OwnerID != ownerID {
		return fmt.Errorf("memory.Delete: %w", port.ErrNotFound)
	}

	delete(r.store.products, id)
	r.store.productSeq = slices.DeleteFunc(r.store.productSeq, func(seqID uuid.UUID) bool { return seqID == id })

	return nil
}

type memoryShoppingItems struct{ store *MemoryStore }

var _ port.ShoppingItemRepository = (*memoryShoppingItems)(nil)

// ListAll orders unbought items first, then oldest first.
func (r *memoryShoppingItems) ListAll(ctx context.Context, ownerID string) ([]domain.ShoppingItem, error) {
	out := r.filter(func(i domain.ShoppingItem) bool { return i.OwnerID == ownerID })

	slices.SortStableFunc(out, func(a, b domain.ShoppingItem) int {
		if a.IsBought != b.IsBought {
			if a.IsBought {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})

	return out, nil
}

func (r *memoryShoppingItems) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.ShoppingItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.shoppingItems[id]
	if !ok || item.OwnerID != ownerID {
		return domain.ShoppingItem{}, fmt.Errorf("memory.Get: %w", port.ErrNotFound)
	}

	return item, nil
}

func (r *memoryShoppingItems) FindByProduct(ctx context.Context, productID uuid.UUID, ownerID string) (domain.ShoppingItem, bool, error) {
	found := r.filter(func(i domain.ShoppingItem) bool {
		return i.OwnerID == ownerID && i.LinksProduct(productID)
	})
	if len(found) == 0 {
		return domain.ShoppingItem{}, false, nil
	}

	return found[0], true, nil
}

func (r *memoryShoppingItems) Save(ctx context.Context, item domain.ShoppingItem) error {
	if item.ID == uuid.Nil {
		return fmt.Errorf("item.ID is empty")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.shoppingItems[item.ID]
	if ok && existing.OwnerID != item.OwnerID {
		return fmt.Errorf("memory.Save: %w", port.ErrNotFound)
	}
	if !ok {
		r.store.itemSeq = append(r.store.itemSeq, item.ID)
	} else {
		// the product link is immutable, as in the SQL upsert
		item.ProductID = existing.ProductID
		item.CreatedAt = existing.CreatedAt
	}

	r.store.shoppingItems[item.ID] = item

	return nil
}

func (r *memoryShoppingItems) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.shoppingItems[id]
	if !ok || item.OwnerID != ownerID {
		return fmt.Errorf("memory.Delete: %w", port.ErrNotFound)
	}

	r.deleteLocked(id)

	return nil
}

func (r *memoryShoppingItems) DeleteByProduct(ctx context.Context, productID uuid.UUID, ownerID string) error {
	r.deleteWhere(func(i domain.ShoppingItem) bool {
		return i.OwnerID == ownerID && i.LinksProduct(productID)
	})

	return nil
}

func (r *memoryShoppingItems) DeleteBought(ctx context.Context, ownerID string) (int64, error) {
	return r.deleteWhere(func(i domain.ShoppingItem) bool {
		return i.OwnerID == ownerID && i.IsBought
	}), nil
}

// filter returns matching items in insertion order.
func (r *memoryShoppingItems) filter(match func(domain.ShoppingItem) bool) []domain.ShoppingItem {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.ShoppingItem, 0)
	for _, id := range r.store.itemSeq {
		if item := r.store.shoppingItems[id]; match(item) {
			out = append(out, item)
		}
	}

	return out
}

func (r *memoryShoppingItems) deleteWhere(match func(domain.ShoppingItem) bool) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for id, item := range r.store.shoppingItems {
		if match(item) {
			r.deleteLocked(id)
			count++
		}
	}

	return count
}

func (r *memoryShoppingItems) deleteLocked(id uuid.UUID) {
	delete(r.store.shoppingItems, id)
	r.store.itemSeq = slices.DeleteFunc(r.store.itemSeq, func(seqID uuid.UUID) bool { return seqID == id })
}
