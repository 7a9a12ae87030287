package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/db"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/samber/lo"
)

type productRepository struct {
	q *db.Queries
}

// NewProduct accepts a *pgxpool.Pool or a pgx.Tx.
func NewProduct(dbtx db.DBTX) port.ProductRepository {
	return &productRepository{
		q: db.New(dbtx),
	}
}

func (r *productRepository) ListAll(ctx context.Context, ownerID string) ([]domain.Product, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListProducts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", mapDBError(err))
	}

	products, err := mapDBProductsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListActive(ctx context.Context, ownerID string) ([]domain.Product, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListActiveProducts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListActiveProducts: %w", mapDBError(err))
	}

	products, err := mapDBProductsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapDBProductsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, error) {
	var p domain.Product

	row, err := r.q.GetProduct(ctx, db.GetProductParams{ID: id, UserID: ownerID})
	if err != nil {
		return p, fmt.Errorf("q.GetProduct: %w", mapDBError(err))
	}

	p, err = mapDBProductToDomain(row)
	if err != nil {
		return p, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return p, nil
}

func (r *productRepository) Save(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("product.ID is empty")
	}
	if product.OwnerID == "" {
		return fmt.Errorf("product.OwnerID is empty")
	}

	rowsAffected, err := r.q.UpsertProduct(ctx, mapDomainProductToUpsertParams(product))
	if err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", mapDBError(err))
	}

	// the id exists but belongs to another owner
	if rowsAffected == 0 {
		return fmt.Errorf("q.UpsertProduct: %w", port.ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	if id == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	rowsAffected, err := r.q.DeleteProduct(ctx, db.DeleteProductParams{ID: id, UserID: ownerID})
	if err != nil {
		return fmt.Errorf("q.DeleteProduct: %w", mapDBError(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeleteProduct: %w", port.ErrNotFound)
	}

	return nil
}

func mapDomainProductToUpsertParams(p domain.Product) db.UpsertProductParams {
	return db.UpsertProductParams{
		ID:                  p.ID,
		UserID:              p.OwnerID,
		Name:                p.Name,
		Status:              p.Status.String(),
		Location:            enumToPtrString(p.Location),
		Quantity:            p.Quantity,
		ExpiryDate:          p.ExpiryDate,
		EstimatedExpiryDate: p.EstimatedExpiryDate,
		Outcome:             enumToPtrString(p.Outcome),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func mapDBProductToDomain(row db.Product) (domain.Product, error) {
	var p domain.Product

	status, err := domain.ToProductStatus(row.Status)
	if err != nil {
		return p, fmt.Errorf("domain.ToProductStatus[%s]: %w", row.Status, err)
	}

	var location *domain.ProductLocation
	if row.Location != nil {
		l, err := domain.ToProductLocation(*row.Location)
		if err != nil {
			return p, fmt.Errorf("domain.ToProductLocation[%s]: %w", *row.Location, err)
		}
		location = &l
	}

	var outcome *domain.ProductOutcome
	if row.Outcome != nil {
		o, err := domain.ToProductOutcome(*row.Outcome)
		if err != nil {
			return p, fmt.Errorf("domain.ToProductOutcome[%s]: %w", *row.Outcome, err)
		}
		outcome = &o
	}

	props := domain.ProductProps{
		Name:                row.Name,
		Status:              status,
		Location:            location,
		Quantity:            row.Quantity,
		ExpiryDate:          utcPtr(row.ExpiryDate),
		EstimatedExpiryDate: utcPtr(row.EstimatedExpiryDate),
		Outcome:             outcome,
	}

	return domain.RestoreProduct(row.ID, row.UserID, props, row.CreatedAt.UTC(), row.UpdatedAt.UTC()), nil
}

func mapDBProductsToDomain(rows []db.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		p, err := mapDBProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func enumToPtrString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	return lo.ToPtr(string(*v))
}
