package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
)

type ProductService struct {
	products   port.ProductRepository
	items      port.ShoppingItemRepository
	estimator  port.ExpiryEstimator
	identifier port.ProductIdentifier
	scanner    port.ReceiptScanner
	logger     *slog.Logger
	now        func() time.Time
}

func NewProductService(
	products port.ProductRepository,
	items port.ShoppingItemRepository,
	estimator port.ExpiryEstimator,
	identifier port.ProductIdentifier,
	scanner port.ReceiptScanner,
	logger *slog.Logger,
	opts ...Option,
) (*ProductService, error) {
	if products == nil {
		return nil, fmt.Errorf("products is nil")
	}
	if items == nil {
		return nil, fmt.Errorf("items is nil")
	}
	if estimator == nil {
		return nil, fmt.Errorf("estimator is nil")
	}
	if identifier == nil {
		return nil, fmt.Errorf("identifier is nil")
	}
	if scanner == nil {
		return nil, fmt.Errorf("scanner is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	o := applyOptions(opts)

	return &ProductService{
		products:   products,
		items:      items,
		estimator:  estimator,
		identifier: identifier,
		scanner:    scanner,
		logger:     logger,
		now:        o.now,
	}, nil
}

func (s *ProductService) Create(ctx context.Context, ownerID string, props domain.ProductProps) (domain.Product, error) {
	product, err := domain.NewProduct(ownerID, props)
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return domain.Product{}, repositoryError(err, domain.ErrProductNotFound)
	}

	s.logger.InfoContext(ctx, "product created", "product_id", product.ID, "status", product.Status)

	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, error) {
	product, err := s.products.Get(ctx, id, ownerID)
	if err != nil {
		return domain.Product{}, repositoryError(err, domain.ErrProductNotFound)
	}

	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context, ownerID string) ([]domain.Product, error) {
	products, err := s.products.ListAll(ctx, ownerID)
	if err != nil {
		return nil, repositoryError(err, domain.ErrProductNotFound)
	}

	return products, nil
}

func (s *ProductService) GetActive(ctx context.Context, ownerID string) ([]domain.Product, error) {
	products, err := s.products.ListActive(ctx, ownerID)
	if err != nil {
		return nil, repositoryError(err, domain.ErrProductNotFound)
	}

	return products, nil
}

// Update replaces the product and keeps the shopping list in step with status
// transitions. Shopping list failures are logged and never fail the update.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, ownerID string, props domain.ProductProps) (domain.Product, error) {
	if err := props.Validate(); err != nil {
		return domain.Product{}, err
	}

	existing, err := s.products.Get(ctx, id, ownerID)
	if err != nil {
		return domain.Product{}, repositoryError(err, domain.ErrProductNotFound)
	}

	updated, err := existing.Replace(props, s.now())
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.products.Save(ctx, updated); err != nil {
		return domain.Product{}, repositoryError(err, domain.ErrProductNotFound)
	}

	s.logger.InfoContext(ctx, "product updated",
		"product_id", updated.ID,
		"from_status", existing.Status,
		"to_status", updated.Status)

	wasFinished := existing.Status == domain.ProductStatusFinished
	isFinished := updated.Status == domain.ProductStatusFinished

	switch {
	case !wasFinished && isFinished:
		s.addToShoppingList(ctx, updated)
	case wasFinished && !isFinished:
		s.removeFromShoppingList(ctx, updated)
	}

	return updated, nil
}

func (s *ProductService) addToShoppingList(ctx context.Context, product domain.Product) {
	_, found, err := s.items.FindByProduct(ctx, product.ID, product.OwnerID)
	if err != nil {
		s.logger.WarnContext(ctx, "shopping list lookup failed", "method", "addToShoppingList", "product_id", product.ID, "error", err)
		return
	}
	if found {
		return
	}

	item, err := domain.NewShoppingItem(product.OwnerID, product.Name, &product.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "shopping item not created", "method", "addToShoppingList", "product_id", product.ID, "error", err)
		return
	}

	if err := s.items.Save(ctx, item); err != nil {
		s.logger.WarnContext(ctx, "shopping item not saved", "method", "addToShoppingList", "product_id", product.ID, "error", err)
		return
	}

	s.logger.InfoContext(ctx, "product added to shopping list", "product_id", product.ID, "item_id", item.ID)
}

func (s *ProductService) removeFromShoppingList(ctx context.Context, product domain.Product) {
	if err := s.items.DeleteByProduct(ctx, product.ID, product.OwnerID); err != nil {
		s.logger.WarnContext(ctx, "shopping items not removed", "method", "removeFromShoppingList", "product_id", product.ID, "error", err)
	}
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	if _, err := s.products.Get(ctx, id, ownerID); err != nil {
		return repositoryError(err, domain.ErrProductNotFound)
	}

	if err := s.products.Delete(ctx, id, ownerID); err != nil {
		return repositoryError(err, domain.ErrProductNotFound)
	}

	s.logger.InfoContext(ctx, "product deleted", "product_id", id)

	return nil
}

// EstimateExpiry asks the estimator for the stored product and persists the
// estimated date when one is returned.
func (s *ProductService) EstimateExpiry(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, domain.ExpiryEstimation, error) {
	product, err := s.products.Get(ctx, id, ownerID)
	if err != nil {
		return domain.Product{}, domain.ExpiryEstimation{}, repositoryError(err, domain.ErrProductNotFound)
	}

	estimation := s.estimator.Estimate(ctx, product.Name, product.Status, product.Location)
	if estimation.Date == nil {
		return product, estimation, nil
	}

	props := product.Props()
	props.EstimatedExpiryDate = estimation.Date

	product, err = product.Replace(props, s.now())
	if err != nil {
		return domain.Product{}, domain.ExpiryEstimation{}, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return domain.Product{}, domain.ExpiryEstimation{}, repositoryError(err, domain.ErrProductNotFound)
	}

	s.logger.InfoContext(ctx, "expiry estimated", "product_id", product.ID, "confidence", estimation.Confidence)

	return product, estimation, nil
}

// EstimateExpiryDate estimates for a product that is not stored yet.
func (s *ProductService) EstimateExpiryDate(ctx context.Context, name string, status domain.ProductStatus, location *domain.ProductLocation) (domain.ExpiryEstimation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ExpiryEstimation{}, domain.ErrNameEmpty
	}

	return s.estimator.Estimate(ctx, name, status, location), nil
}

func (s *ProductService) IdentifyByImage(ctx context.Context, imageBase64 string) (domain.ProductIdentification, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return domain.ProductIdentification{}, domain.ErrIdentificationFailed
	}

	identification, err := s.identifier.IdentifyByImage(ctx, imageBase64)
	if err != nil {
		return domain.ProductIdentification{}, wrapAs(err, domain.ErrIdentificationFailed)
	}

	return identification, nil
}

func (s *ProductService) IdentifyByBarcode(ctx context.Context, barcode string) (domain.ProductIdentification, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return domain.ProductIdentification{}, domain.ErrIdentificationFailed
	}

	identification, err := s.identifier.IdentifyByBarcode(ctx, barcode)
	if err != nil {
		return domain.ProductIdentification{}, wrapAs(err, domain.ErrIdentificationFailed)
	}

	return identification, nil
}

func (s *ProductService) ScanReceipt(ctx context.Context, imageBase64 string) (domain.ReceiptScanResult, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return domain.ReceiptScanResult{}, domain.ErrScanFailed
	}

	result, err := s.scanner.Scan(ctx, imageBase64)
	if err != nil {
		return domain.ReceiptScanResult{}, wrapAs(err, domain.ErrScanFailed)
	}

	return result, nil
}

// wrapAs makes err match target with errors.Is, keeping the cause.
func wrapAs(err, target error) error {
	if errors.Is(err, target) {
		return err
	}
	return fmt.Errorf("%w: %w", target, err)
}
