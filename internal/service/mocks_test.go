package service_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/stretchr/testify/mock"
)

type productRepositoryMock struct {
	mock.Mock
}

func (m *productRepositoryMock) ListAll(ctx context.Context, ownerID string) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *productRepositoryMock) ListActive(ctx context.Context, ownerID string) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *productRepositoryMock) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.Product, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *productRepositoryMock) Save(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *productRepositoryMock) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type shoppingItemRepositoryMock struct {
	mock.Mock
}

func (m *shoppingItemRepositoryMock) ListAll(ctx context.Context, ownerID string) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.ShoppingItem), args.Error(1)
}

func (m *shoppingItemRepositoryMock) Get(ctx context.Context, id uuid.UUID, ownerID string) (domain.ShoppingItem, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.ShoppingItem), args.Error(1)
}

func (m *shoppingItemRepositoryMock) FindByProduct(ctx context.Context, productID uuid.UUID, ownerID string) (domain.ShoppingItem, bool, error) {
	args := m.Called(ctx, productID, ownerID)
	return args.Get(0).(domain.ShoppingItem), args.Bool(1), args.Error(2)
}

func (m *shoppingItemRepositoryMock) Save(ctx context.Context, item domain.ShoppingItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *shoppingItemRepositoryMock) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *shoppingItemRepositoryMock) DeleteByProduct(ctx context.Context, productID uuid.UUID, ownerID string) error {
	return m.Called(ctx, productID, ownerID).Error(0)
}

func (m *shoppingItemRepositoryMock) DeleteBought(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type suggestionGeneratorMock struct {
	mock.Mock
}

func (m *suggestionGeneratorMock) Generate(ctx context.Context, products []domain.Product, limit int) ([]domain.Suggestion, error) {
	args := m.Called(ctx, products, limit)
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

type expiryEstimatorMock struct {
	mock.Mock
}

func (m *expiryEstimatorMock) Estimate(ctx context.Context, name string, status domain.ProductStatus, location *domain.ProductLocation) domain.ExpiryEstimation {
	return m.Called(ctx, name, status, location).Get(0).(domain.ExpiryEstimation)
}

type productIdentifierMock struct {
	mock.Mock
}

func (m *productIdentifierMock) IdentifyByImage(ctx context.Context, imageBase64 string) (domain.ProductIdentification, error) {
	args := m.Called(ctx, imageBase64)
	return args.Get(0).(domain.ProductIdentification), args.Error(1)
}

func (m *productIdentifierMock) IdentifyByBarcode(ctx context.Context, barcode string) (domain.ProductIdentification, error) {
	args := m.Called(ctx, barcode)
	return args.Get(0).(domain.ProductIdentification), args.Error(1)
}

type receiptScannerMock struct {
	mock.Mock
}

func (m *receiptScannerMock) Scan(ctx context.Context, imageBase64 string) (domain.ReceiptScanResult, error) {
	args := m.Called(ctx, imageBase64)
	return args.Get(0).(domain.ReceiptScanResult), args.Error(1)
}

// captureHandler records log records so tests can assert on warnings.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func (h *captureHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}
