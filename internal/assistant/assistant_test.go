package assistant_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/assistant"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/nikolayk812/foodie/internal/template"
	"github.com/stretchr/testify/require"
)

var clock = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// tiny valid base64 payload, the model is scripted so the bytes do not matter
const imageBase64 = "aGVsbG8="

func testOptions() []assistant.Option {
	return []assistant.Option{
		assistant.WithClock(func() time.Time { return clock }),
		assistant.WithCallOptions(steps.WithRetry(0, time.Millisecond)),
	}
}

func newEngine(t *testing.T) *template.Engine {
	t.Helper()

	engine, err := template.NewEngine()
	require.NoError(t, err)

	return engine
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func product(name string, expiry *time.Time, quantity *string) domain.Product {
	return domain.RestoreProduct(uuid.New(), "user-1", domain.ProductProps{
		Name:       name,
		Status:     domain.ProductStatusNew,
		Quantity:   quantity,
		ExpiryDate: expiry,
	}, clock, clock)
}
