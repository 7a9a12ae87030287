package assistant_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nikolayk812/foodie/internal/assistant"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/generator/llmtest"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentifier(t *testing.T, model *llmtest.Model, baseURL string) *assistant.ProductIdentifier {
	t.Helper()

	barcodes, err := assistant.NewOpenFoodFacts(http.DefaultClient, baseURL)
	require.NoError(t, err)

	identifier, err := assistant.NewProductIdentifier(model, newEngine(t), barcodes, testOptions()...)
	require.NoError(t, err)

	return identifier
}

func TestProductIdentifier_IdentifyByImage(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		want      domain.ProductIdentification
		wantError bool
	}{
		{
			name:   "full answer",
			answer: `{"name": " Yogur natural ", "confidence": "high", "suggestedLocation": "fridge", "suggestedQuantity": "4 x 125 g"}`,
			want: domain.ProductIdentification{
				Name:              "Yogur natural",
				Confidence:        domain.IdentificationConfidenceHigh,
				Method:            domain.IdentificationMethodVisual,
				SuggestedLocation: lo.ToPtr(domain.ProductLocationFridge),
				SuggestedQuantity: lo.ToPtr("4 x 125 g"),
			},
		},
		{
			name:   "unknown location and confidence",
			answer: `{"name": "Arroz", "confidence": "maybe", "suggestedLocation": "garage", "suggestedQuantity": " "}`,
			want: domain.ProductIdentification{
				Name:       "Arroz",
				Confidence: domain.IdentificationConfidenceLow,
				Method:     domain.IdentificationMethodVisual,
			},
		},
		{
			name:      "not recognised",
			answer:    `{"name": "", "confidence": "low"}`,
			wantError: true,
		},
		{
			name:      "garbage",
			answer:    `sorry`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := llmtest.Text(tt.answer)
			identifier := newIdentifier(t, model, "http://localhost")

			got, err := identifier.IdentifyByImage(t.Context(), imageBase64)
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrIdentificationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			imageURL, ok := llmtest.ImageURLOf(model.Request(0)[1])
			require.True(t, ok)
			assert.Equal(t, "data:image/jpeg;base64,"+imageBase64, imageURL)
		})
	}
}

func TestProductIdentifier_IdentifyByImage_InvalidImage(t *testing.T) {
	model := llmtest.Text(`{"name": "Arroz"}`)
	identifier := newIdentifier(t, model, "http://localhost")

	_, err := identifier.IdentifyByImage(t.Context(), "not base64 !!")
	assert.ErrorIs(t, err, domain.ErrIdentificationFailed)
	assert.Zero(t, model.Calls())
}

func TestProductIdentifier_IdentifyByBarcode(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      domain.ProductIdentification
		wantError bool
	}{
		{
			name:   "spanish name preferred",
			status: http.StatusOK,
			body: `{"status": 1, "product": {"product_name_es": "Leche entera", "product_name": "Whole milk",
				"quantity": "1 L", "categories_tags": ["en:dairies", "en:milks"]}}`,
			want: domain.ProductIdentification{
				Name:              "Leche entera",
				Confidence:        domain.IdentificationConfidenceHigh,
				Method:            domain.IdentificationMethodBarcode,
				SuggestedLocation: lo.ToPtr(domain.ProductLocationFridge),
				SuggestedQuantity: lo.ToPtr("1 L"),
			},
		},
		{
			name:   "fallback name, frozen",
			status: http.StatusOK,
			body:   `{"status": 1, "product": {"product_name_es": "", "product_name": "Peas", "categories_tags": ["en:frozen-foods"]}}`,
			want: domain.ProductIdentification{
				Name:              "Peas",
				Confidence:        domain.IdentificationConfidenceHigh,
				Method:            domain.IdentificationMethodBarcode,
				SuggestedLocation: lo.ToPtr(domain.ProductLocationFreezer),
			},
		},
		{
			name:   "no categories means pantry",
			status: http.StatusOK,
			body:   `{"status": 1, "product": {"product_name": "Lentejas"}}`,
			want: domain.ProductIdentification{
				Name:              "Lentejas",
				Confidence:        domain.IdentificationConfidenceHigh,
				Method:            domain.IdentificationMethodBarcode,
				SuggestedLocation: lo.ToPtr(domain.ProductLocationPantry),
			},
		},
		{
			name:      "unknown barcode",
			status:    http.StatusOK,
			body:      `{"status": 0, "status_verbose": "product not found"}`,
			wantError: true,
		},
		{
			name:      "nameless product",
			status:    http.StatusOK,
			body:      `{"status": 1, "product": {"quantity": "1 kg"}}`,
			wantError: true,
		},
		{
			name:      "not found status",
			status:    http.StatusNotFound,
			body:      `{}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			identifier := newIdentifier(t, llmtest.Text("{}"), server.URL)

			got, err := identifier.IdentifyByBarcode(t.Context(), "8410000000001")
			assert.Equal(t, "/api/v2/product/8410000000001.json", path)

			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrIdentificationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenFoodFacts_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"status": 1, "product": {"product_name": "Pan"}}`)
	}))
	defer server.Close()

	off, err := assistant.NewOpenFoodFacts(server.Client(), server.URL)
	require.NoError(t, err)

	got, err := off.Lookup(t.Context(), "123")
	require.NoError(t, err)

	assert.Equal(t, "Pan", got.Name)
	assert.Equal(t, int32(2), calls.Load())
}
