package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
)

var errProductUnknown = errors.New("barcode not found")

// OpenFoodFacts looks products up by barcode in the public OpenFoodFacts database.
type OpenFoodFacts struct {
	client  *http.Client
	baseURL string
}

func NewOpenFoodFacts(client *http.Client, baseURL string) (*OpenFoodFacts, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	return &OpenFoodFacts{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type offResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

type offProduct struct {
	ProductNameES  *string  `json:"product_name_es"`
	ProductName    *string  `json:"product_name"`
	Quantity       *string  `json:"quantity"`
	CategoriesTags []string `json:"categories_tags"`
}

// Lookup retries transport errors and 5xx answers twice.
func (c *OpenFoodFacts) Lookup(ctx context.Context, barcode string) (domain.ProductIdentification, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(barcode))

	var body offResponse

	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))

	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		b, err := c.fetch(ctx, endpoint)
		if err != nil {
			return err
		}
		body = b
		return nil
	}); err != nil {
		return domain.ProductIdentification{}, fmt.Errorf("c.fetch: %w", err)
	}

	if body.Status != 1 || body.Product == nil {
		return domain.ProductIdentification{}, errProductUnknown
	}

	name := lo.FromPtr(optionalText(body.Product.ProductNameES))
	if name == "" {
		name = lo.FromPtr(optionalText(body.Product.ProductName))
	}
	if name == "" {
		return domain.ProductIdentification{}, errProductUnknown
	}

	return domain.ProductIdentification{
		Name:              name,
		Confidence:        domain.IdentificationConfidenceHigh,
		Method:            domain.IdentificationMethodBarcode,
		SuggestedLocation: lo.ToPtr(locationFromCategories(body.Product.CategoriesTags)),
		SuggestedQuantity: optionalText(body.Product.Quantity),
	}, nil
}

func (c *OpenFoodFacts) fetch(ctx context.Context, endpoint string) (offResponse, error) {
	var body offResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return body, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "foodie/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return body, retry.RetryableError(fmt.Errorf("client.Do: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return body, errProductUnknown
	case resp.StatusCode >= http.StatusInternalServerError:
		return body, retry.RetryableError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return body, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return body, fmt.Errorf("json.Decode: %w", err)
	}

	return body, nil
}

// locationFromCategories matches English and Spanish category tags.
func locationFromCategories(categories []string) domain.ProductLocation {
	joined := strings.ToLower(strings.Join(categories, ","))

	containsAny := func(needles ...string) bool {
		return lo.SomeBy(needles, func(n string) bool {
			return strings.Contains(joined, n)
		})
	}

	switch {
	case containsAny("frozen", "congel"):
		return domain.ProductLocationFreezer
	case containsAny("dair", "lact", "fresh", "fresc", "meat", "carn", "fish", "pescad"):
		return domain.ProductLocationFridge
	default:
		return domain.ProductLocationPantry
	}
}
