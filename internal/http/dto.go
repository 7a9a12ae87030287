package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
)

type productRequest struct {
	Name                string     `json:"name"`
	Status              string     `json:"status" binding:"required,product_status"`
	Location            *string    `json:"location" binding:"omitempty,product_location"`
	Quantity            *string    `json:"quantity"`
	ExpiryDate          *time.Time `json:"expiry_date"`
	EstimatedExpiryDate *time.Time `json:"estimated_expiry_date"`
	Outcome             *string    `json:"outcome" binding:"omitempty,product_outcome"`
}

// props converts an already bound request, the enum tags guarantee the parses succeed.
func (r productRequest) props() (domain.ProductProps, error) {
	status, err := domain.ToProductStatus(r.Status)
	if err != nil {
		return domain.ProductProps{}, err
	}

	location, err := optionalEnum(r.Location, domain.ToProductLocation)
	if err != nil {
		return domain.ProductProps{}, err
	}

	outcome, err := optionalEnum(r.Outcome, domain.ToProductOutcome)
	if err != nil {
		return domain.ProductProps{}, err
	}

	return domain.ProductProps{
		Name:                r.Name,
		Status:              status,
		Location:            location,
		Quantity:            r.Quantity,
		ExpiryDate:          utc(r.ExpiryDate),
		EstimatedExpiryDate: utc(r.EstimatedExpiryDate),
		Outcome:             outcome,
	}, nil
}

type productResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Status              string     `json:"status"`
	Location            *string    `json:"location,omitempty"`
	Quantity            *string    `json:"quantity,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	EstimatedExpiryDate *time.Time `json:"estimated_expiry_date,omitempty"`
	Outcome             *string    `json:"outcome,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:                  p.ID.String(),
		Name:                p.Name,
		Status:              p.Status.String(),
		Location:            enumString(p.Location),
		Quantity:            p.Quantity,
		ExpiryDate:          p.ExpiryDate,
		EstimatedExpiryDate: p.EstimatedExpiryDate,
		Outcome:             enumString(p.Outcome),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

type estimateExpiryDateRequest struct {
	ProductName string  `json:"product_name"`
	Status      string  `json:"status" binding:"required,product_status"`
	Location    *string `json:"location" binding:"omitempty,product_location"`
}

type expiryEstimationResponse struct {
	Date       *time.Time `json:"date,omitempty"`
	Confidence string     `json:"confidence"`
}

func toExpiryEstimationResponse(e domain.ExpiryEstimation) expiryEstimationResponse {
	return expiryEstimationResponse{
		Date:       e.Date,
		Confidence: string(e.Confidence),
	}
}

type imageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type barcodeRequest struct {
	Barcode string `json:"barcode" binding:"required,max=64"`
}

type identificationResponse struct {
	Name              string  `json:"name"`
	Confidence        string  `json:"confidence"`
	Method            string  `json:"method"`
	SuggestedLocation *string `json:"suggested_location,omitempty"`
	SuggestedQuantity *string `json:"suggested_quantity,omitempty"`
}

func toIdentificationResponse(i domain.ProductIdentification) identificationResponse {
	return identificationResponse{
		Name:              i.Name,
		Confidence:        string(i.Confidence),
		Method:            string(i.Method),
		SuggestedLocation: enumString(i.SuggestedLocation),
		SuggestedQuantity: i.SuggestedQuantity,
	}
}

type receiptItemResponse struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
}

type receiptScanResponse struct {
	Items []receiptItemResponse `json:"items"`
}

func toReceiptScanResponse(r domain.ReceiptScanResult) receiptScanResponse {
	return receiptScanResponse{
		Items: lo.Map(r.Items, func(item domain.ReceiptItem, _ int) receiptItemResponse {
			return receiptItemResponse{Name: item.Name, Confidence: string(item.Confidence)}
		}),
	}
}

type createShoppingItemRequest struct {
	Name      string  `json:"name"`
	ProductID *string `json:"product_id"`
}

type updateShoppingItemRequest struct {
	Name     *string `json:"name"`
	IsBought *bool   `json:"is_bought"`
}

type shoppingItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProductID *string   `json:"product_id,omitempty"`
	IsBought  bool      `json:"is_bought"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toShoppingItemResponse(i domain.ShoppingItem) shoppingItemResponse {
	var productID *string
	if i.ProductID != nil {
		productID = lo.ToPtr(i.ProductID.String())
	}

	return shoppingItemResponse{
		ID:        i.ID.String(),
		Name:      i.Name,
		ProductID: productID,
		IsBought:  i.IsBought,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type clearBoughtResponse struct {
	Count int64 `json:"count"`
}

type suggestionsQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

type suggestionIngredientResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    *string `json:"quantity,omitempty"`
	IsUrgent    bool    `json:"is_urgent"`
}

type suggestionResponse struct {
	ID                string                         `json:"id"`
	Title             string                         `json:"title"`
	Description       *string                        `json:"description,omitempty"`
	EstimatedTime     string                         `json:"estimated_time"`
	Ingredients       []suggestionIngredientResponse `json:"ingredients"`
	UrgentIngredients []string                       `json:"urgent_ingredients"`
	Steps             []string                       `json:"steps,omitempty"`
	CreatedAt         time.Time                      `json:"created_at"`
}

func toSuggestionResponse(s domain.Suggestion) suggestionResponse {
	urgent := s.UrgentIngredients
	if urgent == nil {
		urgent = []string{}
	}

	return suggestionResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		EstimatedTime: string(s.EstimatedTime),
		Ingredients: lo.Map(s.Ingredients, func(ing domain.SuggestionIngredient, _ int) suggestionIngredientResponse {
			return suggestionIngredientResponse{
				ProductID:   ing.ProductID,
				ProductName: ing.ProductName,
				Quantity:    ing.Quantity,
				IsUrgent:    ing.IsUrgent,
			}
		}),
		UrgentIngredients: urgent,
		Steps:             s.Steps,
		CreatedAt:         s.CreatedAt,
	}
}

func optionalEnum[T any](s *string, parse func(string) (T, error)) (*T, error) {
	if s == nil {
		return nil, nil
	}

	v, err := parse(*s)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	return lo.ToPtr(string(*v))
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.UTC())
}

func parseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
