package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID                  uuid.UUID
	OwnerID             string
	Name                string
	Status              ProductStatus
	Location            *ProductLocation
	Quantity            *string
	ExpiryDate          *time.Time
	EstimatedExpiryDate *time.Time
	Outcome             *ProductOutcome

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductProps holds the user-editable fields of a Product.
type ProductProps struct {
	Name                string
	Status              ProductStatus
	Location            *ProductLocation
	Quantity            *string
	ExpiryDate          *time.Time
	EstimatedExpiryDate *time.Time
	Outcome             *ProductOutcome
}

func (p ProductProps) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameEmpty
	}

	if p.Outcome != nil && p.Status != ProductStatusFinished {
		return ErrOutcomeRequiresFinishedStatus
	}

	return nil
}

// NewProduct validates props and creates a product with a fresh ID.
// CreatedAt and UpdatedAt are both set to the construction instant.
func NewProduct(ownerID string, props ProductProps) (Product, error) {
	if err := props.Validate(); err != nil {
		return Product{}, err
	}

	now := time.Now().UTC()

	return RestoreProduct(uuid.New(), ownerID, props, now, now), nil
}

// RestoreProduct rebuilds a product from trusted persisted state, no validation is done.
// Never call it with user input.
func RestoreProduct(id uuid.UUID, ownerID string, props ProductProps, createdAt, updatedAt time.Time) Product {
	return Product{
		ID:                  id,
		OwnerID:             ownerID,
		Name:                strings.TrimSpace(props.Name),
		Status:              props.Status,
		Location:            props.Location,
		Quantity:            props.Quantity,
		ExpiryDate:          props.ExpiryDate,
		EstimatedExpiryDate: props.EstimatedExpiryDate,
		Outcome:             props.Outcome,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

func (p Product) Props() ProductProps {
	return ProductProps{
		Name:                p.Name,
		Status:              p.Status,
		Location:            p.Location,
		Quantity:            p.Quantity,
		ExpiryDate:          p.ExpiryDate,
		EstimatedExpiryDate: p.EstimatedExpiryDate,
		Outcome:             p.Outcome,
	}
}

func (p Product) IsActive() bool {
	return p.Status != ProductStatusFinished
}

// EffectiveExpiryDate prefers the explicit expiry date over the estimated one.
func (p Product) EffectiveExpiryDate() *time.Time {
	if p.ExpiryDate != nil {
		return p.ExpiryDate
	}
	return p.EstimatedExpiryDate
}

// Replace validates props and returns the product that supersedes p.
// ID, owner and CreatedAt are carried over, UpdatedAt is set to now.
func (p Product) Replace(props ProductProps, now time.Time) (Product, error) {
	if err := props.Validate(); err != nil {
		return Product{}, err
	}

	return RestoreProduct(p.ID, p.OwnerID, props, p.CreatedAt, now.UTC()), nil
}
