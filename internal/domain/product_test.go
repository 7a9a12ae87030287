package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name      string
		props     domain.ProductProps
		wantError error
	}{
		{
			name:  "minimal product: ok",
			props: domain.ProductProps{Name: "Milk", Status: domain.ProductStatusNew},
		},
		{
			name: "all fields: ok",
			props: domain.ProductProps{
				Name:                "Yogurt",
				Status:              domain.ProductStatusOpened,
				Location:            lo.ToPtr(domain.ProductLocationFridge),
				Quantity:            lo.ToPtr("4 x 125 g"),
				ExpiryDate:          lo.ToPtr(time.Now().AddDate(0, 0, 5)),
				EstimatedExpiryDate: lo.ToPtr(time.Now().AddDate(0, 0, 3)),
			},
		},
		{
			name: "finished with outcome: ok",
			props: domain.ProductProps{
				Name:    "Bread",
				Status:  domain.ProductStatusFinished,
				Outcome: lo.ToPtr(domain.ProductOutcomeUsed),
			},
		},
		{
			name:      "empty name: fail",
			props:     domain.ProductProps{Name: "", Status: domain.ProductStatusNew},
			wantError: domain.ErrNameEmpty,
		},
		{
			name:      "whitespace name: fail",
			props:     domain.ProductProps{Name: "  \t ", Status: domain.ProductStatusNew},
			wantError: domain.ErrNameEmpty,
		},
		{
			name: "empty name is reported before outcome: fail",
			props: domain.ProductProps{
				Name:    " ",
				Status:  domain.ProductStatusOpened,
				Outcome: lo.ToPtr(domain.ProductOutcomeUsed),
			},
			wantError: domain.ErrNameEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewProduct("owner-1", tt.props)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.NotEqual(t, uuid.Nil, p.ID)
			assert.Equal(t, "owner-1", p.OwnerID)
			assert.Equal(t, tt.props.Name, p.Name)
			assert.Equal(t, tt.props.Status, p.Status)
			assert.False(t, p.CreatedAt.IsZero())
			assert.Equal(t, p.CreatedAt, p.UpdatedAt)
		})
	}
}

func TestNewProduct_OutcomeRequiresFinishedStatus(t *testing.T) {
	for _, status := range domain.ProductStatuses() {
		for _, outcome := range domain.ProductOutcomes() {
			_, err := domain.NewProduct("owner-1", domain.ProductProps{
				Name:    "Cheese",
				Status:  status,
				Outcome: lo.ToPtr(outcome),
			})

			if status == domain.ProductStatusFinished {
				assert.NoError(t, err, "status %s outcome %s", status, outcome)
			} else {
				assert.ErrorIs(t, err, domain.ErrOutcomeRequiresFinishedStatus, "status %s outcome %s", status, outcome)
			}
		}
	}
}

func TestNewProduct_TrimsName(t *testing.T) {
	p, err := domain.NewProduct("owner-1", domain.ProductProps{Name: "  Olive oil ", Status: domain.ProductStatusNew})
	require.NoError(t, err)
	assert.Equal(t, "Olive oil", p.Name)
}

func TestRestoreProduct_SkipsValidation(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	p := domain.RestoreProduct(id, "owner-1", domain.ProductProps{
		Name:    "",
		Status:  domain.ProductStatusNew,
		Outcome: lo.ToPtr(domain.ProductOutcomeThrownAway),
	}, created, created.Add(time.Hour))

	assert.Equal(t, id, p.ID)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), p.UpdatedAt)
	assert.NotNil(t, p.Outcome)
}

func TestProduct_EffectiveExpiryDate(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 1)
	estimated := time.Now().AddDate(0, 0, 7)

	p := domain.Product{EstimatedExpiryDate: &estimated}
	assert.Equal(t, &estimated, p.EffectiveExpiryDate())

	p.ExpiryDate = &expiry
	assert.Equal(t, &expiry, p.EffectiveExpiryDate())

	assert.Nil(t, domain.Product{}.EffectiveExpiryDate())
}

func TestToProductStatus(t *testing.T) {
	for _, s := range domain.ProductStatuses() {
		status, err := domain.ToProductStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, status)
	}

	_, err := domain.ToProductStatus("eaten")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = domain.ToProductLocation("garage")
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	_, err = domain.ToProductOutcome("sold")
	assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
}

func TestProduct_Replace(t *testing.T) {
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	p := domain.RestoreProduct(uuid.New(), "owner-1", domain.ProductProps{
		Name:   "Milk",
		Status: domain.ProductStatusOpened,
	}, created, created)

	replaced, err := p.Replace(domain.ProductProps{
		Name:    " Oat milk ",
		Status:  domain.ProductStatusFinished,
		Outcome: lo.ToPtr(domain.ProductOutcomeUsed),
	}, updated)
	require.NoError(t, err)

	assert.Equal(t, p.ID, replaced.ID)
	assert.Equal(t, p.OwnerID, replaced.OwnerID)
	assert.Equal(t, created, replaced.CreatedAt)
	assert.Equal(t, updated, replaced.UpdatedAt)
	assert.Equal(t, "Oat milk", replaced.Name)

	_, err = p.Replace(domain.ProductProps{
		Name:    "Milk",
		Status:  domain.ProductStatusOpened,
		Outcome: lo.ToPtr(domain.ProductOutcomeUsed),
	}, updated)
	assert.ErrorIs(t, err, domain.ErrOutcomeRequiresFinishedStatus)
}
