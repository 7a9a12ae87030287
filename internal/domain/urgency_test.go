package domain_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

// 09:00 UTC leaves room for "later today" and "earlier today" instants.
var now = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func productExpiringAt(expiry *time.Time, estimated *time.Time) domain.Product {
	return domain.RestoreProduct(
		[16]byte{1},
		"owner-1",
		domain.ProductProps{
			Name:                "Milk",
			Status:              domain.ProductStatusOpened,
			ExpiryDate:          expiry,
			EstimatedExpiryDate: estimated,
		},
		now, now,
	)
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		name      string
		expiry    *time.Time
		estimated *time.Time
		want      domain.UrgencyLevel
	}{
		{
			name: "no dates: ok",
			want: domain.UrgencyOk,
		},
		{
			name:   "expires later today: use today",
			expiry: lo.ToPtr(now.Add(10 * time.Hour)),
			want:   domain.UrgencyUseToday,
		},
		{
			name:   "expired earlier today: wouldnt trust",
			expiry: lo.ToPtr(now.Add(-time.Hour)),
			want:   domain.UrgencyWouldntTrust,
		},
		{
			name:   "expires tomorrow: use soon",
			expiry: lo.ToPtr(now.AddDate(0, 0, 1)),
			want:   domain.UrgencyUseSoon,
		},
		{
			name:   "expires in two days: use soon",
			expiry: lo.ToPtr(now.AddDate(0, 0, 2)),
			want:   domain.UrgencyUseSoon,
		},
		{
			name:   "expires in three days: ok",
			expiry: lo.ToPtr(now.AddDate(0, 0, 3)),
			want:   domain.UrgencyOk,
		},
		{
			name:   "expired yesterday: wouldnt trust",
			expiry: lo.ToPtr(now.AddDate(0, 0, -1)),
			want:   domain.UrgencyWouldntTrust,
		},
		{
			name:      "only estimate, tomorrow: use soon",
			estimated: lo.ToPtr(now.AddDate(0, 0, 1)),
			want:      domain.UrgencyUseSoon,
		},
		{
			name:      "explicit date wins over estimate",
			expiry:    lo.ToPtr(now.AddDate(0, 0, 10)),
			estimated: lo.ToPtr(now.AddDate(0, 0, -5)),
			want:      domain.UrgencyOk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := productExpiringAt(tt.expiry, tt.estimated)
			assert.Equal(t, tt.want, domain.Urgency(p, now))
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	_, ok := domain.DaysUntilExpiry(productExpiringAt(nil, nil), now)
	assert.False(t, ok)

	days, ok := domain.DaysUntilExpiry(productExpiringAt(lo.ToPtr(now.AddDate(0, 0, 4)), nil), now)
	assert.True(t, ok)
	assert.Equal(t, 4, days)

	days, ok = domain.DaysUntilExpiry(productExpiringAt(lo.ToPtr(now.AddDate(0, 0, -2)), nil), now)
	assert.True(t, ok)
	assert.Equal(t, -2, days)

	// calendar days, not 24h periods: 23:30 tomorrow is still 1 day away
	lateTomorrow := time.Date(2026, time.March, 11, 23, 30, 0, 0, time.UTC)
	days, _ = domain.DaysUntilExpiry(productExpiringAt(&lateTomorrow, nil), now)
	assert.Equal(t, 1, days)
}

func TestExpiredAndExpiringSoonMayOverlap(t *testing.T) {
	p := productExpiringAt(lo.ToPtr(now.Add(-time.Hour)), nil)

	assert.True(t, domain.IsExpired(p, now))
	assert.True(t, domain.IsExpiringSoon(p, now))
	assert.Equal(t, domain.UrgencyWouldntTrust, domain.Urgency(p, now))
}

func TestSortByUrgency(t *testing.T) {
	named := func(name string, expiry *time.Time) domain.Product {
		p := productExpiringAt(expiry, nil)
		p.Name = name
		return p
	}

	products := []domain.Product{
		named("rice", nil),
		named("yogurt", lo.ToPtr(now.AddDate(0, 0, 2))),
		named("pasta", nil),
		named("chicken", lo.ToPtr(now.Add(5*time.Hour))),
		named("cheese", lo.ToPtr(now.AddDate(0, 0, 1))),
	}

	domain.SortByUrgency(products, now)

	names := lo.Map(products, func(p domain.Product, _ int) string { return p.Name })
	assert.Equal(t, []string{"chicken", "yogurt", "cheese", "rice", "pasta"}, names)
}

func TestUrgencyLevelRank(t *testing.T) {
	assert.Less(t, domain.UrgencyUseToday.Rank(), domain.UrgencyUseSoon.Rank())
	assert.Less(t, domain.UrgencyUseSoon.Rank(), domain.UrgencyOk.Rank())
	assert.Less(t, domain.UrgencyOk.Rank(), domain.UrgencyWouldntTrust.Rank())
}
