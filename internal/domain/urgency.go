package domain

import (
	"cmp"
	"slices"
	"time"
)

type UrgencyLevel string

const (
	UrgencyOk           UrgencyLevel = "ok"
	UrgencyUseSoon      UrgencyLevel = "use_soon"
	UrgencyUseToday     UrgencyLevel = "use_today"
	UrgencyWouldntTrust UrgencyLevel = "wouldnt_trust"
)

// ExpiringSoonDays is the inclusive day window for UrgencyUseSoon.
const ExpiringSoonDays = 2

// Rank orders levels most urgent first. Expired products sort last because
// they are excluded from use, not prioritised.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyUseToday:
		return 0
	case UrgencyUseSoon:
		return 1
	case UrgencyOk:
		return 2
	default:
		return 3
	}
}

func (u UrgencyLevel) String() string {
	return string(u)
}

// DaysUntilExpiry returns the signed number of calendar days (UTC) between now
// and the effective expiry date. ok is false when the product has no date.
func DaysUntilExpiry(p Product, now time.Time) (days int, ok bool) {
	date := p.EffectiveExpiryDate()
	if date == nil {
		return 0, false
	}

	diff := calendarDay(*date).Sub(calendarDay(now))

	return int(diff.Hours() / 24), true
}

// IsExpired compares instants, not days: a product expiring earlier today is expired.
func IsExpired(p Product, now time.Time) bool {
	date := p.EffectiveExpiryDate()
	if date == nil {
		return false
	}

	return date.Before(now)
}

// IsExpiringSoon is day based and may overlap with IsExpired for the same product.
func IsExpiringSoon(p Product, now time.Time) bool {
	days, ok := DaysUntilExpiry(p, now)
	if !ok {
		return false
	}

	return days >= 0 && days <= ExpiringSoonDays
}

// Urgency classifies a product. The expired check must run before the day count.
func Urgency(p Product, now time.Time) UrgencyLevel {
	if p.EffectiveExpiryDate() == nil {
		return UrgencyOk
	}

	if IsExpired(p, now) {
		return UrgencyWouldntTrust
	}

	days, _ := DaysUntilExpiry(p, now)
	if days == 0 {
		return UrgencyUseToday
	}

	if IsExpiringSoon(p, now) {
		return UrgencyUseSoon
	}

	return UrgencyOk
}

// SortByUrgency sorts products in place, most urgent first.
// Products of equal urgency keep their relative order.
func SortByUrgency(products []Product, now time.Time) {
	slices.SortStableFunc(products, func(a, b Product) int {
		return cmp.Compare(Urgency(a, now).Rank(), Urgency(b, now).Rank())
	})
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
