package domain

// ProductOutcome records what happened to a finished product.
type ProductOutcome string

const (
	ProductOutcomeUsed       ProductOutcome = "used"
	ProductOutcomeThrownAway ProductOutcome = "thrown_away"
)

var validProductOutcomes = map[ProductOutcome]struct{}{
	ProductOutcomeUsed:       {},
	ProductOutcomeThrownAway: {},
}

func ToProductOutcome(s string) (ProductOutcome, error) {
	outcome := ProductOutcome(s)
	if _, ok := validProductOutcomes[outcome]; ok {
		return outcome, nil
	}

	return "", ErrInvalidOutcome
}

func ProductOutcomes() []ProductOutcome {
	return []ProductOutcome{
		ProductOutcomeUsed,
		ProductOutcomeThrownAway,
	}
}

func (o ProductOutcome) String() string {
	return string(o)
}
