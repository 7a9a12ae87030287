package domain

import "errors"

// Error messages are code-style identifiers, the HTTP layer returns them as-is.
var (
	ErrNameEmpty                     = errors.New("name_empty")
	ErrOutcomeRequiresFinishedStatus = errors.New("product.outcome_requires_finished_status")

	ErrProductNotFound      = errors.New("product.not_found")
	ErrShoppingItemNotFound = errors.New("shopping_item.not_found")

	ErrIdentificationFailed = errors.New("product.identification_failed")
	ErrScanFailed           = errors.New("product.scan_failed")

	ErrNotEnoughProducts = errors.New("suggestion.not_enough_products")
	ErrGenerationFailed  = errors.New("suggestion.generation_failed")
	ErrInvalidSuggestion = errors.New("suggestion.invalid_suggestion")

	ErrRepository = errors.New("repository.persistence")

	ErrInvalidStatus     = errors.New("product.invalid_status")
	ErrInvalidLocation   = errors.New("product.invalid_location")
	ErrInvalidOutcome    = errors.New("product.invalid_outcome")
	ErrInvalidTimeRange  = errors.New("suggestion.invalid_time_range")
	ErrInvalidConfidence = errors.New("invalid_confidence")
)
