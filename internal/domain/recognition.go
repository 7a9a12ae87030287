package domain

import "time"

// Confidence qualifies an AI expiry estimation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

func ToConfidence(s string) (Confidence, error) {
	switch c := Confidence(s); c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone:
		return c, nil
	}

	return "", ErrInvalidConfidence
}

type ExpiryEstimation struct {
	Date       *time.Time
	Confidence Confidence
}

// NoEstimation is returned when the estimator cannot produce a date.
func NoEstimation() ExpiryEstimation {
	return ExpiryEstimation{Confidence: ConfidenceNone}
}

type IdentificationConfidence string

const (
	IdentificationConfidenceHigh IdentificationConfidence = "high"
	IdentificationConfidenceLow  IdentificationConfidence = "low"
)

type IdentificationMethod string

const (
	IdentificationMethodBarcode IdentificationMethod = "barcode"
	IdentificationMethodVisual  IdentificationMethod = "visual"
)

type ProductIdentification struct {
	Name              string
	Confidence        IdentificationConfidence
	Method            IdentificationMethod
	SuggestedLocation *ProductLocation
	SuggestedQuantity *string
}

type ReceiptItem struct {
	Name       string
	Confidence IdentificationConfidence
}

type ReceiptScanResult struct {
	Items []ReceiptItem
}
