package domain

type ProductStatus string

// remember to add new statuses to the validProductStatuses map
const (
	ProductStatusNew         ProductStatus = "new"
	ProductStatusOpened      ProductStatus = "opened"
	ProductStatusAlmostEmpty ProductStatus = "almost_empty"
	ProductStatusFinished    ProductStatus = "finished"
)

var validProductStatuses = map[ProductStatus]struct{}{
	ProductStatusNew:         {},
	ProductStatusOpened:      {},
	ProductStatusAlmostEmpty: {},
	ProductStatusFinished:    {},
}

func ToProductStatus(s string) (ProductStatus, error) {
	status := ProductStatus(s)
	if _, ok := validProductStatuses[status]; ok {
		return status, nil
	}

	return "", ErrInvalidStatus
}

func ProductStatuses() []ProductStatus {
	return []ProductStatus{
		ProductStatusNew,
		ProductStatusOpened,
		ProductStatusAlmostEmpty,
		ProductStatusFinished,
	}
}

func (s ProductStatus) String() string {
	return string(s)
}
