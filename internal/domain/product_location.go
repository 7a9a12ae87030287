package domain

type ProductLocation string

const (
	ProductLocationFridge  ProductLocation = "fridge"
	ProductLocationPantry  ProductLocation = "pantry"
	ProductLocationFreezer ProductLocation = "freezer"
)

var validProductLocations = map[ProductLocation]struct{}{
	ProductLocationFridge:  {},
	ProductLocationPantry:  {},
	ProductLocationFreezer: {},
}

func ToProductLocation(s string) (ProductLocation, error) {
	location := ProductLocation(s)
	if _, ok := validProductLocations[location]; ok {
		return location, nil
	}

	return "", ErrInvalidLocation
}

func ProductLocations() []ProductLocation {
	return []ProductLocation{
		ProductLocationFridge,
		ProductLocationPantry,
		ProductLocationFreezer,
	}
}

func (l ProductLocation) String() string {
	return string(l)
}
