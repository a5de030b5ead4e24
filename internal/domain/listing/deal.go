package listing

import "fmt"

// DealType distinguishes sale listings from rentals.
type DealType string

const (
	DealSale DealType = "sale"
	DealRent DealType = "rent"
)

func (d DealType) IsValid() bool {
	return d == DealSale || d == DealRent
}

// ParseDealType validates a raw deal type string.
func ParseDealType(raw string) (DealType, error) {
	d := DealType(raw)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid deal type: %s", raw)
	}
	return d, nil
}
