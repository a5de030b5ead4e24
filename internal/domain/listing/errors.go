package listing

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrCityInUse       = errors.New("city is referenced by listings")
	ErrCityExists      = errors.New("city name already exists")
)
