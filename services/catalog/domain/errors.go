package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrPartNotFound indicates the requested spare part does not exist.
	ErrPartNotFound = errors.New("part not found")

	// ErrPartAlreadyExists indicates a part with the same part number already exists.
	ErrPartAlreadyExists = errors.New("part already exists")

	// ErrInvalidPartNumber indicates the part number violates domain constraints.
	ErrInvalidPartNumber = errors.New("invalid part number")

	// ErrInvalidPart indicates a part field violates domain constraints.
	ErrInvalidPart = errors.New("invalid part")
)
