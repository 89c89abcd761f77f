package models

import (
	"fmt"
	"strings"
)

// PartNumber is a value object representing a valid manufacturer part number.
// Encapsulates validation rules: non-blank, at most 64 characters, no
// surrounding whitespace.
type PartNumber string

const maxPartNumberLength = 64

// NewPartNumber constructs a valid PartNumber or returns an error if
// constraints are violated. Surrounding whitespace is trimmed.
func NewPartNumber(s string) (PartNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("part number must not be blank")
	}
	if len(s) > maxPartNumberLength {
		return "", fmt.Errorf("part number must not exceed %d characters", maxPartNumberLength)
	}
	return PartNumber(s), nil
}

// String returns the underlying string value.
func (n PartNumber) String() string {
	return string(n)
}
