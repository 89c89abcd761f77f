package domain

import "errors"

var (
	ErrDraftNotFound      = errors.New("draft not found")
	ErrEmptyDraft         = errors.New("draft has no items")
	ErrDuplicateItem      = errors.New("part already on draft")
	ErrItemNotFound       = errors.New("item not on draft")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPrice       = errors.New("unit price must be greater than zero")
	ErrInvalidCustomer    = errors.New("invalid customer name")
	ErrBillNotFound       = errors.New("bill not found")
	ErrBillNumberConflict = errors.New("bill number already used")
	ErrUnknownLayout      = errors.New("unknown invoice layout")
)
