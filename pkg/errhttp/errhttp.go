// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ezzystore/partsledger/pkg/httpx"
	billingdomain "github.com/ezzystore/partsledger/services/billing/domain"
	catalogdomain "github.com/ezzystore/partsledger/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrPartNotFound),
		errors.Is(err, billingdomain.ErrDraftNotFound),
		errors.Is(err, billingdomain.ErrBillNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrPartAlreadyExists),
		errors.Is(err, billingdomain.ErrBillNumberConflict):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidPartNumber),
		errors.Is(err, catalogdomain.ErrInvalidPart),
		errors.Is(err, billingdomain.ErrDuplicateItem),
		errors.Is(err, billingdomain.ErrEmptyDraft),
		errors.Is(err, billingdomain.ErrItemNotFound),
		errors.Is(err, billingdomain.ErrInvalidQuantity),
		errors.Is(err, billingdomain.ErrInvalidPrice),
		errors.Is(err, billingdomain.ErrInvalidCustomer):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, billingdomain.ErrUnknownLayout):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
