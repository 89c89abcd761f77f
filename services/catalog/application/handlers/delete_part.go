package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	appsvcs "github.com/ezzystore/partsledger/services/catalog/application/services"
)

// DeletePartHandler handles DELETE /parts/{id} requests.
type DeletePartHandler struct {
	svc *appsvcs.Services
}

// NewDeletePartHandler returns a DeletePartHandler backed by the given services.
func NewDeletePartHandler(svc *appsvcs.Services) *DeletePartHandler {
	return &DeletePartHandler{svc: svc}
}

// Execute deletes a part.
//
//	@Summary		Delete spare part
//	@Tags			parts
//	@Param			id	path	string	true	"Part ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/parts/{id} [delete]
func (h *DeletePartHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	if err := h.svc.Catalog.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
