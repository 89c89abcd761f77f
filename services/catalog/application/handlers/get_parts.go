package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	appsvcs "github.com/ezzystore/partsledger/services/catalog/application/services"
)

// GetPartsHandler handles the catalog read endpoints.
type GetPartsHandler struct {
	svc *appsvcs.Services
}

// NewGetPartsHandler returns a GetPartsHandler backed by the given services.
func NewGetPartsHandler(svc *appsvcs.Services) *GetPartsHandler {
	return &GetPartsHandler{svc: svc}
}

// List returns all parts, optionally filtered.
//
//	@Summary		List spare parts
//	@Description	All parts, optionally filtered by case-insensitive substring match on part number, name, or category
//	@Tags			parts
//	@Produce		json
//	@Param			q	query		string	false	"Filter query"
//	@Success		200	{array}		PartResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/parts [get]
func (h *GetPartsHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Catalog.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponses(parts))
}

// Search returns the first matches for an incremental-search dropdown.
//
//	@Summary		Incremental part search
//	@Description	First 10 parts matching the query on part number or name
//	@Tags			parts
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{array}		PartResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/parts/search [get]
func (h *GetPartsHandler) Search(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponses(parts))
}

// LowStock returns the parts below their minimum stock level.
//
//	@Summary		Low-stock parts
//	@Tags			parts
//	@Produce		json
//	@Success		200	{array}		PartResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/parts/low-stock [get]
func (h *GetPartsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.Catalog.LowStock(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponses(parts))
}

// GetByID returns a single part.
//
//	@Summary		Get spare part
//	@Tags			parts
//	@Produce		json
//	@Param			id	path		string	true	"Part ID"
//	@Success		200	{object}	PartResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/parts/{id} [get]
func (h *GetPartsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	part, err := h.svc.Catalog.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPartResponse(part))
}
