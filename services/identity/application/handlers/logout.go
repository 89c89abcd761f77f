package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ezzystore/partsledger/pkg/auth"
	"github.com/ezzystore/partsledger/pkg/httpx"
	"github.com/ezzystore/partsledger/pkg/logger"
)

// LogoutHandler handles POST /logout.
type LogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewLogoutHandler returns a LogoutHandler using the given session store.
func NewLogoutHandler(store sessions.Store, log logger.Logger) *LogoutHandler {
	return &LogoutHandler{store: store, log: log}
}

// Execute clears the session. Logging out without a session still succeeds.
//
//	@Summary	Log out
//	@Tags		identity
//	@Produce	json
//	@Success	200	{object}	map[string]bool
//	@Router		/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.ClearSession(w, r, h.store); err != nil {
		h.log.ErrorContext(r.Context(), "failed to clear session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
