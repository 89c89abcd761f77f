package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ezzystore/partsledger/pkg/auth"
	"github.com/ezzystore/partsledger/pkg/httpx"
	"github.com/ezzystore/partsledger/pkg/logger"
	pkgvalidator "github.com/ezzystore/partsledger/pkg/validator"
	"github.com/ezzystore/partsledger/services/identity/domain"
)

// LoginRequest carries the login form fields.
//
//	@name	LoginRequest
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginHandler handles POST /login.
type LoginHandler struct {
	creds *domain.Credentials
	store sessions.Store
	log   logger.Logger
}

// NewLoginHandler returns a LoginHandler for the given account.
func NewLoginHandler(creds *domain.Credentials, store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{creds: creds, store: store, log: log}
}

// Execute verifies the credentials and issues a session cookie.
// A failed attempt returns 401 with {"message": "Invalid credentials"};
// the body does not say which field was wrong.
//
//	@Summary		Log in
//	@Tags			identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body	LoginRequest	true	"Login request"
//	@Success		200		{object}	map[string]bool
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	if err := h.creds.Verify(req.UserID, req.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.WarnContext(r.Context(), "failed login attempt", "user_id", req.UserID)
			httpx.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if err := auth.IssueSession(w, r, h.store, h.creds.UserID()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to issue session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
