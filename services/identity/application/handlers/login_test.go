package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"

	"github.com/ezzystore/partsledger/pkg/logger"
	"github.com/ezzystore/partsledger/services/identity/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)                          {}
func (nopLogger) Error(string, ...any)                         {}
func (nopLogger) Warn(string, ...any)                          {}
func (nopLogger) Debug(string, ...any)                         {}
func (nopLogger) InfoContext(context.Context, string, ...any)  {}
func (nopLogger) ErrorContext(context.Context, string, ...any) {}
func (nopLogger) WarnContext(context.Context, string, ...any)  {}
func (nopLogger) DebugContext(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logger.Logger                  { return l }
func (nopLogger) ToSlog() *slog.Logger                         { return slog.New(slog.DiscardHandler) }

func newLoginHandler(t *testing.T) (*LoginHandler, sessions.Store) {
	t.Helper()
	creds, err := domain.NewCredentials("Admin", "Rangwala")
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	store := sessions.NewCookieStore([]byte("test-auth-key-32-bytes-long!!!!!"))
	return NewLoginHandler(creds, store, nopLogger{}), store
}

func postLogin(t *testing.T, h *LoginHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Execute(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	h, _ := newLoginHandler(t)
	w := postLogin(t, h, `{"user_id":"Admin","password":"Rangwala"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !body["success"] {
		t.Fatalf("expected success true, got %v", body)
	}

	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected a session cookie to be set")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h, _ := newLoginHandler(t)
	w := postLogin(t, h, `{"user_id":"Admin","password":"wrong"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["message"] != "Invalid credentials" {
		t.Fatalf("expected message %q, got %q", "Invalid credentials", body["message"])
	}

	if len(w.Result().Cookies()) != 0 {
		t.Fatal("failed login must not set a session cookie")
	}
}

func TestLoginHandler_WrongUserID(t *testing.T) {
	h, _ := newLoginHandler(t)
	w := postLogin(t, h, `{"user_id":"root","password":"Rangwala"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h, _ := newLoginHandler(t)
	w := postLogin(t, h, `{"user_id":"Admin"}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-auth-key-32-bytes-long!!!!!"))
	h := NewLogoutHandler(store, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	h.Execute(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
