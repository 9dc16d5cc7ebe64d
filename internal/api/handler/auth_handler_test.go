package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	logoutFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

const registerBody = `{"name":"Alice","email":"alice@example.com","password":"password123","password_confirmation":"password123"}`

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (string, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" || input.Password != "password123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/register", registerBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp["access_token"])
	}
	if resp["token_type"] != "Bearer" {
		t.Fatalf("expected token_type Bearer, got %v", resp["token_type"])
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			t.Fatal("service must not be called on invalid input")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/register", `{}`)
	fields := validationFields(t, h.Register(c))

	for _, f := range []string{"name", "email", "password", "password_confirmation"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("expected a message for %q, got %v", f, fields)
		}
	}
}

func TestAuthHandler_Register_PasswordTooShort(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"short","password_confirmation":"short"}`)
	fields := validationFields(t, h.Register(c))

	if fields["password"] != "password must be at least 8 characters" {
		t.Errorf("password message: got %q", fields["password"])
	}
}

func TestAuthHandler_Register_ConfirmationMismatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123","password_confirmation":"different123"}`)
	fields := validationFields(t, h.Register(c))

	if fields["password_confirmation"] != "password_confirmation does not match" {
		t.Errorf("confirmation message: got %q", fields["password_confirmation"])
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"not-an-email","password":"password123","password_confirmation":"password123"}`)
	fields := validationFields(t, h.Register(c))

	if fields["email"] != "email must be a valid email" {
		t.Errorf("email message: got %q", fields["email"])
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/register", registerBody)
	fields := validationFields(t, h.Register(c))

	if fields["email"] != "email has already been taken" {
		t.Errorf("email message: got %q", fields["email"])
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "Bearer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Invalid login details" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, userID string) error {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %q", userID)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/logout", "")
	c.Set("user_id", "user_1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged out successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Logout_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(context.Context, string) error {
			t.Fatal("service must not be called without an identity")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/logout", "")
	err := h.Logout(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected a 401, got %v", err)
	}
}
