package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/formalshoes/store-api/internal/core/domain"
)

type stubResolver struct {
	user *domain.User
	err  error

	gotAuthorization string
}

func (s *stubResolver) ResolveIdentity(_ context.Context, authorization string) (*domain.User, error) {
	s.gotAuthorization = authorization
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{
		user: &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(resolver)(func(c echo.Context) error {
		called = true
		user, ok := c.Get("user").(*domain.User)
		if !ok || user == nil {
			t.Fatalf("user not set in context")
		}
		if user.ID != "u1" {
			t.Fatalf("expected user u1, got %q", user.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if resolver.gotAuthorization != "Bearer sometoken" {
		t.Fatalf("resolver saw %q", resolver.gotAuthorization)
	}
}

func TestAuthMiddleware_Unauthenticated(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{err: domain.ErrUnauthenticated}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuthMiddleware_ResolverFailure(t *testing.T) {
	e := echo.New()
	dbErr := errors.New("connection reset")
	resolver := &stubResolver{err: dbErr}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// Infrastructure failures are not identity failures; the raw error goes
	// to the central error handler, not a 401.
	err := handler(c)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected raw error, got %v", err)
	}
}
