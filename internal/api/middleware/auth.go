package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// IdentityResolver turns a raw Authorization header into a stored user.
// Satisfied by the auth service.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, authorization string) (*domain.User, error)
}

// Auth resolves the bearer token to a full user record and injects it into
// the request context under "user". Tokens whose account no longer exists
// are rejected the same way as invalid ones.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get("Authorization")

			user, err := resolver.ResolveIdentity(c.Request().Context(), authorization)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
				}
				return err
			}

			c.Set("user", user)

			return next(c)
		}
	}
}
