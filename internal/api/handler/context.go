package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. A
// missing value means the route was wired without the middleware; reject
// rather than proceed anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
