package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesagem/internal/auth"
	apperrors "pesagem/internal/errors"
)

// Context keys set by the router's identity middleware.
const (
	IdentityKey = "identity"
	ClaimsKey   = "claims"
)

func currentIdentity(c echo.Context) (auth.Identity, error) {
	ident, ok := c.Get(IdentityKey).(auth.Identity)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}
	return ident, nil
}

func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsKey).(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}
	return claims, nil
}

// toHTTPError maps a service error onto the wire taxonomy.
func toHTTPError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
