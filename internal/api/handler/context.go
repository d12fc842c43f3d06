package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GafnerMendes/contracts-api/internal/api/middleware"
	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Its presence proves the middleware ran; a protected handler reached
// without one is a wiring bug surfaced as 401 rather than a panic.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
