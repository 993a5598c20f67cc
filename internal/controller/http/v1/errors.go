package httpv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Egor213/LogStream/internal/service"
)

// toHTTPError maps service sentinels onto HTTP statuses; anything
// unrecognized stays a 500 without leaking internals.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrTenantNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "tenant not found")
	case errors.Is(err, service.ErrTenantAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "tenant already exists")
	case errors.Is(err, service.ErrTenantCannotIngest):
		return echo.NewHTTPError(http.StatusForbidden, "tenant cannot ingest logs")
	case errors.Is(err, service.ErrCannotCreateLog),
		errors.Is(err, service.ErrCannotSearch),
		errors.Is(err, service.ErrCannotUpdateTenant):
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
