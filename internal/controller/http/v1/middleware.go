package httpv1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Egor213/LogStream/internal/service"
)

const apiKeyHeader = "X-API-Key"

// apiKeyAuth resolves the caller's tenant from the API key header and
// rejects requests whose key does not belong to the tenant in the path.
func apiKeyAuth(tenants service.TenantAdmin) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(apiKeyHeader)
			if apiKey == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing API key")
			}

			tenant, err := tenants.GetTenantByAPIKey(c.Request().Context(), apiKey)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid API key")
			}

			if tenant.TenantID.String() != c.Param("tenant_id") {
				return echo.NewHTTPError(http.StatusForbidden, "API key does not match tenant")
			}

			return next(c)
		}
	}
}
