package httpv1

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/service"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	handler.Use(middleware.Recover())
	handler.Validator = &requestValidator{validate: validator.New()}

	handler.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	v1 := handler.Group("/v1")

	logs := v1.Group("/tenants/:tenant_id/logs")
	logs.Use(apiKeyAuth(services.TenantAdmin))
	newLogController(logs, services, counters)

	tenants := v1.Group("/tenants")
	newTenantController(tenants, services.TenantAdmin, counters)
}
