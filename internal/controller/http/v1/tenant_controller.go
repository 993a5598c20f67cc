package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/service"
)

type tenantController struct {
	tenants  service.TenantAdmin
	counters *metrics.Counters
}

func newTenantController(g *echo.Group, tenants service.TenantAdmin, counters *metrics.Counters) {
	c := &tenantController{
		tenants:  tenants,
		counters: counters,
	}

	g.POST("", c.createTenant)
	g.GET("/:tenant_id", c.getTenant)
	g.POST("/:tenant_id/activate", c.activateTenant)
	g.POST("/:tenant_id/deactivate", c.deactivateTenant)
	g.PUT("/:tenant_id/limits", c.updateLimits)
	g.PUT("/:tenant_id/subscription", c.updateSubscription)
	g.POST("/:tenant_id/api-keys", c.addAPIKey)
	g.DELETE("/:tenant_id/api-keys", c.removeAPIKey)
}

type createTenantRequest struct {
	TenantID    string `json:"tenant_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by" validate:"required"`
}

type tenantResponse struct {
	TenantID              string     `json:"tenant_id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description,omitempty"`
	IsActive              bool       `json:"is_active"`
	MaxLogSizeBytes       int64      `json:"max_log_size_bytes"`
	MaxRetentionDays      int        `json:"max_retention_days"`
	MaxUsersCount         int        `json:"max_users_count"`
	DailyLogIngestLimitMB int        `json:"daily_log_ingest_limit_mb"`
	SubscriptionStart     *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd       *time.Time `json:"subscription_end,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func toTenantResponse(tenant *domain.Tenant) tenantResponse {
	return tenantResponse{
		TenantID:              tenant.TenantID.String(),
		Name:                  tenant.Name,
		Description:           tenant.Description,
		IsActive:              tenant.IsActive,
		MaxLogSizeBytes:       tenant.MaxLogSizeBytes,
		MaxRetentionDays:      tenant.MaxRetentionDays,
		MaxUsersCount:         tenant.MaxUsersCount,
		DailyLogIngestLimitMB: tenant.DailyLogIngestLimitMB,
		SubscriptionStart:     tenant.SubscriptionStart,
		SubscriptionEnd:       tenant.SubscriptionEnd,
		CreatedAt:             tenant.CreatedAt,
	}
}

func (ctl *tenantController) createTenant(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "create_tenant")

	var req createTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tenant, err := ctl.tenants.CreateTenant(c.Request().Context(), service.CreateTenantParams{
		TenantID:    req.TenantID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, toTenantResponse(tenant))
}

func (ctl *tenantController) getTenant(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("GET", "get_tenant")

	tenant, err := ctl.tenants.GetTenant(c.Request().Context(), c.Param("tenant_id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, toTenantResponse(tenant))
}

type actorRequest struct {
	By string `json:"by" validate:"required"`
}

func (ctl *tenantController) activateTenant(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "activate_tenant")

	var req actorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := ctl.tenants.ActivateTenant(c.Request().Context(), c.Param("tenant_id"), req.By); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (ctl *tenantController) deactivateTenant(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "deactivate_tenant")

	var req actorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := ctl.tenants.DeactivateTenant(c.Request().Context(), c.Param("tenant_id"), req.By); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

type updateLimitsRequest struct {
	MaxLogSizeBytes       int64  `json:"max_log_size_bytes" validate:"required,gt=0"`
	MaxRetentionDays      int    `json:"max_retention_days" validate:"required,gt=0"`
	MaxUsersCount         int    `json:"max_users_count" validate:"required,gt=0"`
	DailyLogIngestLimitMB int    `json:"daily_log_ingest_limit_mb" validate:"required,gt=0"`
	UpdatedBy             string `json:"updated_by" validate:"required"`
}

func (ctl *tenantController) updateLimits(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("PUT", "update_limits")

	var req updateLimitsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := ctl.tenants.UpdateTenantLimits(c.Request().Context(), service.UpdateLimitsParams{
		TenantID:              c.Param("tenant_id"),
		MaxLogSizeBytes:       req.MaxLogSizeBytes,
		MaxRetentionDays:      req.MaxRetentionDays,
		MaxUsersCount:         req.MaxUsersCount,
		DailyLogIngestLimitMB: req.DailyLogIngestLimitMB,
		UpdatedBy:             req.UpdatedBy,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

type updateSubscriptionRequest struct {
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required"`
	UpdatedBy string    `json:"updated_by" validate:"required"`
}

func (ctl *tenantController) updateSubscription(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("PUT", "update_subscription")

	var req updateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := ctl.tenants.UpdateTenantSubscription(c.Request().Context(), c.Param("tenant_id"), req.Start, req.End, req.UpdatedBy)
	if err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

type apiKeyRequest struct {
	APIKey    string `json:"api_key" validate:"required"`
	UpdatedBy string `json:"updated_by" validate:"required"`
}

func (ctl *tenantController) addAPIKey(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "add_api_key")

	var req apiKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := ctl.tenants.AddTenantAPIKey(c.Request().Context(), c.Param("tenant_id"), req.APIKey, req.UpdatedBy); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (ctl *tenantController) removeAPIKey(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("DELETE", "remove_api_key")

	var req apiKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := ctl.tenants.RemoveTenantAPIKey(c.Request().Context(), c.Param("tenant_id"), req.APIKey, req.UpdatedBy); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
