package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/service"
	"github.com/Egor213/LogStream/pkg/logger"
)

type logController struct {
	ingest   service.Ingest
	search   service.Search
	counters *metrics.Counters
}

func newLogController(g *echo.Group, services *service.Services, counters *metrics.Counters) {
	c := &logController{
		ingest:   services.Ingest,
		search:   services.Search,
		counters: counters,
	}

	g.POST("", c.ingestLog)
	g.POST("/bulk", c.bulkIngest)
	g.GET("/search", c.searchLogs)
}

type ingestLogRequest struct {
	Timestamp      time.Time      `json:"timestamp"`
	Level          string         `json:"level" validate:"required"`
	Message        string         `json:"message" validate:"required"`
	Template       string         `json:"template"`
	Properties     map[string]any `json:"properties"`
	Application    string         `json:"application" validate:"required"`
	Environment    string         `json:"environment" validate:"required"`
	Server         string         `json:"server"`
	Component      string         `json:"component"`
	OriginalFormat string         `json:"original_format" validate:"required"`
	RawContent     string         `json:"raw_content" validate:"required"`
	TraceID        string         `json:"trace_id"`
	SpanID         string         `json:"span_id"`
	UserID         string         `json:"user_id"`
	SessionID      string         `json:"session_id"`
	CorrelationID  string         `json:"correlation_id"`
	Exception      string         `json:"exception"`
	Metadata       map[string]any `json:"metadata"`
	Tags           string         `json:"tags"`
	IPAddress      string         `json:"ip_address"`
	UserAgent      string         `json:"user_agent"`
}

func (r ingestLogRequest) toParams(tenantID string) service.IngestLogParams {
	return service.IngestLogParams{
		TenantID:       tenantID,
		Timestamp:      r.Timestamp,
		Level:          r.Level,
		Message:        r.Message,
		Template:       r.Template,
		Properties:     r.Properties,
		Application:    r.Application,
		Environment:    r.Environment,
		Server:         r.Server,
		Component:      r.Component,
		OriginalFormat: r.OriginalFormat,
		RawContent:     r.RawContent,
		TraceID:        r.TraceID,
		SpanID:         r.SpanID,
		UserID:         r.UserID,
		SessionID:      r.SessionID,
		CorrelationID:  r.CorrelationID,
		Exception:      r.Exception,
		Metadata:       r.Metadata,
		Tags:           r.Tags,
		IPAddress:      r.IPAddress,
		UserAgent:      r.UserAgent,
	}
}

type ingestLogResponse struct {
	ID        string `json:"id"`
	SizeBytes int64  `json:"size_bytes"`
}

func (ctl *logController) ingestLog(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "ingest")

	var req ingestLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	logger.LogReceived(c.Param("tenant_id"), req.Level, req.Application)

	entry, err := ctl.ingest.IngestLog(c.Request().Context(), req.toParams(c.Param("tenant_id")))
	if err != nil {
		logger.LogIngestError(domain.TenantID(c.Param("tenant_id")), err)
		return toHTTPError(err)
	}

	logger.LogIngested(entry)

	return c.JSON(http.StatusCreated, ingestLogResponse{
		ID:        entry.ID.String(),
		SizeBytes: entry.SizeBytes,
	})
}

type bulkIngestRequest struct {
	Items []ingestLogRequest `json:"items" validate:"required,min=1,dive"`
}

type bulkIngestResponse struct {
	Accepted int `json:"accepted"`
}

func (ctl *logController) bulkIngest(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("POST", "bulk_ingest")

	var req bulkIngestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tenantID := c.Param("tenant_id")
	items := make([]service.IngestLogParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.toParams(tenantID))
	}

	accepted, err := ctl.ingest.BulkIngest(c.Request().Context(), tenantID, items)
	if err != nil {
		logger.LogIngestError(domain.TenantID(tenantID), err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, bulkIngestResponse{Accepted: accepted})
}

type searchLogsRequest struct {
	Query          string     `query:"q"`
	StartTime      *time.Time `query:"start_time"`
	EndTime        *time.Time `query:"end_time"`
	Level          string     `query:"level"`
	Application    string     `query:"application"`
	Environment    string     `query:"environment"`
	Server         string     `query:"server"`
	Component      string     `query:"component"`
	Tags           []string   `query:"tags"`
	Page           int        `query:"page"`
	Size           int        `query:"size"`
	SortBy         string     `query:"sort_by"`
	SortDescending bool       `query:"sort_desc"`
}

type searchLogsResponse struct {
	Items        []searchLogItem  `json:"items"`
	Total        int64            `json:"total"`
	Page         int              `json:"page"`
	Size         int              `json:"size"`
	ElapsedMs    int64            `json:"elapsed_ms"`
	Aggregations map[string]int64 `json:"aggregations"`
}

type searchLogItem struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Level       string    `json:"level"`
	Message     string    `json:"message"`
	Application string    `json:"application"`
	Environment string    `json:"environment"`
	Server      string    `json:"server"`
	Component   string    `json:"component"`
	TraceID     string    `json:"trace_id,omitempty"`
	Exception   string    `json:"exception,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	IsArchived  bool      `json:"is_archived"`
}

func (ctl *logController) searchLogs(c echo.Context) error {
	ctl.counters.HTTPRequests.Inc("GET", "search")

	var req searchLogsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	result, err := ctl.search.SearchLogs(c.Request().Context(), c.Param("tenant_id"), index.SearchRequest{
		Query:          req.Query,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Level:          req.Level,
		Application:    req.Application,
		Environment:    req.Environment,
		Server:         req.Server,
		Component:      req.Component,
		Tags:           req.Tags,
		Page:           req.Page,
		Size:           req.Size,
		SortBy:         req.SortBy,
		SortDescending: req.SortDescending,
	})
	if err != nil {
		return toHTTPError(err)
	}

	items := make([]searchLogItem, 0, len(result.Items))
	for _, entry := range result.Items {
		items = append(items, toSearchLogItem(entry))
	}

	return c.JSON(http.StatusOK, searchLogsResponse{
		Items:        items,
		Total:        result.Total,
		Page:         result.Page,
		Size:         result.Size,
		ElapsedMs:    result.Elapsed.Milliseconds(),
		Aggregations: result.Aggregations,
	})
}

func toSearchLogItem(entry *domain.LogEntry) searchLogItem {
	return searchLogItem{
		ID:          entry.ID.String(),
		Timestamp:   entry.Timestamp,
		Level:       entry.Level.String(),
		Message:     entry.Message.Content,
		Application: entry.Source.Application,
		Environment: entry.Source.Environment,
		Server:      entry.Source.Server,
		Component:   entry.Source.Component,
		TraceID:     entry.TraceID,
		Exception:   entry.Exception,
		Tags:        entry.Tags,
		IsArchived:  entry.IsArchived,
	}
}
