package service

import (
	"context"
	"time"

	"github.com/Egor213/LogStream/internal/coldstorage"
	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/notifier"
	"github.com/Egor213/LogStream/internal/repo"
)

// TxManager mirrors the transaction-manager Do contract so services stay
// testable without a live pool.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Ingest accepts log records for a tenant after the ingestion policy gate.
type Ingest interface {
	IngestLog(ctx context.Context, params IngestLogParams) (*domain.LogEntry, error)
	BulkIngest(ctx context.Context, tenantID string, items []IngestLogParams) (int, error)
}

// Search runs tenant-scoped queries against the search index.
type Search interface {
	SearchLogs(ctx context.Context, tenantID string, request index.SearchRequest) (*index.SearchResult, error)
}

// Retention ages logs out: archive past the retention window, hard-delete
// past the archive window, watch storage quotas.
type Retention interface {
	ArchiveOldLogs(ctx context.Context, tenantID domain.TenantID) (int, error)
	DeleteArchivedLogs(ctx context.Context, tenantID domain.TenantID, olderThan time.Time) (int, error)
	CheckStorageQuotas(ctx context.Context, tenantID domain.TenantID) (QuotaStatus, error)
	ArchiveAllTenants(ctx context.Context) error
	CleanupAllTenants(ctx context.Context) error
	CheckAllQuotas(ctx context.Context) error
	RetentionReport(ctx context.Context) error
}

// Alerting scans recent logs for anomalies and emits notifications.
type Alerting interface {
	ProcessEntryAlerts(ctx context.Context, entry *domain.LogEntry)
	CheckThresholdAlerts(ctx context.Context, tenantID domain.TenantID) error
	CheckEscalations(ctx context.Context, tenantID domain.TenantID) error
	CheckAllThresholds(ctx context.Context) error
	CheckAllEscalations(ctx context.Context) error
}

// Processing drives the unprocessed-log pipeline: enrich, alert, index,
// mark processed.
type Processing interface {
	ProcessUnprocessed(ctx context.Context) (int, error)
}

// TenantAdmin manages tenant lifecycle and quotas.
type TenantAdmin interface {
	CreateTenant(ctx context.Context, params CreateTenantParams) (*domain.Tenant, error)
	GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error)
	GetTenantByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error)
	ActivateTenant(ctx context.Context, tenantID string, by string) error
	DeactivateTenant(ctx context.Context, tenantID string, by string) error
	UpdateTenantLimits(ctx context.Context, params UpdateLimitsParams) error
	UpdateTenantSubscription(ctx context.Context, tenantID string, start, end time.Time, by string) error
	AddTenantAPIKey(ctx context.Context, tenantID, apiKey, by string) error
	RemoveTenantAPIKey(ctx context.Context, tenantID, apiKey, by string) error
}

type Services struct {
	Ingest      Ingest
	Search      Search
	Retention   Retention
	Alerting    Alerting
	Processing  Processing
	TenantAdmin TenantAdmin
	Events      *Dispatcher
}

type ServicesDependencies struct {
	Repos    *repo.Repositories
	Index    index.Index
	Archiver coldstorage.Archiver
	Notifier notifier.Notifier
	Tx       TxManager
	Events   *Dispatcher
	Counters *metrics.Counters

	ArchiveBatchSize       int
	ArchiveDeleteAfterDays int
}

func NewServices(deps ServicesDependencies) *Services {
	alerting := NewAlertingService(deps.Repos.LogEntry, deps.Repos.Tenant, deps.Notifier, deps.Counters)

	return &Services{
		Ingest:      NewIngestService(deps.Repos.LogEntry, deps.Repos.Tenant, deps.Index, deps.Tx, deps.Events, deps.Counters),
		Search:      NewSearchService(deps.Repos.Tenant, deps.Index, deps.Counters),
		Retention:   NewRetentionService(deps.Repos.LogEntry, deps.Repos.Tenant, deps.Index, deps.Archiver, deps.Notifier, deps.Tx, deps.Events, deps.Counters, deps.ArchiveBatchSize, deps.ArchiveDeleteAfterDays),
		Alerting:    alerting,
		Processing:  NewProcessingService(deps.Repos.LogEntry, deps.Index, alerting, deps.Tx, deps.Events),
		TenantAdmin: NewTenantService(deps.Repos.Tenant, deps.Index, deps.Events),
		Events:      deps.Events,
	}
}
