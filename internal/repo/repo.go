package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/repo/pgdb"
	"github.com/Egor213/LogStream/internal/repo/repotypes"
	"github.com/Egor213/LogStream/pkg/postgres"
)

// LogEntry is the persistence collaborator for log aggregates. Batched
// reads return oldest-first so interrupted jobs make monotonic progress.
type LogEntry interface {
	Create(ctx context.Context, entry *domain.LogEntry) error
	BulkInsert(ctx context.Context, entries []*domain.LogEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error)
	GetLogsForArchival(ctx context.Context, filter repotypes.ArchivalFilter) ([]*domain.LogEntry, error)
	GetArchivedBefore(ctx context.Context, filter repotypes.ArchivedFilter) ([]*domain.LogEntry, error)
	GetUnprocessed(ctx context.Context, batchSize int) ([]*domain.LogEntry, error)
	Update(ctx context.Context, entry *domain.LogEntry) error
	RemoveRange(ctx context.Context, ids []uuid.UUID) error
	GetTotalSizeBytes(ctx context.Context, tenantID domain.TenantID) (int64, error)
	CountInWindow(ctx context.Context, filter repotypes.WindowFilter) (int64, error)
	CountByTenant(ctx context.Context, tenantID domain.TenantID) (int64, error)
	CountArchivedByTenant(ctx context.Context, tenantID domain.TenantID) (int64, error)
	CountByTenantSince(ctx context.Context, tenantID domain.TenantID, since, until time.Time) (int64, error)
}

// Tenant is the tenant directory collaborator.
type Tenant interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByTenantID(ctx context.Context, tenantID domain.TenantID) (*domain.Tenant, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error)
	GetActiveTenants(ctx context.Context) ([]*domain.Tenant, error)
	Exists(ctx context.Context, tenantID domain.TenantID) (bool, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
}

type Repositories struct {
	LogEntry
	Tenant
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		LogEntry: pgdb.NewLogEntryRepo(pg),
		Tenant:   pgdb.NewTenantRepo(pg),
	}
}
