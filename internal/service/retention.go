package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/coldstorage"
	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/notifier"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
	"github.com/Egor213/LogStream/internal/repo/repotypes"
)

const (
	defaultArchiveBatchSize       = 1000
	defaultArchiveDeleteAfterDays = 365

	quotaWarningPercent = 80.0
	quotaUrgentPercent  = 90.0
)

// QuotaLevel classifies storage quota usage.
type QuotaLevel string

const (
	QuotaOK      QuotaLevel = "OK"
	QuotaWarning QuotaLevel = "WARNING"
	QuotaUrgent  QuotaLevel = "URGENT"
)

type QuotaStatus struct {
	TenantID        domain.TenantID
	TotalSizeBytes  int64
	MaxLogSizeBytes int64
	UsagePercent    float64
	Level           QuotaLevel
}

type RetentionService struct {
	logRepo    repo.LogEntry
	tenantRepo repo.Tenant
	index      index.Index
	archiver   coldstorage.Archiver
	notifier   notifier.Notifier
	tx         TxManager
	events     *Dispatcher
	counters   *metrics.Counters

	batchSize       int
	deleteAfterDays int
}

func NewRetentionService(
	lr repo.LogEntry,
	tr repo.Tenant,
	idx index.Index,
	archiver coldstorage.Archiver,
	nf notifier.Notifier,
	tx TxManager,
	events *Dispatcher,
	cnt *metrics.Counters,
	batchSize int,
	deleteAfterDays int,
) *RetentionService {
	if batchSize <= 0 {
		batchSize = defaultArchiveBatchSize
	}
	if deleteAfterDays <= 0 {
		deleteAfterDays = defaultArchiveDeleteAfterDays
	}

	return &RetentionService{
		logRepo:         lr,
		tenantRepo:      tr,
		index:           idx,
		archiver:        archiver,
		notifier:        nf,
		tx:              tx,
		events:          events,
		counters:        cnt,
		batchSize:       batchSize,
		deleteAfterDays: deleteAfterDays,
	}
}

// ArchiveOldLogs batches non-archived logs older than the tenant's retention
// cutoff, oldest first, until a fetch comes back empty. The cold-storage
// write must succeed before any archive flag flips.
func (s *RetentionService) ArchiveOldLogs(ctx context.Context, tenantID domain.TenantID) (int, error) {
	tenant, err := s.tenantRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return 0, ErrTenantNotFound
		}
		return 0, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -tenant.MaxRetentionDays)
	archived := 0

	for {
		if err := ctx.Err(); err != nil {
			return archived, err
		}

		batch, err := s.logRepo.GetLogsForArchival(ctx, repotypes.ArchivalFilter{
			TenantID:  tenantID,
			Cutoff:    cutoff,
			BatchSize: s.batchSize,
		})
		if err != nil {
			return archived, err
		}

		if len(batch) == 0 {
			break
		}

		if err := s.archiveBatch(ctx, tenantID, batch); err != nil {
			return archived, err
		}

		archived += len(batch)

		log.WithFields(log.Fields{
			"tenant": tenantID,
			"count":  len(batch),
		}).Info("Archived log batch")
	}

	log.WithFields(log.Fields{
		"tenant":   tenantID,
		"archived": archived,
	}).Info("Completed archival run")

	return archived, nil
}

func (s *RetentionService) archiveBatch(ctx context.Context, tenantID domain.TenantID, batch []*domain.LogEntry) error {
	ref, err := s.archiver.CompressAndStore(ctx, batch)
	if err != nil {
		// No durable backup, no flag flips for this batch.
		return err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		for _, entry := range batch {
			entry.Archive("retention-job")
			if err := s.logRepo.Update(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, entry := range batch {
		s.counters.LogsArchived.Inc(tenantID.String())
		s.events.Enqueue(entry.Events()...)
		entry.ClearEvents()
	}

	// Keep the hot index consistent with the archived flags, best-effort.
	if err := s.index.IndexMany(ctx, batch); err != nil {
		log.WithField("tenant", tenantID).Errorf("Failed to update index after archival: %v", err)
	}

	log.WithFields(log.Fields{
		"tenant":  tenantID,
		"archive": ref,
		"count":   len(batch),
	}).Debug("Archive batch stored")

	return nil
}

// DeleteArchivedLogs hard-deletes archived logs whose archived_at is before
// olderThan, in batches until exhausted.
func (s *RetentionService) DeleteArchivedLogs(ctx context.Context, tenantID domain.TenantID, olderThan time.Time) (int, error) {
	deleted := 0

	for {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}

		batch, err := s.logRepo.GetArchivedBefore(ctx, repotypes.ArchivedFilter{
			TenantID:  tenantID,
			OlderThan: olderThan,
			BatchSize: s.batchSize,
		})
		if err != nil {
			return deleted, err
		}

		if len(batch) == 0 {
			break
		}

		ids := make([]uuid.UUID, 0, len(batch))
		for _, entry := range batch {
			ids = append(ids, entry.ID)
		}

		err = s.tx.Do(ctx, func(ctx context.Context) error {
			return s.logRepo.RemoveRange(ctx, ids)
		})
		if err != nil {
			return deleted, err
		}

		for _, id := range ids {
			s.counters.LogsDeleted.Inc(tenantID.String())
			if err := s.index.Delete(ctx, id, tenantID); err != nil {
				log.WithField("tenant", tenantID).Debugf("Failed to delete %s from index: %v", id, err)
			}
		}

		deleted += len(batch)

		log.WithFields(log.Fields{
			"tenant": tenantID,
			"count":  len(batch),
		}).Info("Deleted archived log batch")
	}

	return deleted, nil
}

// CheckStorageQuotas is read-only: it reports usage and emits warning or
// urgent signals, it never throttles ingestion itself.
func (s *RetentionService) CheckStorageQuotas(ctx context.Context, tenantID domain.TenantID) (QuotaStatus, error) {
	tenant, err := s.tenantRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return QuotaStatus{}, ErrTenantNotFound
		}
		return QuotaStatus{}, err
	}

	totalSize, err := s.logRepo.GetTotalSizeBytes(ctx, tenantID)
	if err != nil {
		return QuotaStatus{}, err
	}

	status := QuotaStatus{
		TenantID:        tenantID,
		TotalSizeBytes:  totalSize,
		MaxLogSizeBytes: tenant.MaxLogSizeBytes,
		UsagePercent:    float64(totalSize) / float64(tenant.MaxLogSizeBytes) * 100,
		Level:           QuotaOK,
	}

	switch {
	case status.UsagePercent > quotaUrgentPercent:
		status.Level = QuotaUrgent
	case status.UsagePercent > quotaWarningPercent:
		status.Level = QuotaWarning
	}

	if status.Level != QuotaOK {
		s.sendQuotaNotification(ctx, status)
	}

	return status, nil
}

func (s *RetentionService) sendQuotaNotification(ctx context.Context, status QuotaStatus) {
	severity := "WARNING"
	title := "Storage Quota Warning"
	if status.Level == QuotaUrgent {
		severity = "URGENT"
		title = "Storage Quota Almost Exhausted"
	}

	notification := notifier.AlertNotification{
		TenantID:  status.TenantID,
		Title:     title,
		Message:   "Tenant storage usage exceeds threshold",
		Severity:  severity,
		Timestamp: time.Now().UTC(),
		Metadata: map[string]any{
			"usagePercent":    status.UsagePercent,
			"totalSizeBytes":  status.TotalSizeBytes,
			"maxLogSizeBytes": status.MaxLogSizeBytes,
		},
	}

	if err := s.notifier.Send(ctx, notification); err != nil {
		log.WithField("tenant", status.TenantID).Errorf("Failed to send quota notification: %v", err)
	}
}

// ArchiveAllTenants fans archival out over active tenants; one tenant's
// failure never aborts the siblings.
func (s *RetentionService) ArchiveAllTenants(ctx context.Context) error {
	return s.forEachActiveTenant(ctx, "archival", func(ctx context.Context, tenant *domain.Tenant) error {
		_, err := s.ArchiveOldLogs(ctx, tenant.TenantID)
		return err
	})
}

func (s *RetentionService) CleanupAllTenants(ctx context.Context) error {
	olderThan := time.Now().UTC().AddDate(0, 0, -s.deleteAfterDays)

	return s.forEachActiveTenant(ctx, "cleanup", func(ctx context.Context, tenant *domain.Tenant) error {
		_, err := s.DeleteArchivedLogs(ctx, tenant.TenantID, olderThan)
		return err
	})
}

func (s *RetentionService) CheckAllQuotas(ctx context.Context) error {
	return s.forEachActiveTenant(ctx, "quota-check", func(ctx context.Context, tenant *domain.Tenant) error {
		status, err := s.CheckStorageQuotas(ctx, tenant.TenantID)
		if err != nil {
			return err
		}

		if status.Level != QuotaOK {
			log.WithFields(log.Fields{
				"tenant": tenant.TenantID,
				"usage":  status.UsagePercent,
				"level":  status.Level,
			}).Warn("Tenant storage quota threshold exceeded")
		}

		return nil
	})
}

// RetentionReport logs a monthly per-tenant summary.
func (s *RetentionService) RetentionReport(ctx context.Context) error {
	now := time.Now().UTC()
	monthAgo := now.AddDate(0, -1, 0)

	return s.forEachActiveTenant(ctx, "retention-report", func(ctx context.Context, tenant *domain.Tenant) error {
		total, err := s.logRepo.CountByTenant(ctx, tenant.TenantID)
		if err != nil {
			return err
		}

		archived, err := s.logRepo.CountArchivedByTenant(ctx, tenant.TenantID)
		if err != nil {
			return err
		}

		monthly, err := s.logRepo.CountByTenantSince(ctx, tenant.TenantID, monthAgo, now)
		if err != nil {
			return err
		}

		totalSize, err := s.logRepo.GetTotalSizeBytes(ctx, tenant.TenantID)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"tenant":        tenant.TenantID,
			"total":         total,
			"archived":      archived,
			"lastMonth":     monthly,
			"sizeMB":        totalSize / 1024 / 1024,
			"retentionDays": tenant.MaxRetentionDays,
		}).Info("Retention report")

		return nil
	})
}

func (s *RetentionService) forEachActiveTenant(ctx context.Context, job string, fn func(ctx context.Context, tenant *domain.Tenant) error) error {
	tenants, err := s.tenantRepo.GetActiveTenants(ctx)
	if err != nil {
		return err
	}

	for _, tenant := range tenants {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(ctx, tenant); err != nil {
			log.WithFields(log.Fields{
				"tenant": tenant.TenantID,
				"job":    job,
			}).Errorf("Tenant job failed: %v", err)
		}
	}

	return nil
}
