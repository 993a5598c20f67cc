package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/notifier"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/repo/repotypes"
)

const (
	thresholdWindow  = 5 * time.Minute
	escalationWindow = 15 * time.Minute

	errorRateThreshold = 0.1
	volumeThreshold    = 10000
)

// criticalPatterns are matched case-insensitively against message and
// exception text.
var criticalPatterns = []string{
	"database connection failed",
	"out of memory",
	"service unavailable",
	"authentication failed",
	"security breach",
}

type AlertingService struct {
	logRepo    repo.LogEntry
	tenantRepo repo.Tenant
	notifier   notifier.Notifier
	counters   *metrics.Counters
}

func NewAlertingService(lr repo.LogEntry, tr repo.Tenant, nf notifier.Notifier, cnt *metrics.Counters) *AlertingService {
	return &AlertingService{
		logRepo:    lr,
		tenantRepo: tr,
		notifier:   nf,
		counters:   cnt,
	}
}

// ProcessEntryAlerts runs the immediate per-entry checks. Delivery failures
// are logged, never propagated: alerting must not block the pipeline.
func (s *AlertingService) ProcessEntryAlerts(ctx context.Context, entry *domain.LogEntry) {
	if entry.Level == domain.LevelError || entry.Level == domain.LevelFatal {
		s.send(ctx, notifier.AlertNotification{
			TenantID:  entry.TenantID,
			Title:     fmt.Sprintf("Critical Error Detected in %s", entry.Source.Application),
			Message:   fmt.Sprintf("Critical error occurred: %s", entry.Message.Content),
			Severity:  entry.Level.String(),
			Timestamp: time.Now().UTC(),
			Metadata: map[string]any{
				"logEntryId":  entry.ID,
				"application": entry.Source.Application,
				"environment": entry.Source.Environment,
				"timestamp":   entry.Timestamp,
			},
		})
	}

	if pattern, ok := s.matchCriticalPattern(entry); ok {
		s.send(ctx, notifier.AlertNotification{
			TenantID:  entry.TenantID,
			Title:     "Critical System Issue Detected",
			Message:   fmt.Sprintf("Critical pattern detected in logs: %s", entry.Message.Content),
			Severity:  "CRITICAL",
			Timestamp: time.Now().UTC(),
			Metadata: map[string]any{
				"logEntryId":  entry.ID,
				"application": entry.Source.Application,
				"pattern":     pattern,
			},
		})
	}
}

func (s *AlertingService) matchCriticalPattern(entry *domain.LogEntry) (string, bool) {
	haystacks := []string{
		strings.ToLower(entry.Message.Content),
		strings.ToLower(entry.Exception),
	}

	for _, pattern := range criticalPatterns {
		for _, haystack := range haystacks {
			if strings.Contains(haystack, pattern) {
				return pattern, true
			}
		}
	}

	return "", false
}

// CheckThresholdAlerts evaluates the 5-minute window: error rate above 10%
// emits a WARNING, volume above 10000 emits an INFO.
func (s *AlertingService) CheckThresholdAlerts(ctx context.Context, tenantID domain.TenantID) error {
	now := time.Now().UTC()
	windowStart := now.Add(-thresholdWindow)

	total, err := s.logRepo.CountInWindow(ctx, repotypes.WindowFilter{
		TenantID: tenantID,
		From:     windowStart,
		To:       now,
	})
	if err != nil {
		return err
	}

	errorCount, err := s.logRepo.CountInWindow(ctx, repotypes.WindowFilter{
		TenantID: tenantID,
		From:     windowStart,
		To:       now,
		Levels:   []domain.Level{domain.LevelError, domain.LevelFatal},
	})
	if err != nil {
		return err
	}

	if total > 0 {
		errorRate := float64(errorCount) / float64(total)
		if errorRate > errorRateThreshold {
			s.send(ctx, notifier.AlertNotification{
				TenantID:  tenantID,
				Title:     "High Error Rate Alert",
				Message:   fmt.Sprintf("Error rate of %.1f%% detected in the last 5 minutes (%d/%d)", errorRate*100, errorCount, total),
				Severity:  "WARNING",
				Timestamp: now,
				Metadata: map[string]any{
					"errorRate":  errorRate,
					"errorCount": errorCount,
					"totalCount": total,
					"timeWindow": "5_minutes",
				},
			})
		}
	}

	if total > volumeThreshold {
		s.send(ctx, notifier.AlertNotification{
			TenantID:  tenantID,
			Title:     "High Log Volume Alert",
			Message:   fmt.Sprintf("High log volume detected: %d logs in the last 5 minutes", total),
			Severity:  "INFO",
			Timestamp: now,
			Metadata: map[string]any{
				"logCount":   total,
				"timeWindow": "5_minutes",
			},
		})
	}

	return nil
}

// CheckEscalations counts FATAL logs over the 15-minute window and emits a
// CRITICAL escalation when any exist.
func (s *AlertingService) CheckEscalations(ctx context.Context, tenantID domain.TenantID) error {
	now := time.Now().UTC()

	fatalCount, err := s.logRepo.CountInWindow(ctx, repotypes.WindowFilter{
		TenantID: tenantID,
		From:     now.Add(-escalationWindow),
		To:       now,
		Levels:   []domain.Level{domain.LevelFatal},
	})
	if err != nil {
		return err
	}

	if fatalCount == 0 {
		return nil
	}

	s.send(ctx, notifier.AlertNotification{
		TenantID:  tenantID,
		Title:     fmt.Sprintf("ESCALATION: %d Unresolved Critical Issues", fatalCount),
		Message:   fmt.Sprintf("There are %d unresolved critical issues that require immediate attention.", fatalCount),
		Severity:  "CRITICAL",
		Timestamp: now,
		Metadata: map[string]any{
			"criticalCount": fatalCount,
			"escalated":     true,
			"timeWindow":    "15_minutes",
		},
	})

	return nil
}

// CheckAllThresholds fans out over active tenants in parallel; tenant scans
// are independent.
func (s *AlertingService) CheckAllThresholds(ctx context.Context) error {
	tenants, err := s.tenantRepo.GetActiveTenants(ctx)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, tenant := range tenants {
		wg.Add(1)
		go func(tenant *domain.Tenant) {
			defer wg.Done()
			if err := s.CheckThresholdAlerts(ctx, tenant.TenantID); err != nil {
				log.WithField("tenant", tenant.TenantID).Errorf("Threshold check failed: %v", err)
			}
		}(tenant)
	}
	wg.Wait()

	return nil
}

func (s *AlertingService) CheckAllEscalations(ctx context.Context) error {
	tenants, err := s.tenantRepo.GetActiveTenants(ctx)
	if err != nil {
		return err
	}

	for _, tenant := range tenants {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.CheckEscalations(ctx, tenant.TenantID); err != nil {
			log.WithField("tenant", tenant.TenantID).Errorf("Escalation check failed: %v", err)
		}
	}

	return nil
}

func (s *AlertingService) send(ctx context.Context, notification notifier.AlertNotification) {
	if err := s.notifier.Send(ctx, notification); err != nil {
		log.WithFields(log.Fields{
			"tenant": notification.TenantID,
			"title":  notification.Title,
		}).Errorf("Failed to send alert notification: %v", err)
		return
	}

	s.counters.AlertsEmitted.Inc(notification.TenantID.String(), notification.Severity)

	log.WithFields(log.Fields{
		"tenant":   notification.TenantID,
		"title":    notification.Title,
		"severity": notification.Severity,
	}).Warn("Alert notification sent")
}
