// Package scheduler drives the recurring maintenance jobs: log processing,
// anomaly scans, quota checks, archival, cleanup and reporting. Each cadence
// runs on its own ticker goroutine; a slow run never delays a different job.
package scheduler

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/jobstatus"
	"github.com/Egor213/LogStream/internal/service"
)

const (
	processingInterval = time.Minute
	thresholdInterval  = 5 * time.Minute
	escalationInterval = 15 * time.Minute
	quotaInterval      = 6 * time.Hour
	archivalInterval   = 24 * time.Hour
	cleanupInterval    = 7 * 24 * time.Hour
	reportInterval     = 30 * 24 * time.Hour
)

type Scheduler struct {
	services *service.Services
	jobs     jobstatus.Store
}

func New(services *service.Services, jobs jobstatus.Store) *Scheduler {
	return &Scheduler{
		services: services,
		jobs:     jobs,
	}
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Run blocks until ctx is cancelled, then waits for in-flight job runs to
// return.
func (s *Scheduler) Run(ctx context.Context) {
	jobs := []job{
		{"process_unprocessed_logs", processingInterval, func(ctx context.Context) error {
			_, err := s.services.Processing.ProcessUnprocessed(ctx)
			return err
		}},
		{"check_threshold_alerts", thresholdInterval, s.services.Alerting.CheckAllThresholds},
		{"check_escalations", escalationInterval, s.services.Alerting.CheckAllEscalations},
		{"check_storage_quotas", quotaInterval, s.services.Retention.CheckAllQuotas},
		{"archive_old_logs", archivalInterval, s.services.Retention.ArchiveAllTenants},
		{"cleanup_archived_logs", cleanupInterval, s.services.Retention.CleanupAllTenants},
		{"retention_report", reportInterval, s.services.Retention.RetentionReport},
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			s.runLoop(ctx, j)
		}(j)
	}

	log.Infof("Scheduler started with %d jobs", len(jobs))
	wg.Wait()
	log.Info("Scheduler stopped")
}

func (s *Scheduler) runLoop(ctx context.Context, j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, j)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, j job) {
	status := jobstatus.Begin(j.name)
	if err := s.jobs.Set(ctx, status); err != nil {
		log.WithField("job", j.name).Errorf("Failed to record job start: %v", err)
	}

	started := time.Now()
	err := j.run(ctx)

	status.Finish(err)
	if setErr := s.jobs.Set(ctx, status); setErr != nil {
		log.WithField("job", j.name).Errorf("Failed to record job finish: %v", setErr)
	}

	fields := log.Fields{
		"job":     j.name,
		"elapsed": time.Since(started),
	}

	if err != nil {
		log.WithFields(fields).Errorf("Job run failed: %v", err)
		return
	}

	log.WithFields(fields).Info("Job run completed")
}
