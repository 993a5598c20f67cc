package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/repo"
)

const processingBatchSize = 1000

type ProcessingService struct {
	logRepo  repo.LogEntry
	index    index.Index
	alerting Alerting
	tx       TxManager
	events   *Dispatcher
}

func NewProcessingService(lr repo.LogEntry, idx index.Index, alerting Alerting, tx TxManager, events *Dispatcher) *ProcessingService {
	return &ProcessingService{
		logRepo:  lr,
		index:    idx,
		alerting: alerting,
		tx:       tx,
		events:   events,
	}
}

// ProcessUnprocessed drains the backlog of unprocessed entries in batches
// until the repository returns an empty page. Each batch is enriched,
// scanned for alert conditions, re-indexed and flagged processed in one
// transaction. Returns the number of entries processed.
func (s *ProcessingService) ProcessUnprocessed(ctx context.Context) (int, error) {
	processed := 0

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		entries, err := s.logRepo.GetUnprocessed(ctx, processingBatchSize)
		if err != nil {
			return processed, err
		}
		if len(entries) == 0 {
			return processed, nil
		}

		for _, entry := range entries {
			s.enrich(entry)
			s.alerting.ProcessEntryAlerts(ctx, entry)
			entry.MarkAsProcessed("processing")
		}

		err = s.tx.Do(ctx, func(ctx context.Context) error {
			for _, entry := range entries {
				if err := s.logRepo.Update(ctx, entry); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return processed, err
		}

		if err := s.index.IndexMany(ctx, entries); err != nil {
			log.Errorf("Failed to re-index processed batch: %v", err)
		}

		for _, entry := range entries {
			s.events.Enqueue(entry.Events()...)
			entry.ClearEvents()
		}

		processed += len(entries)
	}
}

// enrich attaches pipeline metadata before the entry is flagged processed.
func (s *ProcessingService) enrich(entry *domain.LogEntry) {
	entry.SetMetadata("processedAt", time.Now().UTC())
	entry.SetMetadata("severity", entry.Level.Severity())

	if entry.Exception != "" {
		entry.SetMetadata("hasException", true)
	}
}
