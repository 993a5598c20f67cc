package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
)

// IngestLogParams is the raw ingestion contract; value objects are
// constructed (and validated) here, before any persistence attempt.
type IngestLogParams struct {
	TenantID       string
	Timestamp      time.Time
	Level          string
	Message        string
	Template       string
	Properties     map[string]any
	Application    string
	Environment    string
	Server         string
	Component      string
	OriginalFormat string
	RawContent     string
	TraceID        string
	SpanID         string
	UserID         string
	SessionID      string
	CorrelationID  string
	Exception      string
	Metadata       map[string]any
	Tags           string
	IPAddress      string
	UserAgent      string
}

type IngestService struct {
	logRepo    repo.LogEntry
	tenantRepo repo.Tenant
	index      index.Index
	tx         TxManager
	events     *Dispatcher
	counters   *metrics.Counters
}

func NewIngestService(lr repo.LogEntry, tr repo.Tenant, idx index.Index, tx TxManager, events *Dispatcher, cnt *metrics.Counters) *IngestService {
	return &IngestService{
		logRepo:    lr,
		tenantRepo: tr,
		index:      idx,
		tx:         tx,
		events:     events,
		counters:   cnt,
	}
}

func (s *IngestService) IngestLog(ctx context.Context, params IngestLogParams) (*domain.LogEntry, error) {
	tenant, err := s.ingestGate(ctx, params.TenantID)
	if err != nil {
		return nil, err
	}

	entry, err := buildLogEntry(tenant.TenantID, params)
	if err != nil {
		return nil, err
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, ErrCannotCreateLog
	}

	s.counters.LogsIngested.Inc(tenant.TenantID.String(), entry.Level.String())

	// Indexing is a secondary, eventually-consistent view: a failure here
	// never rolls back the primary write.
	if err := s.index.IndexOne(ctx, entry); err != nil {
		log.WithField("tenant", tenant.TenantID).Errorf("Failed to index log entry: %v", err)
	} else {
		s.counters.LogsIndexed.Inc(tenant.TenantID.String())
	}

	s.events.Enqueue(entry.Events()...)
	entry.ClearEvents()

	return entry, nil
}

func (s *IngestService) BulkIngest(ctx context.Context, tenantID string, items []IngestLogParams) (int, error) {
	tenant, err := s.ingestGate(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	entries := make([]*domain.LogEntry, 0, len(items))
	for _, item := range items {
		entry, err := buildLogEntry(tenant.TenantID, item)
		if err != nil {
			return 0, err
		}
		entries = append(entries, entry)
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		return s.logRepo.BulkInsert(ctx, entries)
	})
	if err != nil {
		return 0, ErrCannotCreateLog
	}

	for _, entry := range entries {
		s.counters.LogsIngested.Inc(tenant.TenantID.String(), entry.Level.String())
	}

	if err := s.index.IndexMany(ctx, entries); err != nil {
		log.WithField("tenant", tenant.TenantID).Errorf("Failed to bulk index log entries: %v", err)
	} else {
		for range entries {
			s.counters.LogsIndexed.Inc(tenant.TenantID.String())
		}
	}

	for _, entry := range entries {
		s.events.Enqueue(entry.Events()...)
		entry.ClearEvents()
	}

	return len(entries), nil
}

// ingestGate resolves the tenant and applies the ingestion policy: unknown
// tenants are a distinct condition from tenants that exist but may not
// ingest (inactive or expired subscription).
func (s *IngestService) ingestGate(ctx context.Context, rawTenantID string) (*domain.Tenant, error) {
	tenantID, err := domain.ParseTenantID(rawTenantID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if !tenant.CanIngestLogs() {
		return nil, ErrTenantCannotIngest
	}

	return tenant, nil
}

func buildLogEntry(tenantID domain.TenantID, params IngestLogParams) (*domain.LogEntry, error) {
	level, err := domain.ParseLevel(params.Level)
	if err != nil {
		return nil, err
	}

	message, err := domain.NewMessage(params.Message, params.Template, params.Properties)
	if err != nil {
		return nil, err
	}

	source, err := domain.NewSource(params.Application, params.Environment, params.Server, params.Component)
	if err != nil {
		return nil, err
	}

	timestamp := params.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return domain.NewLogEntry(domain.NewLogEntryParams{
		TenantID:       tenantID,
		Timestamp:      timestamp,
		Level:          level,
		Message:        message,
		Source:         source,
		OriginalFormat: params.OriginalFormat,
		RawContent:     params.RawContent,
		TraceID:        params.TraceID,
		SpanID:         params.SpanID,
		UserID:         params.UserID,
		SessionID:      params.SessionID,
		CorrelationID:  params.CorrelationID,
		Exception:      params.Exception,
		Metadata:       params.Metadata,
		Tags:           params.Tags,
		IPAddress:      params.IPAddress,
		UserAgent:      params.UserAgent,
		CreatedBy:      "ingestion",
	})
}
