package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one ingested log record. Core fields are immutable after
// construction; only the lifecycle flags and enrichment fields change.
// Repositories rehydrate the struct directly, new entries go through
// NewLogEntry so the invariants hold.
type LogEntry struct {
	ID             uuid.UUID
	TenantID       TenantID
	Timestamp      time.Time
	Level          Level
	Message        Message
	Source         Source
	TraceID        string
	SpanID         string
	UserID         string
	SessionID      string
	CorrelationID  string
	Exception      string
	Metadata       map[string]any
	Tags           string
	OriginalFormat string
	RawContent     string
	SizeBytes      int64
	IPAddress      string
	UserAgent      string
	IsProcessed    bool
	IsArchived     bool
	ArchivedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	CreatedBy      string
	UpdatedBy      string

	events []Event
}

type NewLogEntryParams struct {
	TenantID       TenantID
	Timestamp      time.Time
	Level          Level
	Message        Message
	Source         Source
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
	CreatedBy      string
}

func NewLogEntry(p NewLogEntryParams) (*LogEntry, error) {
	if p.OriginalFormat == "" {
		return nil, ErrEmptyFormat
	}

	if p.RawContent == "" {
		return nil, ErrEmptyRawContent
	}

	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}

	entry := &LogEntry{
		ID:             uuid.New(),
		TenantID:       p.TenantID,
		Timestamp:      p.Timestamp,
		Level:          p.Level,
		Message:        p.Message,
		Source:         p.Source,
		TraceID:        p.TraceID,
		SpanID:         p.SpanID,
		UserID:         p.UserID,
		SessionID:      p.SessionID,
		CorrelationID:  p.CorrelationID,
		Exception:      p.Exception,
		Metadata:       p.Metadata,
		Tags:           p.Tags,
		OriginalFormat: p.OriginalFormat,
		RawContent:     p.RawContent,
		SizeBytes:      int64(len(p.RawContent)),
		IPAddress:      p.IPAddress,
		UserAgent:      p.UserAgent,
		CreatedAt:      time.Now().UTC(),
		CreatedBy:      p.CreatedBy,
	}

	entry.record(LogEntryCreated{
		baseEvent:  newBaseEvent(),
		LogEntryID: entry.ID,
		TenantID:   entry.TenantID,
		Level:      entry.Level,
		Timestamp:  entry.Timestamp,
	})

	return entry, nil
}

// MarkAsProcessed flips the processed flag. Re-invoking is a no-op so
// at-least-once redelivery from the processing pipeline converges.
func (e *LogEntry) MarkAsProcessed(processedBy string) {
	if e.IsProcessed {
		return
	}

	e.IsProcessed = true
	e.markUpdated(processedBy)

	e.record(LogEntryProcessed{
		baseEvent:  newBaseEvent(),
		LogEntryID: e.ID,
		TenantID:   e.TenantID,
		Level:      e.Level,
	})
}

// Archive flips the archived flag and stamps archived_at. Idempotent: an
// already archived entry is never re-archived.
func (e *LogEntry) Archive(archivedBy string) {
	if e.IsArchived {
		return
	}

	now := time.Now().UTC()
	e.IsArchived = true
	e.ArchivedAt = &now
	e.markUpdated(archivedBy)

	e.record(LogEntryArchived{
		baseEvent:  newBaseEvent(),
		LogEntryID: e.ID,
		TenantID:   e.TenantID,
	})
}

func (e *LogEntry) UpdateTracing(traceID, spanID, correlationID, updatedBy string) {
	e.TraceID = traceID
	e.SpanID = spanID
	e.CorrelationID = correlationID
	e.markUpdated(updatedBy)
}

func (e *LogEntry) UpdateException(exception, updatedBy string) {
	e.Exception = exception
	e.markUpdated(updatedBy)
}

func (e *LogEntry) UpdateTags(tags, updatedBy string) {
	e.Tags = tags
	e.markUpdated(updatedBy)
}

func (e *LogEntry) SetMetadata(key string, value any) {
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}
	e.Metadata[key] = value
}

func (e *LogEntry) ContainsKeyword(keyword string) bool {
	if keyword == "" {
		return false
	}

	if e.Message.ContainsKeyword(keyword) {
		return true
	}

	if containsFold(e.Exception, keyword) || containsFold(e.Tags, keyword) || containsFold(e.RawContent, keyword) {
		return true
	}

	for _, value := range e.Metadata {
		if containsFold(propertyString(value), keyword) {
			return true
		}
	}

	return false
}

func (e *LogEntry) MatchesLevel(level Level) bool {
	return e.Level == level
}

func (e *LogEntry) MoreSevereThan(level Level) bool {
	return e.Level.MoreSevereThan(level)
}

func (e *LogEntry) InDateRange(start, end time.Time) bool {
	return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
}

func (e *LogEntry) Events() []Event {
	return e.events
}

func (e *LogEntry) ClearEvents() {
	e.events = nil
}

func (e *LogEntry) record(event Event) {
	e.events = append(e.events, event)
}

func (e *LogEntry) markUpdated(updatedBy string) {
	now := time.Now().UTC()
	e.UpdatedAt = &now
	e.UpdatedBy = updatedBy
}
