package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a domain event recorded on an aggregate. Events are collected in
// memory and drained by the dispatcher only after the owning transaction
// commits.
type Event interface {
	Name() string
	OccurredAt() time.Time
	// Key is the partition key for delivery, the owning tenant id.
	Key() string
}

type baseEvent struct {
	occurredAt time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{occurredAt: time.Now().UTC()}
}

func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

type LogEntryCreated struct {
	baseEvent
	LogEntryID uuid.UUID
	TenantID   TenantID
	Level      Level
	Timestamp  time.Time
}

func (LogEntryCreated) Name() string { return "log_entry.created" }
func (e LogEntryCreated) Key() string { return string(e.TenantID) }

type LogEntryProcessed struct {
	baseEvent
	LogEntryID uuid.UUID
	TenantID   TenantID
	Level      Level
}

func (LogEntryProcessed) Name() string { return "log_entry.processed" }
func (e LogEntryProcessed) Key() string { return string(e.TenantID) }

type LogEntryArchived struct {
	baseEvent
	LogEntryID uuid.UUID
	TenantID   TenantID
}

func (LogEntryArchived) Name() string { return "log_entry.archived" }
func (e LogEntryArchived) Key() string { return string(e.TenantID) }

type TenantCreated struct {
	baseEvent
	TenantID TenantID
}

func (TenantCreated) Name() string { return "tenant.created" }
func (e TenantCreated) Key() string { return string(e.TenantID) }

type TenantUpdated struct {
	baseEvent
	TenantID TenantID
	OldName  string
	NewName  string
}

func (TenantUpdated) Name() string { return "tenant.updated" }
func (e TenantUpdated) Key() string { return string(e.TenantID) }

type TenantActivated struct {
	baseEvent
	TenantID TenantID
}

func (TenantActivated) Name() string { return "tenant.activated" }
func (e TenantActivated) Key() string { return string(e.TenantID) }

type TenantDeactivated struct {
	baseEvent
	TenantID TenantID
}

func (TenantDeactivated) Name() string { return "tenant.deactivated" }
func (e TenantDeactivated) Key() string { return string(e.TenantID) }

