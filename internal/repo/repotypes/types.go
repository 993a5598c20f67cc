package repotypes

import (
	"time"

	"github.com/Egor213/LogStream/internal/domain"
)

// ArchivalFilter selects non-archived logs created before the cutoff,
// oldest first, for one tenant.
type ArchivalFilter struct {
	TenantID  domain.TenantID
	Cutoff    time.Time
	BatchSize int
}

// ArchivedFilter selects archived logs whose archived_at is before OlderThan.
type ArchivedFilter struct {
	TenantID  domain.TenantID
	OlderThan time.Time
	BatchSize int
}

// WindowFilter bounds count queries to a tenant and a time window.
type WindowFilter struct {
	TenantID domain.TenantID
	From     time.Time
	To       time.Time
	Levels   []domain.Level
}
