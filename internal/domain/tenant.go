package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultMaxLogSizeBytes       = int64(10_000_000_000) // 10GB
	defaultMaxRetentionDays      = 90
	defaultMaxUsersCount         = 10
	defaultDailyLogIngestLimitMB = 1000
)

// Tenant is an isolated customer account with its own quotas, subscription
// window and log namespace. Tenants are never hard-deleted, only deactivated.
type Tenant struct {
	ID                    uuid.UUID
	TenantID              TenantID
	Name                  string
	Description           string
	IsActive              bool
	SubscriptionStart     *time.Time
	SubscriptionEnd       *time.Time
	MaxLogSizeBytes       int64
	MaxRetentionDays      int
	MaxUsersCount         int
	DailyLogIngestLimitMB int
	APIKeys               []string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	CreatedBy             string
	UpdatedBy             string

	events []Event
}

func NewTenant(tenantID TenantID, name, description, createdBy string) (*Tenant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTenantName
	}

	now := time.Now().UTC()
	tenant := &Tenant{
		ID:                    uuid.New(),
		TenantID:              tenantID,
		Name:                  strings.TrimSpace(name),
		Description:           strings.TrimSpace(description),
		IsActive:              true,
		SubscriptionStart:     &now,
		MaxLogSizeBytes:       defaultMaxLogSizeBytes,
		MaxRetentionDays:      defaultMaxRetentionDays,
		MaxUsersCount:         defaultMaxUsersCount,
		DailyLogIngestLimitMB: defaultDailyLogIngestLimitMB,
		CreatedAt:             now,
		CreatedBy:             createdBy,
	}

	tenant.record(TenantCreated{baseEvent: newBaseEvent(), TenantID: tenantID})

	return tenant, nil
}

func (t *Tenant) UpdateName(name, updatedBy string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTenantName
	}

	oldName := t.Name
	t.Name = strings.TrimSpace(name)
	t.markUpdated(updatedBy)

	t.record(TenantUpdated{
		baseEvent: newBaseEvent(),
		TenantID:  t.TenantID,
		OldName:   oldName,
		NewName:   t.Name,
	})

	return nil
}

func (t *Tenant) UpdateDescription(description, updatedBy string) {
	t.Description = strings.TrimSpace(description)
	t.markUpdated(updatedBy)
}

func (t *Tenant) Activate(updatedBy string) {
	if t.IsActive {
		return
	}

	t.IsActive = true
	t.markUpdated(updatedBy)

	t.record(TenantActivated{baseEvent: newBaseEvent(), TenantID: t.TenantID})
}

func (t *Tenant) Deactivate(updatedBy string) {
	if !t.IsActive {
		return
	}

	t.IsActive = false
	t.markUpdated(updatedBy)

	t.record(TenantDeactivated{baseEvent: newBaseEvent(), TenantID: t.TenantID})
}

func (t *Tenant) UpdateSubscription(start, end time.Time, updatedBy string) error {
	if !start.Before(end) {
		return ErrInvalidSubsWindow
	}

	t.SubscriptionStart = &start
	t.SubscriptionEnd = &end
	t.markUpdated(updatedBy)

	return nil
}

// UpdateLimits replaces all four quotas at once; every value must be positive.
func (t *Tenant) UpdateLimits(maxLogSizeBytes int64, maxRetentionDays, maxUsersCount, dailyLogIngestLimitMB int, updatedBy string) error {
	if maxLogSizeBytes <= 0 || maxRetentionDays <= 0 || maxUsersCount <= 0 || dailyLogIngestLimitMB <= 0 {
		return ErrInvalidLimits
	}

	t.MaxLogSizeBytes = maxLogSizeBytes
	t.MaxRetentionDays = maxRetentionDays
	t.MaxUsersCount = maxUsersCount
	t.DailyLogIngestLimitMB = dailyLogIngestLimitMB
	t.markUpdated(updatedBy)

	return nil
}

func (t *Tenant) AddAPIKey(apiKey, updatedBy string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrEmptyAPIKey
	}

	for _, key := range t.APIKeys {
		if key == apiKey {
			return nil
		}
	}

	t.APIKeys = append(t.APIKeys, apiKey)
	t.markUpdated(updatedBy)

	return nil
}

func (t *Tenant) RemoveAPIKey(apiKey, updatedBy string) {
	for i, key := range t.APIKeys {
		if key == apiKey {
			t.APIKeys = append(t.APIKeys[:i], t.APIKeys[i+1:]...)
			t.markUpdated(updatedBy)
			return
		}
	}
}

func (t *Tenant) IsValidAPIKey(apiKey string) bool {
	for _, key := range t.APIKeys {
		if key == apiKey {
			return true
		}
	}
	return false
}

func (t *Tenant) IsSubscriptionActive() bool {
	if t.SubscriptionStart == nil || t.SubscriptionEnd == nil {
		return false
	}

	now := time.Now().UTC()
	return !now.Before(*t.SubscriptionStart) && !now.After(*t.SubscriptionEnd)
}

// CanIngestLogs is the ingestion policy gate: the tenant must be active and
// inside its subscription window.
func (t *Tenant) CanIngestLogs() bool {
	return t.IsActive && t.IsSubscriptionActive()
}

func (t *Tenant) Events() []Event {
	return t.events
}

func (t *Tenant) ClearEvents() {
	t.events = nil
}

func (t *Tenant) record(event Event) {
	t.events = append(t.events, event)
}

func (t *Tenant) markUpdated(updatedBy string) {
	now := time.Now().UTC()
	t.UpdatedAt = &now
	t.UpdatedBy = updatedBy
}
