package domain_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTenant(t *testing.T) *domain.Tenant {
	t.Helper()

	tenantID, err := domain.ParseTenantID("acme")
	require.NoError(t, err)

	tenant, err := domain.NewTenant(tenantID, "Acme Corp", "test tenant", "test")
	require.NoError(t, err)

	return tenant
}

func TestNewTenant_Defaults(t *testing.T) {
	tenant := newTestTenant(t)

	assert.True(t, tenant.IsActive)
	assert.Equal(t, int64(10_000_000_000), tenant.MaxLogSizeBytes)
	assert.Equal(t, 90, tenant.MaxRetentionDays)
	assert.Equal(t, 10, tenant.MaxUsersCount)
	assert.Equal(t, 1000, tenant.DailyLogIngestLimitMB)
	assert.NotNil(t, tenant.SubscriptionStart)
}

func TestNewTenant_EmptyName(t *testing.T) {
	tenantID, _ := domain.ParseTenantID("acme")

	_, err := domain.NewTenant(tenantID, "  ", "", "test")
	assert.ErrorIs(t, err, domain.ErrEmptyTenantName)
}

func TestTenant_CanIngestLogs(t *testing.T) {
	now := time.Now().UTC()

	testCases := []struct {
		name       string
		active     bool
		start, end time.Time
		want       bool
	}{
		{name: "active within window", active: true, start: now.Add(-time.Hour), end: now.Add(time.Hour), want: true},
		{name: "inactive within window", active: false, start: now.Add(-time.Hour), end: now.Add(time.Hour), want: false},
		{name: "expired subscription", active: true, start: now.Add(-2 * time.Hour), end: now.Add(-time.Hour), want: false},
		{name: "subscription not started", active: true, start: now.Add(time.Hour), end: now.Add(2 * time.Hour), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tenant := newTestTenant(t)
			require.NoError(t, tenant.UpdateSubscription(tc.start, tc.end, "test"))

			if !tc.active {
				tenant.Deactivate("test")
			}

			assert.Equal(t, tc.want, tenant.CanIngestLogs())
		})
	}
}

func TestTenant_CanIngestLogs_NoSubscriptionEnd(t *testing.T) {
	tenant := newTestTenant(t)

	// The default tenant has a start date but no end date yet.
	assert.False(t, tenant.CanIngestLogs())
}

func TestTenant_UpdateLimits(t *testing.T) {
	testCases := []struct {
		name            string
		maxLogSizeBytes int64
		retentionDays   int
		usersCount      int
		dailyLimitMB    int
		wantErr         bool
	}{
		{name: "all positive", maxLogSizeBytes: 1, retentionDays: 1, usersCount: 1, dailyLimitMB: 1},
		{name: "zero size", maxLogSizeBytes: 0, retentionDays: 1, usersCount: 1, dailyLimitMB: 1, wantErr: true},
		{name: "negative retention", maxLogSizeBytes: 1, retentionDays: -1, usersCount: 1, dailyLimitMB: 1, wantErr: true},
		{name: "zero users", maxLogSizeBytes: 1, retentionDays: 1, usersCount: 0, dailyLimitMB: 1, wantErr: true},
		{name: "zero daily limit", maxLogSizeBytes: 1, retentionDays: 1, usersCount: 1, dailyLimitMB: 0, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tenant := newTestTenant(t)

			err := tenant.UpdateLimits(tc.maxLogSizeBytes, tc.retentionDays, tc.usersCount, tc.dailyLimitMB, "test")

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidLimits)
				// A rejected update must not partially apply.
				assert.Equal(t, 90, tenant.MaxRetentionDays)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.retentionDays, tenant.MaxRetentionDays)
		})
	}
}

func TestTenant_ActivateDeactivateIdempotent(t *testing.T) {
	tenant := newTestTenant(t)
	created := len(tenant.Events())

	tenant.Activate("test") // already active, no-op
	assert.Len(t, tenant.Events(), created)

	tenant.Deactivate("test")
	assert.False(t, tenant.IsActive)
	assert.Len(t, tenant.Events(), created+1)

	tenant.Deactivate("test")
	assert.Len(t, tenant.Events(), created+1)
}

func TestTenant_APIKeys(t *testing.T) {
	tenant := newTestTenant(t)

	require.NoError(t, tenant.AddAPIKey("key-1", "test"))
	require.NoError(t, tenant.AddAPIKey("key-1", "test")) // duplicate ignored
	require.NoError(t, tenant.AddAPIKey("key-2", "test"))

	assert.Len(t, tenant.APIKeys, 2)
	assert.True(t, tenant.IsValidAPIKey("key-1"))
	assert.False(t, tenant.IsValidAPIKey("key-3"))

	tenant.RemoveAPIKey("key-1", "test")
	assert.False(t, tenant.IsValidAPIKey("key-1"))

	assert.ErrorIs(t, tenant.AddAPIKey("  ", "test"), domain.ErrEmptyAPIKey)
}

func TestTenant_UpdateSubscription_Invalid(t *testing.T) {
	tenant := newTestTenant(t)
	now := time.Now().UTC()

	err := tenant.UpdateSubscription(now, now, "test")
	assert.ErrorIs(t, err, domain.ErrInvalidSubsWindow)
}
