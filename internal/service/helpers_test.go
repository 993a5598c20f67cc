package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/service"
)

// txStub runs the callback without a real transaction.
type txStub struct{}

func (txStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// publisherStub swallows dispatched events.
type publisherStub struct{}

func (publisherStub) SendMessage(ctx context.Context, key, value []byte) error {
	return nil
}

func newTestDispatcher() *service.Dispatcher {
	return service.NewDispatcher(publisherStub{})
}

func newActiveTenant(t *testing.T, id string) *domain.Tenant {
	t.Helper()

	tenantID, err := domain.ParseTenantID(id)
	require.NoError(t, err)

	tenant, err := domain.NewTenant(tenantID, "Test Tenant", "", "test")
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, tenant.UpdateSubscription(now.Add(-time.Hour), now.Add(24*time.Hour), "test"))
	tenant.ClearEvents()

	return tenant
}

func newTestEntry(t *testing.T, tenantID domain.TenantID, level domain.Level, message string) *domain.LogEntry {
	t.Helper()

	msg, err := domain.NewMessage(message, "", nil)
	require.NoError(t, err)

	src, err := domain.NewSource("api", "production", "", "")
	require.NoError(t, err)

	entry, err := domain.NewLogEntry(domain.NewLogEntryParams{
		TenantID:       tenantID,
		Timestamp:      time.Now().UTC(),
		Level:          level,
		Message:        msg,
		Source:         src,
		OriginalFormat: domain.FormatJSON,
		RawContent:     message,
		CreatedBy:      "test",
	})
	require.NoError(t, err)
	entry.ClearEvents()

	return entry
}
