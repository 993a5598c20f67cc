package domain_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, rawContent string) *domain.LogEntry {
	t.Helper()

	tenantID, err := domain.ParseTenantID("acme")
	require.NoError(t, err)

	message, err := domain.NewMessage("something happened", "", nil)
	require.NoError(t, err)

	source, err := domain.NewSource("auth", "prod", "", "")
	require.NoError(t, err)

	entry, err := domain.NewLogEntry(domain.NewLogEntryParams{
		TenantID:       tenantID,
		Timestamp:      time.Now().UTC(),
		Level:          domain.LevelWarn,
		Message:        message,
		Source:         source,
		OriginalFormat: domain.FormatPlainText,
		RawContent:     rawContent,
		CreatedBy:      "test",
	})
	require.NoError(t, err)

	return entry
}

func TestNewLogEntry_SizeBytes(t *testing.T) {
	testCases := []struct {
		name       string
		rawContent string
		wantBytes  int64
	}{
		{name: "ascii", rawContent: "hello", wantBytes: 5},
		{name: "cyrillic is multi-byte", rawContent: "привет", wantBytes: 12},
		{name: "mixed", rawContent: "err: ошибка", wantBytes: 17},
		{name: "emoji", rawContent: "boom \U0001F4A5", wantBytes: 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry := newTestEntry(t, tc.rawContent)
			assert.Equal(t, tc.wantBytes, entry.SizeBytes)
		})
	}
}

func TestNewLogEntry_Validation(t *testing.T) {
	tenantID, _ := domain.ParseTenantID("acme")
	message, _ := domain.NewMessage("msg", "", nil)
	source, _ := domain.NewSource("auth", "prod", "", "")

	params := domain.NewLogEntryParams{
		TenantID:  tenantID,
		Timestamp: time.Now().UTC(),
		Level:     domain.LevelInfo,
		Message:   message,
		Source:    source,
	}

	_, err := domain.NewLogEntry(params)
	assert.ErrorIs(t, err, domain.ErrEmptyFormat)

	params.OriginalFormat = domain.FormatJSON
	_, err = domain.NewLogEntry(params)
	assert.ErrorIs(t, err, domain.ErrEmptyRawContent)
}

func TestLogEntry_ArchiveIsIdempotent(t *testing.T) {
	entry := newTestEntry(t, "raw")

	entry.Archive("retention-job")
	require.True(t, entry.IsArchived)
	require.NotNil(t, entry.ArchivedAt)

	firstArchivedAt := *entry.ArchivedAt
	firstEvents := len(entry.Events())

	entry.Archive("retention-job")

	assert.Equal(t, firstArchivedAt, *entry.ArchivedAt)
	assert.Len(t, entry.Events(), firstEvents)
}

func TestLogEntry_MarkAsProcessedIsIdempotent(t *testing.T) {
	entry := newTestEntry(t, "raw")

	entry.MarkAsProcessed("pipeline")
	require.True(t, entry.IsProcessed)
	firstEvents := len(entry.Events())

	entry.MarkAsProcessed("pipeline")
	assert.Len(t, entry.Events(), firstEvents)
}

func TestLogEntry_CreationEvent(t *testing.T) {
	entry := newTestEntry(t, "raw")

	events := entry.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log_entry.created", events[0].Name())

	entry.ClearEvents()
	assert.Empty(t, entry.Events())
}

func TestLogEntry_ContainsKeyword(t *testing.T) {
	entry := newTestEntry(t, "connection refused by upstream")
	entry.UpdateException("java.net.ConnectException", "test")
	entry.UpdateTags("network,upstream", "test")

	assert.True(t, entry.ContainsKeyword("CONNECTION"))
	assert.True(t, entry.ContainsKeyword("connectexception"))
	assert.True(t, entry.ContainsKeyword("upstream"))
	assert.False(t, entry.ContainsKeyword("database"))
	assert.False(t, entry.ContainsKeyword(""))
}
