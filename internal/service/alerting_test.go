package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/mocks"
	"github.com/Egor213/LogStream/internal/notifier"
	"github.com/Egor213/LogStream/internal/repo/repotypes"
	"github.com/Egor213/LogStream/internal/service"
)

func newAlertingService(t *testing.T) (*service.AlertingService, *mocks.MockLogEntry, *mocks.MockTenant, *mocks.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logRepo := mocks.NewMockLogEntry(ctrl)
	tenantRepo := mocks.NewMockTenant(ctrl)
	nf := mocks.NewMockNotifier(ctrl)

	return service.NewAlertingService(logRepo, tenantRepo, nf, metrics.NewTestCounters()), logRepo, tenantRepo, nf
}

func TestAlertingService_ProcessEntryAlerts(t *testing.T) {
	testCases := []struct {
		name           string
		level          domain.Level
		message        string
		wantSeverities []string
	}{
		{
			name:    "benign info entry",
			level:   domain.LevelInfo,
			message: "user logged in",
		},
		{
			name:           "error level triggers immediate alert",
			level:          domain.LevelError,
			message:        "request handler panicked",
			wantSeverities: []string{"ERROR"},
		},
		{
			name:           "critical pattern in info entry",
			level:          domain.LevelInfo,
			message:        "retrying: Database Connection Failed after timeout",
			wantSeverities: []string{"CRITICAL"},
		},
		{
			name:           "fatal with critical pattern fires both",
			level:          domain.LevelFatal,
			message:        "out of memory while ingesting batch",
			wantSeverities: []string{"FATAL", "CRITICAL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, nf := newAlertingService(t)

			var got []string
			nf.EXPECT().
				Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n notifier.AlertNotification) error {
					got = append(got, n.Severity)
					return nil
				}).
				Times(len(tc.wantSeverities))

			entry := newTestEntry(t, domain.TenantID("acme"), tc.level, tc.message)
			svc.ProcessEntryAlerts(context.Background(), entry)

			assert.Equal(t, tc.wantSeverities, got)
		})
	}
}

func TestAlertingService_CheckThresholdAlerts_ErrorRate(t *testing.T) {
	testCases := []struct {
		name       string
		total      int64
		errorCount int64
		wantAlert  bool
		wantRate   float64
	}{
		{
			name:       "15 percent error rate fires warning",
			total:      100,
			errorCount: 15,
			wantAlert:  true,
			wantRate:   0.15,
		},
		{
			name:       "exactly 10 percent stays quiet",
			total:      100,
			errorCount: 10,
		},
		{
			name:  "empty window stays quiet",
			total: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, logRepo, _, nf := newAlertingService(t)

			logRepo.EXPECT().
				CountInWindow(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter repotypes.WindowFilter) (int64, error) {
					if len(filter.Levels) == 0 {
						return tc.total, nil
					}
					assert.ElementsMatch(t, []domain.Level{domain.LevelError, domain.LevelFatal}, filter.Levels)
					return tc.errorCount, nil
				}).
				Times(2)

			if tc.wantAlert {
				nf.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notifier.AlertNotification) error {
						assert.Equal(t, "WARNING", n.Severity)
						assert.InDelta(t, tc.wantRate, n.Metadata["errorRate"], 0.0001)
						assert.Equal(t, tc.errorCount, n.Metadata["errorCount"])
						assert.Equal(t, tc.total, n.Metadata["totalCount"])
						return nil
					})
			}

			err := svc.CheckThresholdAlerts(context.Background(), domain.TenantID("acme"))
			require.NoError(t, err)
		})
	}
}

func TestAlertingService_CheckThresholdAlerts_Volume(t *testing.T) {
	svc, logRepo, _, nf := newAlertingService(t)

	logRepo.EXPECT().
		CountInWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repotypes.WindowFilter) (int64, error) {
			if len(filter.Levels) == 0 {
				return 15000, nil
			}
			return 0, nil
		}).
		Times(2)

	nf.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notifier.AlertNotification) error {
			assert.Equal(t, "INFO", n.Severity)
			assert.Equal(t, int64(15000), n.Metadata["logCount"])
			return nil
		})

	err := svc.CheckThresholdAlerts(context.Background(), domain.TenantID("acme"))
	require.NoError(t, err)
}

func TestAlertingService_CheckEscalations(t *testing.T) {
	testCases := []struct {
		name       string
		fatalCount int64
		wantAlert  bool
	}{
		{name: "unresolved fatals escalate", fatalCount: 3, wantAlert: true},
		{name: "no fatals no escalation", fatalCount: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, logRepo, _, nf := newAlertingService(t)

			logRepo.EXPECT().
				CountInWindow(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter repotypes.WindowFilter) (int64, error) {
					assert.Equal(t, []domain.Level{domain.LevelFatal}, filter.Levels)
					return tc.fatalCount, nil
				})

			if tc.wantAlert {
				nf.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n notifier.AlertNotification) error {
						assert.Equal(t, "CRITICAL", n.Severity)
						assert.Equal(t, tc.fatalCount, n.Metadata["criticalCount"])
						return nil
					})
			}

			err := svc.CheckEscalations(context.Background(), domain.TenantID("acme"))
			require.NoError(t, err)
		})
	}
}

func TestAlertingService_CheckAllThresholds(t *testing.T) {
	svc, logRepo, tenantRepo, _ := newAlertingService(t)

	tenantRepo.EXPECT().
		GetActiveTenants(gomock.Any()).
		Return([]*domain.Tenant{
			newActiveTenant(t, "acme"),
			newActiveTenant(t, "globex"),
		}, nil)

	// Two calls per tenant, all under threshold.
	logRepo.EXPECT().
		CountInWindow(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		Times(4)

	err := svc.CheckAllThresholds(context.Background())
	require.NoError(t, err)
}
