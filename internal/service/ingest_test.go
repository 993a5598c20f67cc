package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/mocks"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
	"github.com/Egor213/LogStream/internal/service"
)

func validIngestParams(tenantID string) service.IngestLogParams {
	return service.IngestLogParams{
		TenantID:       tenantID,
		Timestamp:      time.Now().UTC(),
		Level:          "ERROR",
		Message:        "payment failed",
		Application:    "billing",
		Environment:    "production",
		OriginalFormat: domain.FormatJSON,
		RawContent:     `{"msg":"payment failed"}`,
	}
}

func TestIngestService_IngestLog(t *testing.T) {
	type mockBehavior func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex)

	testCases := []struct {
		name         string
		params       service.IngestLogParams
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "success",
			params: validIngestParams("acme"),
			mockBehavior: func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex) {
				tr.EXPECT().
					GetByTenantID(gomock.Any(), domain.TenantID("acme")).
					Return(newActiveTenant(t, "acme"), nil)
				lr.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
				idx.EXPECT().
					IndexOne(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "unknown tenant",
			params: validIngestParams("ghost"),
			mockBehavior: func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex) {
				tr.EXPECT().
					GetByTenantID(gomock.Any(), domain.TenantID("ghost")).
					Return(nil, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrTenantNotFound,
		},
		{
			name:   "deactivated tenant",
			params: validIngestParams("acme"),
			mockBehavior: func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex) {
				tenant := newActiveTenant(t, "acme")
				tenant.Deactivate("admin")
				tr.EXPECT().
					GetByTenantID(gomock.Any(), domain.TenantID("acme")).
					Return(tenant, nil)
			},
			wantErr: service.ErrTenantCannotIngest,
		},
		{
			name: "invalid level",
			params: func() service.IngestLogParams {
				p := validIngestParams("acme")
				p.Level = "LOUD"
				return p
			}(),
			mockBehavior: func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex) {
				tr.EXPECT().
					GetByTenantID(gomock.Any(), domain.TenantID("acme")).
					Return(newActiveTenant(t, "acme"), nil)
			},
			wantErr: domain.ErrInvalidLogLevel,
		},
		{
			name:   "repository failure",
			params: validIngestParams("acme"),
			mockBehavior: func(lr *mocks.MockLogEntry, tr *mocks.MockTenant, idx *mocks.MockIndex) {
				tr.EXPECT().
					GetByTenantID(gomock.Any(), domain.TenantID("acme")).
					Return(newActiveTenant(t, "acme"), nil)
				lr.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: service.ErrCannotCreateLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logRepo := mocks.NewMockLogEntry(ctrl)
			tenantRepo := mocks.NewMockTenant(ctrl)
			idx := mocks.NewMockIndex(ctrl)
			tc.mockBehavior(logRepo, tenantRepo, idx)

			svc := service.NewIngestService(logRepo, tenantRepo, idx, txStub{}, newTestDispatcher(), metrics.NewTestCounters())

			entry, err := svc.IngestLog(context.Background(), tc.params)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, domain.TenantID("acme"), entry.TenantID)
			assert.Equal(t, domain.LevelError, entry.Level)
			assert.Equal(t, int64(len(tc.params.RawContent)), entry.SizeBytes)
			assert.Empty(t, entry.Events())
		})
	}
}

func TestIngestService_IngestLog_IndexFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logRepo := mocks.NewMockLogEntry(ctrl)
	tenantRepo := mocks.NewMockTenant(ctrl)
	idx := mocks.NewMockIndex(ctrl)

	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(newActiveTenant(t, "acme"), nil)
	logRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)
	idx.EXPECT().
		IndexOne(gomock.Any(), gomock.Any()).
		Return(errors.New("index unavailable"))

	svc := service.NewIngestService(logRepo, tenantRepo, idx, txStub{}, newTestDispatcher(), metrics.NewTestCounters())

	entry, err := svc.IngestLog(context.Background(), validIngestParams("acme"))

	assert.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestIngestService_BulkIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logRepo := mocks.NewMockLogEntry(ctrl)
	tenantRepo := mocks.NewMockTenant(ctrl)
	idx := mocks.NewMockIndex(ctrl)

	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(newActiveTenant(t, "acme"), nil)
	logRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Len(3)).
		Return(nil)
	idx.EXPECT().
		IndexMany(gomock.Any(), gomock.Len(3)).
		Return(nil)

	svc := service.NewIngestService(logRepo, tenantRepo, idx, txStub{}, newTestDispatcher(), metrics.NewTestCounters())

	items := []service.IngestLogParams{
		validIngestParams("acme"),
		validIngestParams("acme"),
		validIngestParams("acme"),
	}

	accepted, err := svc.BulkIngest(context.Background(), "acme", items)

	assert.NoError(t, err)
	assert.Equal(t, 3, accepted)
}

func TestIngestService_BulkIngest_FailsFastOnBadItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logRepo := mocks.NewMockLogEntry(ctrl)
	tenantRepo := mocks.NewMockTenant(ctrl)
	idx := mocks.NewMockIndex(ctrl)

	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(newActiveTenant(t, "acme"), nil)

	bad := validIngestParams("acme")
	bad.RawContent = ""

	svc := service.NewIngestService(logRepo, tenantRepo, idx, txStub{}, newTestDispatcher(), metrics.NewTestCounters())

	accepted, err := svc.BulkIngest(context.Background(), "acme", []service.IngestLogParams{
		validIngestParams("acme"),
		bad,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyRawContent)
	assert.Zero(t, accepted)
}
