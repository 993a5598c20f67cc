package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/mocks"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
	"github.com/Egor213/LogStream/internal/service"
)

func newTenantService(t *testing.T) (*service.TenantService, *mocks.MockTenant, *mocks.MockIndex) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tenantRepo := mocks.NewMockTenant(ctrl)
	idx := mocks.NewMockIndex(ctrl)

	return service.NewTenantService(tenantRepo, idx, newTestDispatcher()), tenantRepo, idx
}

func TestTenantService_CreateTenant(t *testing.T) {
	svc, tenantRepo, idx := newTenantService(t)

	tenantRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			assert.Equal(t, domain.TenantID("acme-corp"), tenant.TenantID)
			assert.True(t, tenant.IsActive)
			return nil
		})
	idx.EXPECT().
		CreateIndex(gomock.Any(), domain.TenantID("acme-corp")).
		Return(nil)

	tenant, err := svc.CreateTenant(context.Background(), service.CreateTenantParams{
		TenantID:  "Acme-Corp",
		Name:      "Acme Corporation",
		CreatedBy: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TenantID("acme-corp"), tenant.TenantID)
	assert.Empty(t, tenant.Events())
}

func TestTenantService_CreateTenant_Duplicate(t *testing.T) {
	svc, tenantRepo, _ := newTenantService(t)

	tenantRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(repoerrs.ErrAlreadyExists)

	tenant, err := svc.CreateTenant(context.Background(), service.CreateTenantParams{
		TenantID:  "acme",
		Name:      "Acme",
		CreatedBy: "admin",
	})

	assert.ErrorIs(t, err, service.ErrTenantAlreadyExists)
	assert.Nil(t, tenant)
}

func TestTenantService_CreateTenant_InvalidID(t *testing.T) {
	svc, _, _ := newTenantService(t)

	tenant, err := svc.CreateTenant(context.Background(), service.CreateTenantParams{
		TenantID:  "not a tenant id",
		Name:      "Broken",
		CreatedBy: "admin",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTenantID)
	assert.Nil(t, tenant)
}

func TestTenantService_UpdateTenantLimits(t *testing.T) {
	testCases := []struct {
		name    string
		params  service.UpdateLimitsParams
		wantErr error
	}{
		{
			name: "success",
			params: service.UpdateLimitsParams{
				TenantID:              "acme",
				MaxLogSizeBytes:       5_000_000_000,
				MaxRetentionDays:      30,
				MaxUsersCount:         5,
				DailyLogIngestLimitMB: 500,
				UpdatedBy:             "admin",
			},
		},
		{
			name: "rejects non-positive values without partial apply",
			params: service.UpdateLimitsParams{
				TenantID:              "acme",
				MaxLogSizeBytes:       5_000_000_000,
				MaxRetentionDays:      0,
				MaxUsersCount:         5,
				DailyLogIngestLimitMB: 500,
				UpdatedBy:             "admin",
			},
			wantErr: domain.ErrInvalidLimits,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, tenantRepo, _ := newTenantService(t)

			tenant := newActiveTenant(t, "acme")
			tenantRepo.EXPECT().
				GetByTenantID(gomock.Any(), domain.TenantID("acme")).
				Return(tenant, nil)

			if tc.wantErr == nil {
				tenantRepo.EXPECT().
					Update(gomock.Any(), tenant).
					Return(nil)
			}

			err := svc.UpdateTenantLimits(context.Background(), tc.params)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 90, tenant.MaxRetentionDays)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 30, tenant.MaxRetentionDays)
		})
	}
}

func TestTenantService_DeactivateThenActivate(t *testing.T) {
	svc, tenantRepo, _ := newTenantService(t)

	tenant := newActiveTenant(t, "acme")

	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(tenant, nil).
		Times(2)
	tenantRepo.EXPECT().
		Update(gomock.Any(), tenant).
		Return(nil).
		Times(2)

	require.NoError(t, svc.DeactivateTenant(context.Background(), "acme", "admin"))
	assert.False(t, tenant.IsActive)

	require.NoError(t, svc.ActivateTenant(context.Background(), "acme", "admin"))
	assert.True(t, tenant.IsActive)
}

func TestTenantService_UpdateTenantSubscription_InvalidWindow(t *testing.T) {
	svc, tenantRepo, _ := newTenantService(t)

	tenant := newActiveTenant(t, "acme")
	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(tenant, nil)

	now := time.Now().UTC()
	err := svc.UpdateTenantSubscription(context.Background(), "acme", now, now.Add(-time.Hour), "admin")

	assert.ErrorIs(t, err, domain.ErrInvalidSubsWindow)
}

func TestTenantService_APIKeys(t *testing.T) {
	svc, tenantRepo, _ := newTenantService(t)

	tenant := newActiveTenant(t, "acme")

	tenantRepo.EXPECT().
		GetByTenantID(gomock.Any(), domain.TenantID("acme")).
		Return(tenant, nil).
		Times(2)
	tenantRepo.EXPECT().
		Update(gomock.Any(), tenant).
		Return(nil).
		Times(2)

	require.NoError(t, svc.AddTenantAPIKey(context.Background(), "acme", "key-123", "admin"))
	assert.True(t, tenant.IsValidAPIKey("key-123"))

	require.NoError(t, svc.RemoveTenantAPIKey(context.Background(), "acme", "key-123", "admin"))
	assert.False(t, tenant.IsValidAPIKey("key-123"))
}
