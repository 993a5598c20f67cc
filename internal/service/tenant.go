package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
)

type CreateTenantParams struct {
	TenantID    string
	Name        string
	Description string
	CreatedBy   string
}

type UpdateLimitsParams struct {
	TenantID              string
	MaxLogSizeBytes       int64
	MaxRetentionDays      int
	MaxUsersCount         int
	DailyLogIngestLimitMB int
	UpdatedBy             string
}

type TenantService struct {
	tenantRepo repo.Tenant
	index      index.Index
	events     *Dispatcher
}

func NewTenantService(tr repo.Tenant, idx index.Index, events *Dispatcher) *TenantService {
	return &TenantService{
		tenantRepo: tr,
		index:      idx,
		events:     events,
	}
}

// CreateTenant registers a tenant and provisions its search partition. The
// partition is created after the tenant row commits; a provisioning failure
// is retried lazily on first index write, so it is only logged here.
func (s *TenantService) CreateTenant(ctx context.Context, params CreateTenantParams) (*domain.Tenant, error) {
	tenantID, err := domain.ParseTenantID(params.TenantID)
	if err != nil {
		return nil, err
	}

	tenant, err := domain.NewTenant(tenantID, params.Name, params.Description, params.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return nil, ErrTenantAlreadyExists
		}
		return nil, err
	}

	if err := s.index.CreateIndex(ctx, tenantID); err != nil {
		log.WithField("tenant", tenantID).Errorf("Failed to provision search index: %v", err)
	}

	s.events.Enqueue(tenant.Events()...)
	tenant.ClearEvents()

	log.WithFields(log.Fields{
		"tenant": tenantID,
		"name":   tenant.Name,
	}).Info("Tenant created")

	return tenant, nil
}

func (s *TenantService) GetTenant(ctx context.Context, rawTenantID string) (*domain.Tenant, error) {
	tenantID, err := domain.ParseTenantID(rawTenantID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	return tenant, nil
}

func (s *TenantService) GetTenantByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error) {
	if apiKey == "" {
		return nil, domain.ErrEmptyAPIKey
	}

	tenant, err := s.tenantRepo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	return tenant, nil
}

func (s *TenantService) ActivateTenant(ctx context.Context, rawTenantID string, by string) error {
	return s.mutate(ctx, rawTenantID, func(tenant *domain.Tenant) error {
		tenant.Activate(by)
		return nil
	})
}

func (s *TenantService) DeactivateTenant(ctx context.Context, rawTenantID string, by string) error {
	return s.mutate(ctx, rawTenantID, func(tenant *domain.Tenant) error {
		tenant.Deactivate(by)
		return nil
	})
}

func (s *TenantService) UpdateTenantLimits(ctx context.Context, params UpdateLimitsParams) error {
	return s.mutate(ctx, params.TenantID, func(tenant *domain.Tenant) error {
		return tenant.UpdateLimits(
			params.MaxLogSizeBytes,
			params.MaxRetentionDays,
			params.MaxUsersCount,
			params.DailyLogIngestLimitMB,
			params.UpdatedBy,
		)
	})
}

func (s *TenantService) UpdateTenantSubscription(ctx context.Context, rawTenantID string, start, end time.Time, by string) error {
	return s.mutate(ctx, rawTenantID, func(tenant *domain.Tenant) error {
		return tenant.UpdateSubscription(start, end, by)
	})
}

func (s *TenantService) AddTenantAPIKey(ctx context.Context, rawTenantID, apiKey, by string) error {
	return s.mutate(ctx, rawTenantID, func(tenant *domain.Tenant) error {
		return tenant.AddAPIKey(apiKey, by)
	})
}

func (s *TenantService) RemoveTenantAPIKey(ctx context.Context, rawTenantID, apiKey, by string) error {
	return s.mutate(ctx, rawTenantID, func(tenant *domain.Tenant) error {
		tenant.RemoveAPIKey(apiKey, by)
		return nil
	})
}

// mutate loads the aggregate, applies fn and persists the result. Domain
// validation errors surface unchanged; persistence failures map to the
// service sentinel.
func (s *TenantService) mutate(ctx context.Context, rawTenantID string, fn func(tenant *domain.Tenant) error) error {
	tenantID, err := domain.ParseTenantID(rawTenantID)
	if err != nil {
		return err
	}

	tenant, err := s.tenantRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrTenantNotFound
		}
		return err
	}

	if err := fn(tenant); err != nil {
		return err
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return ErrCannotUpdateTenant
	}

	s.events.Enqueue(tenant.Events()...)
	tenant.ClearEvents()

	return nil
}
