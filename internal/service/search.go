package service

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
)

type SearchService struct {
	tenantRepo repo.Tenant
	index      index.Index
	counters   *metrics.Counters
}

func NewSearchService(tr repo.Tenant, idx index.Index, cnt *metrics.Counters) *SearchService {
	return &SearchService{
		tenantRepo: tr,
		index:      idx,
		counters:   cnt,
	}
}

// SearchLogs validates the tenant and request before anything reaches the
// query layer, then executes against the tenant partition. A page past the
// end of the result set is an empty result, not an error.
func (s *SearchService) SearchLogs(ctx context.Context, rawTenantID string, request index.SearchRequest) (*index.SearchResult, error) {
	tenantID, err := domain.ParseTenantID(rawTenantID)
	if err != nil {
		return nil, err
	}

	exists, err := s.tenantRepo.Exists(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	if !exists {
		return nil, ErrTenantNotFound
	}

	if request.Level != "" {
		level, err := domain.ParseLevel(request.Level)
		if err != nil {
			return nil, err
		}
		request.Level = level.String()
	}

	request.Normalize()

	result, err := s.index.Search(ctx, tenantID, request)
	if err != nil {
		s.counters.SearchRequests.Inc(tenantID.String(), "error")
		log.WithField("tenant", tenantID).Errorf("Search failed: %v", err)
		return nil, ErrCannotSearch
	}

	s.counters.SearchRequests.Inc(tenantID.String(), "ok")

	log.WithFields(log.Fields{
		"tenant":  tenantID,
		"total":   result.Total,
		"page":    result.Page,
		"elapsed": result.Elapsed,
	}).Debug("Search executed")

	return result, nil
}
