package index

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Egor213/LogStream/internal/domain"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
	DefaultSortBy   = "timestamp"

	// FacetBucketLimit caps every facet aggregation to its top buckets.
	FacetBucketLimit = 10
)

// SearchRequest is the bounded filter/sort/page contract for tenant-scoped
// search. Zero values mean "filter absent".
type SearchRequest struct {
	Query          string
	StartTime      *time.Time
	EndTime        *time.Time
	Level          string
	Application    string
	Environment    string
	Server         string
	Component      string
	Tags           []string
	Page           int
	Size           int
	SortBy         string
	SortDescending bool
}

// Normalize fills paging and sorting defaults: page 1, size 100 (capped at
// MaxPageSize), newest-first by timestamp.
func (r *SearchRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}

	if r.Size < 1 {
		r.Size = DefaultPageSize
	}

	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}

	if r.SortBy == "" {
		r.SortBy = DefaultSortBy
		r.SortDescending = true
	}
}

func (r *SearchRequest) Offset() uint64 {
	return uint64((r.Page - 1) * r.Size)
}

// SearchResult carries one page of matches plus the total matching count and
// facet aggregations over the whole filtered set.
type SearchResult struct {
	Items        []*domain.LogEntry
	Total        int64
	Page         int
	Size         int
	Elapsed      time.Duration
	Aggregations map[string]int64
}

// Index is the search-index collaborator. Every operation is scoped to one
// tenant partition; a cross-tenant query is not expressible through this
// interface.
type Index interface {
	IndexOne(ctx context.Context, entry *domain.LogEntry) error
	IndexMany(ctx context.Context, entries []*domain.LogEntry) error
	Delete(ctx context.Context, id uuid.UUID, tenantID domain.TenantID) error
	Search(ctx context.Context, tenantID domain.TenantID, request SearchRequest) (*SearchResult, error)
	CreateIndex(ctx context.Context, tenantID domain.TenantID) error
	DeleteIndex(ctx context.Context, tenantID domain.TenantID) error
	IndexExists(ctx context.Context, tenantID domain.TenantID) (bool, error)
}

// IndexName derives the per-tenant partition name deterministically.
func IndexName(prefix string, tenantID domain.TenantID) string {
	return fmt.Sprintf("%s-%s", prefix, tenantID)
}
