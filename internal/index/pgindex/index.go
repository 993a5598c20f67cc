// Package pgindex implements the search-index collaborator on Postgres.
// Every tenant gets its own logical partition keyed by a deterministic
// index name; the engine only ever talks to the index.Index interface, so
// swapping in a document search engine stays a deployment concern.
package pgindex

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/index"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
	"github.com/Egor213/LogStream/pkg/postgres"
)

type Index struct {
	*postgres.Postgres
	prefix string
}

func New(pg *postgres.Postgres, prefix string) *Index {
	return &Index{Postgres: pg, prefix: prefix}
}

var documentColumns = []string{
	"id", "index_name", "tenant_id", "ts", "level",
	"message", "message_template",
	"application", "environment", "server", "component",
	"trace_id", "span_id", "user_id", "session_id", "correlation_id",
	"exception", "tags", "original_format", "raw_content",
	"size_bytes", "ip_address", "user_agent",
	"is_processed", "is_archived", "created_at",
}

const upsertSuffix = "ON CONFLICT (id) DO UPDATE SET " +
	"is_processed = EXCLUDED.is_processed, " +
	"is_archived = EXCLUDED.is_archived, " +
	"exception = EXCLUDED.exception, " +
	"tags = EXCLUDED.tags"

func (i *Index) name(tenantID domain.TenantID) string {
	return index.IndexName(i.prefix, tenantID)
}

func documentValues(indexName string, e *domain.LogEntry) []any {
	return []any{
		e.ID, indexName, e.TenantID.String(), e.Timestamp, e.Level.String(),
		e.Message.Content, e.Message.Template,
		e.Source.Application, e.Source.Environment, e.Source.Server, e.Source.Component,
		e.TraceID, e.SpanID, e.UserID, e.SessionID, e.CorrelationID,
		e.Exception, e.Tags, e.OriginalFormat, e.RawContent,
		e.SizeBytes, e.IPAddress, e.UserAgent,
		e.IsProcessed, e.IsArchived, e.CreatedAt,
	}
}

func (i *Index) IndexOne(ctx context.Context, entry *domain.LogEntry) error {
	sql, args, _ := i.Builder.
		Insert("log_index").
		Columns(documentColumns...).
		Values(documentValues(i.name(entry.TenantID), entry)...).
		Suffix(upsertSuffix).
		ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (i *Index) IndexMany(ctx context.Context, entries []*domain.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := i.Builder.
		Insert("log_index").
		Columns(documentColumns...)

	for _, entry := range entries {
		query = query.Values(documentValues(i.name(entry.TenantID), entry)...)
	}

	sql, args, _ := query.Suffix(upsertSuffix).ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (i *Index) Delete(ctx context.Context, id uuid.UUID, tenantID domain.TenantID) error {
	sql, args, _ := i.Builder.
		Delete("log_index").
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"index_name": i.name(tenantID)},
		}).
		ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (i *Index) Search(ctx context.Context, tenantID domain.TenantID, request index.SearchRequest) (*index.SearchResult, error) {
	started := time.Now()
	request.Normalize()

	conds := buildConds(i.name(tenantID), request)

	sql, args, _ := i.Builder.
		Select(documentColumns...).
		From("log_index").
		Where(conds).
		OrderBy(orderBy(request)).
		Offset(request.Offset()).
		Limit(uint64(request.Size)).
		ToSql()

	rows, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var items []*domain.LogEntry
	for rows.Next() {
		entry, err := scanDocument(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		items = append(items, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	total, err := i.countMatches(ctx, conds)
	if err != nil {
		return nil, err
	}

	aggregations, err := i.facets(ctx, conds)
	if err != nil {
		return nil, err
	}

	return &index.SearchResult{
		Items:        items,
		Total:        total,
		Page:         request.Page,
		Size:         request.Size,
		Elapsed:      time.Since(started),
		Aggregations: aggregations,
	}, nil
}

func (i *Index) countMatches(ctx context.Context, conds sq.And) (int64, error) {
	sql, args, _ := i.Builder.
		Select("COUNT(*)").
		From("log_index").
		Where(conds).
		ToSql()

	var total int64
	if err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return total, nil
}

// facets computes count-by-value buckets for level, application and
// environment over the filtered (not paginated) set, top buckets first.
func (i *Index) facets(ctx context.Context, conds sq.And) (map[string]int64, error) {
	aggregations := make(map[string]int64)

	for _, facet := range []string{"level", "application", "environment"} {
		sql, args, _ := i.Builder.
			Select(facet, "COUNT(*) AS bucket_count").
			From("log_index").
			Where(conds).
			GroupBy(facet).
			OrderBy("bucket_count DESC").
			Limit(index.FacetBucketLimit).
			ToSql()

		rows, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Query(ctx, sql, args...)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}

		for rows.Next() {
			var (
				value string
				count int64
			)
			if err := rows.Scan(&value, &count); err != nil {
				rows.Close()
				return nil, errorsUtils.WrapPathErr(err)
			}
			aggregations[fmt.Sprintf("%s:%s", facet, value)] = count
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, errorsUtils.WrapPathErr(err)
		}
		rows.Close()
	}

	return aggregations, nil
}

func (i *Index) CreateIndex(ctx context.Context, tenantID domain.TenantID) error {
	sql, args, _ := i.Builder.
		Insert("log_indices").
		Columns("index_name", "tenant_id", "created_at").
		Values(i.name(tenantID), tenantID.String(), time.Now().UTC()).
		Suffix("ON CONFLICT (index_name) DO NOTHING").
		ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (i *Index) DeleteIndex(ctx context.Context, tenantID domain.TenantID) error {
	name := i.name(tenantID)

	sql, args, _ := i.Builder.
		Delete("log_index").
		Where(sq.Eq{"index_name": name}).
		ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	sql, args, _ = i.Builder.
		Delete("log_indices").
		Where(sq.Eq{"index_name": name}).
		ToSql()

	if _, err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (i *Index) IndexExists(ctx context.Context, tenantID domain.TenantID) (bool, error) {
	sql, args, _ := i.Builder.
		Select("1").
		From("log_indices").
		Where(sq.Eq{"index_name": i.name(tenantID)}).
		ToSql()

	var one int
	err := i.CtxGetter.DefaultTrOrDB(ctx, i.Pool).QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errorsUtils.WrapPathErr(err)
	}

	return true, nil
}

func scanDocument(rows pgx.Rows) (*domain.LogEntry, error) {
	var (
		e         domain.LogEntry
		indexName string
		tenantID  string
		level     string
	)

	err := rows.Scan(
		&e.ID, &indexName, &tenantID, &e.Timestamp, &level,
		&e.Message.Content, &e.Message.Template,
		&e.Source.Application, &e.Source.Environment, &e.Source.Server, &e.Source.Component,
		&e.TraceID, &e.SpanID, &e.UserID, &e.SessionID, &e.CorrelationID,
		&e.Exception, &e.Tags, &e.OriginalFormat, &e.RawContent,
		&e.SizeBytes, &e.IPAddress, &e.UserAgent,
		&e.IsProcessed, &e.IsArchived, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.TenantID = domain.TenantID(tenantID)
	e.Level = domain.Level(level)

	return &e, nil
}
