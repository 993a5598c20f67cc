package pgdb

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
	"github.com/Egor213/LogStream/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
	"github.com/Egor213/LogStream/pkg/postgres"
)

type LogEntryRepo struct {
	*postgres.Postgres
}

func NewLogEntryRepo(pg *postgres.Postgres) *LogEntryRepo {
	return &LogEntryRepo{pg}
}

var logEntryColumns = []string{
	"id", "tenant_id", "ts", "level",
	"message", "message_template", "message_properties",
	"application", "environment", "server", "component",
	"trace_id", "span_id", "user_id", "session_id", "correlation_id",
	"exception", "metadata", "tags", "original_format", "raw_content",
	"size_bytes", "ip_address", "user_agent",
	"is_processed", "is_archived", "archived_at",
	"created_at", "updated_at", "created_by", "updated_by",
}

func logEntryValues(e *domain.LogEntry) ([]any, error) {
	properties, err := json.Marshal(e.Message.Properties)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return []any{
		e.ID, e.TenantID.String(), e.Timestamp, e.Level.String(),
		e.Message.Content, e.Message.Template, properties,
		e.Source.Application, e.Source.Environment, e.Source.Server, e.Source.Component,
		e.TraceID, e.SpanID, e.UserID, e.SessionID, e.CorrelationID,
		e.Exception, metadata, e.Tags, e.OriginalFormat, e.RawContent,
		e.SizeBytes, e.IPAddress, e.UserAgent,
		e.IsProcessed, e.IsArchived, e.ArchivedAt,
		e.CreatedAt, e.UpdatedAt, e.CreatedBy, e.UpdatedBy,
	}, nil
}

func scanLogEntry(row pgx.Row) (*domain.LogEntry, error) {
	var (
		e          domain.LogEntry
		tenantID   string
		level      string
		properties []byte
		metadata   []byte
	)

	err := row.Scan(
		&e.ID, &tenantID, &e.Timestamp, &level,
		&e.Message.Content, &e.Message.Template, &properties,
		&e.Source.Application, &e.Source.Environment, &e.Source.Server, &e.Source.Component,
		&e.TraceID, &e.SpanID, &e.UserID, &e.SessionID, &e.CorrelationID,
		&e.Exception, &metadata, &e.Tags, &e.OriginalFormat, &e.RawContent,
		&e.SizeBytes, &e.IPAddress, &e.UserAgent,
		&e.IsProcessed, &e.IsArchived, &e.ArchivedAt,
		&e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	e.TenantID = domain.TenantID(tenantID)
	e.Level = domain.Level(level)

	if err := json.Unmarshal(properties, &e.Message.Properties); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *LogEntryRepo) Create(ctx context.Context, entry *domain.LogEntry) error {
	values, err := logEntryValues(entry)
	if err != nil {
		return err
	}

	sql, args, _ := r.Builder.
		Insert("log_entries").
		Columns(logEntryColumns...).
		Values(values...).
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *LogEntryRepo) BulkInsert(ctx context.Context, entries []*domain.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := r.Builder.
		Insert("log_entries").
		Columns(logEntryColumns...)

	for _, entry := range entries {
		values, err := logEntryValues(entry)
		if err != nil {
			return err
		}
		query = query.Values(values...)
	}

	sql, args, _ := query.ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *LogEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logEntryColumns...).
		From("log_entries").
		Where(sq.Eq{"id": id}).
		ToSql()

	entry, err := scanLogEntry(r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repoerrs.ErrNotFound
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	return entry, nil
}

func (r *LogEntryRepo) GetLogsForArchival(ctx context.Context, filter repotypes.ArchivalFilter) ([]*domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logEntryColumns...).
		From("log_entries").
		Where(sq.And{
			sq.Eq{"tenant_id": filter.TenantID.String()},
			sq.Eq{"is_archived": false},
			sq.Lt{"created_at": filter.Cutoff},
		}).
		OrderBy("created_at ASC").
		Limit(uint64(filter.BatchSize)).
		ToSql()

	return r.queryEntries(ctx, sql, args)
}

func (r *LogEntryRepo) GetArchivedBefore(ctx context.Context, filter repotypes.ArchivedFilter) ([]*domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logEntryColumns...).
		From("log_entries").
		Where(sq.And{
			sq.Eq{"tenant_id": filter.TenantID.String()},
			sq.Eq{"is_archived": true},
			sq.Lt{"archived_at": filter.OlderThan},
		}).
		OrderBy("archived_at ASC").
		Limit(uint64(filter.BatchSize)).
		ToSql()

	return r.queryEntries(ctx, sql, args)
}

func (r *LogEntryRepo) GetUnprocessed(ctx context.Context, batchSize int) ([]*domain.LogEntry, error) {
	sql, args, _ := r.Builder.
		Select(logEntryColumns...).
		From("log_entries").
		Where(sq.Eq{"is_processed": false}).
		OrderBy("created_at ASC").
		Limit(uint64(batchSize)).
		ToSql()

	return r.queryEntries(ctx, sql, args)
}

func (r *LogEntryRepo) Update(ctx context.Context, entry *domain.LogEntry) error {
	sql, args, _ := r.Builder.
		Update("log_entries").
		Set("is_processed", entry.IsProcessed).
		Set("is_archived", entry.IsArchived).
		Set("archived_at", entry.ArchivedAt).
		Set("trace_id", entry.TraceID).
		Set("span_id", entry.SpanID).
		Set("correlation_id", entry.CorrelationID).
		Set("exception", entry.Exception).
		Set("tags", entry.Tags).
		Set("updated_at", entry.UpdatedAt).
		Set("updated_by", entry.UpdatedBy).
		Where(sq.Eq{"id": entry.ID}).
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *LogEntryRepo) RemoveRange(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, _ := r.Builder.
		Delete("log_entries").
		Where(sq.Eq{"id": ids}).
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *LogEntryRepo) GetTotalSizeBytes(ctx context.Context, tenantID domain.TenantID) (int64, error) {
	sql, args, _ := r.Builder.
		Select("COALESCE(SUM(size_bytes), 0)").
		From("log_entries").
		Where(sq.Eq{"tenant_id": tenantID.String()}).
		ToSql()

	var total int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return total, nil
}

func (r *LogEntryRepo) CountInWindow(ctx context.Context, filter repotypes.WindowFilter) (int64, error) {
	conds := sq.And{
		sq.Eq{"tenant_id": filter.TenantID.String()},
		sq.GtOrEq{"ts": filter.From},
		sq.LtOrEq{"ts": filter.To},
	}

	if len(filter.Levels) > 0 {
		levels := make([]string, 0, len(filter.Levels))
		for _, level := range filter.Levels {
			levels = append(levels, level.String())
		}
		conds = append(conds, sq.Eq{"level": levels})
	}

	sql, args, _ := r.Builder.
		Select("COUNT(*)").
		From("log_entries").
		Where(conds).
		ToSql()

	var count int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return count, nil
}

func (r *LogEntryRepo) CountByTenant(ctx context.Context, tenantID domain.TenantID) (int64, error) {
	return r.count(ctx, sq.Eq{"tenant_id": tenantID.String()})
}

func (r *LogEntryRepo) CountArchivedByTenant(ctx context.Context, tenantID domain.TenantID) (int64, error) {
	return r.count(ctx, sq.And{
		sq.Eq{"tenant_id": tenantID.String()},
		sq.Eq{"is_archived": true},
	})
}

func (r *LogEntryRepo) CountByTenantSince(ctx context.Context, tenantID domain.TenantID, since, until time.Time) (int64, error) {
	return r.count(ctx, sq.And{
		sq.Eq{"tenant_id": tenantID.String()},
		sq.GtOrEq{"ts": since},
		sq.Lt{"ts": until},
	})
}

func (r *LogEntryRepo) count(ctx context.Context, conds sq.Sqlizer) (int64, error) {
	sql, args, _ := r.Builder.
		Select("COUNT(*)").
		From("log_entries").
		Where(conds).
		ToSql()

	var count int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return count, nil
}

func (r *LogEntryRepo) queryEntries(ctx context.Context, sql string, args []any) ([]*domain.LogEntry, error) {
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var entries []*domain.LogEntry
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return entries, nil
}
