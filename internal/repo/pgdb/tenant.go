package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/Egor213/LogStream/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
	"github.com/Egor213/LogStream/pkg/postgres"
)

const uniqueViolationCode = "23505"

type TenantRepo struct {
	*postgres.Postgres
}

func NewTenantRepo(pg *postgres.Postgres) *TenantRepo {
	return &TenantRepo{pg}
}

var tenantColumns = []string{
	"id", "tenant_id", "name", "description", "is_active",
	"subscription_start", "subscription_end",
	"max_log_size_bytes", "max_retention_days", "max_users_count", "daily_log_ingest_limit_mb",
	"api_keys", "created_at", "updated_at", "created_by", "updated_by",
}

func tenantValues(t *domain.Tenant) ([]any, error) {
	apiKeys, err := json.Marshal(t.APIKeys)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return []any{
		t.ID, t.TenantID.String(), t.Name, t.Description, t.IsActive,
		t.SubscriptionStart, t.SubscriptionEnd,
		t.MaxLogSizeBytes, t.MaxRetentionDays, t.MaxUsersCount, t.DailyLogIngestLimitMB,
		apiKeys, t.CreatedAt, t.UpdatedAt, t.CreatedBy, t.UpdatedBy,
	}, nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var (
		t        domain.Tenant
		tenantID string
		apiKeys  []byte
	)

	err := row.Scan(
		&t.ID, &tenantID, &t.Name, &t.Description, &t.IsActive,
		&t.SubscriptionStart, &t.SubscriptionEnd,
		&t.MaxLogSizeBytes, &t.MaxRetentionDays, &t.MaxUsersCount, &t.DailyLogIngestLimitMB,
		&apiKeys, &t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	t.TenantID = domain.TenantID(tenantID)

	if err := json.Unmarshal(apiKeys, &t.APIKeys); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *TenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	values, err := tenantValues(tenant)
	if err != nil {
		return err
	}

	sql, args, _ := r.Builder.
		Insert("tenants").
		Columns(tenantColumns...).
		Values(values...).
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return repoerrs.ErrAlreadyExists
		}
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *TenantRepo) GetByTenantID(ctx context.Context, tenantID domain.TenantID) (*domain.Tenant, error) {
	sql, args, _ := r.Builder.
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"tenant_id": tenantID.String()}).
		ToSql()

	tenant, err := scanTenant(r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repoerrs.ErrNotFound
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	return tenant, nil
}

func (r *TenantRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error) {
	key, err := json.Marshal(apiKey)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	sql, args, _ := r.Builder.
		Select(tenantColumns...).
		From("tenants").
		Where("api_keys @> ?::jsonb", string(key)).
		ToSql()

	tenant, err := scanTenant(r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repoerrs.ErrNotFound
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	return tenant, nil
}

func (r *TenantRepo) GetActiveTenants(ctx context.Context) ([]*domain.Tenant, error) {
	sql, args, _ := r.Builder.
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"is_active": true}).
		OrderBy("tenant_id ASC").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var tenants []*domain.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		tenants = append(tenants, tenant)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return tenants, nil
}

func (r *TenantRepo) Exists(ctx context.Context, tenantID domain.TenantID) (bool, error) {
	sql, args, _ := r.Builder.
		Select("1").
		From("tenants").
		Where(sq.Eq{"tenant_id": tenantID.String()}).
		ToSql()

	var one int
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errorsUtils.WrapPathErr(err)
	}

	return true, nil
}

func (r *TenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	apiKeys, err := json.Marshal(tenant.APIKeys)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	sql, args, _ := r.Builder.
		Update("tenants").
		Set("name", tenant.Name).
		Set("description", tenant.Description).
		Set("is_active", tenant.IsActive).
		Set("subscription_start", tenant.SubscriptionStart).
		Set("subscription_end", tenant.SubscriptionEnd).
		Set("max_log_size_bytes", tenant.MaxLogSizeBytes).
		Set("max_retention_days", tenant.MaxRetentionDays).
		Set("max_users_count", tenant.MaxUsersCount).
		Set("daily_log_ingest_limit_mb", tenant.DailyLogIngestLimitMB).
		Set("api_keys", apiKeys).
		Set("updated_at", tenant.UpdatedAt).
		Set("updated_by", tenant.UpdatedBy).
		Where(sq.Eq{"tenant_id": tenant.TenantID.String()}).
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}
