package pgindex

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Egor213/LogStream/internal/index"
)

// sortFields whitelists sortable columns; anything else falls back to the
// timestamp default.
var sortFields = map[string]string{
	"timestamp":   "ts",
	"level":       "level",
	"application": "application",
	"environment": "environment",
	"size":        "size_bytes",
	"created_at":  "created_at",
}

// buildConds folds the request into a conjunction of independent predicates.
// The partition scope is always the first predicate and is never optional.
func buildConds(indexName string, r index.SearchRequest) sq.And {
	conds := sq.And{sq.Eq{"index_name": indexName}}

	if r.Query != "" {
		pattern := "%" + r.Query + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"message": pattern},
			sq.ILike{"exception": pattern},
			sq.ILike{"tags": pattern},
			sq.ILike{"raw_content": pattern},
		})
	}

	if r.StartTime != nil {
		conds = append(conds, sq.GtOrEq{"ts": *r.StartTime})
	}

	if r.EndTime != nil {
		conds = append(conds, sq.LtOrEq{"ts": *r.EndTime})
	}

	if r.Level != "" {
		conds = append(conds, sq.Eq{"level": r.Level})
	}

	if r.Application != "" {
		conds = append(conds, sq.Eq{"application": r.Application})
	}

	if r.Environment != "" {
		conds = append(conds, sq.Eq{"environment": r.Environment})
	}

	if r.Server != "" {
		conds = append(conds, sq.Eq{"server": r.Server})
	}

	if r.Component != "" {
		conds = append(conds, sq.Eq{"component": r.Component})
	}

	for _, tag := range r.Tags {
		if tag != "" {
			conds = append(conds, sq.ILike{"tags": "%" + tag + "%"})
		}
	}

	return conds
}

func orderBy(r index.SearchRequest) string {
	column, ok := sortFields[r.SortBy]
	if !ok {
		column = sortFields[index.DefaultSortBy]
	}

	direction := "ASC"
	if r.SortDescending {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}
