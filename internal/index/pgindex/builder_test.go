package pgindex

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Egor213/LogStream/internal/index"
)

func TestBuildConds_TenantScopeAlwaysFirst(t *testing.T) {
	testCases := []struct {
		name    string
		request index.SearchRequest
	}{
		{name: "empty request"},
		{name: "free text", request: index.SearchRequest{Query: "timeout"}},
		{name: "all filters", request: index.SearchRequest{
			Query:       "timeout",
			Level:       "ERROR",
			Application: "auth",
			Environment: "prod",
			Server:      "web-1",
			Component:   "login",
			Tags:        []string{"network"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds := buildConds("logstream-logs-acme", tc.request)
			require.NotEmpty(t, conds)

			sql, args, err := conds[0].ToSql()
			require.NoError(t, err)
			assert.Equal(t, "index_name = ?", sql)
			assert.Equal(t, []any{"logstream-logs-acme"}, args)
		})
	}
}

func TestBuildConds_OnlyPresentFiltersApply(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		request   index.SearchRequest
		wantConds int
	}{
		{name: "scope only", request: index.SearchRequest{}, wantConds: 1},
		{name: "level", request: index.SearchRequest{Level: "ERROR"}, wantConds: 2},
		{name: "time range", request: index.SearchRequest{StartTime: &start, EndTime: &start}, wantConds: 3},
		{name: "two tags", request: index.SearchRequest{Tags: []string{"a", "b"}}, wantConds: 3},
		{name: "empty tag skipped", request: index.SearchRequest{Tags: []string{""}}, wantConds: 1},
		{name: "free text", request: index.SearchRequest{Query: "x"}, wantConds: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds := buildConds("idx", tc.request)
			assert.Len(t, conds, tc.wantConds)
		})
	}
}

func TestBuildConds_FreeTextSearchesAllTextFields(t *testing.T) {
	conds := buildConds("idx", index.SearchRequest{Query: "boom"})
	require.Len(t, conds, 2)

	or, ok := conds[1].(sq.Or)
	require.True(t, ok)
	require.Len(t, or, 4)

	sql, args, err := or.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "message ILIKE ?")
	assert.Contains(t, sql, "exception ILIKE ?")
	assert.Contains(t, sql, "tags ILIKE ?")
	assert.Contains(t, sql, "raw_content ILIKE ?")

	for _, arg := range args {
		assert.Equal(t, "%boom%", arg)
	}
}

func TestOrderBy(t *testing.T) {
	testCases := []struct {
		name    string
		request index.SearchRequest
		want    string
	}{
		{name: "default descending timestamp", request: index.SearchRequest{SortBy: "timestamp", SortDescending: true}, want: "ts DESC"},
		{name: "ascending level", request: index.SearchRequest{SortBy: "level"}, want: "level ASC"},
		{name: "unknown field falls back to timestamp", request: index.SearchRequest{SortBy: "raw_content; DROP TABLE", SortDescending: true}, want: "ts DESC"},
		{name: "size maps to size_bytes", request: index.SearchRequest{SortBy: "size"}, want: "size_bytes ASC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderBy(tc.request))
		})
	}
}

func TestSearchRequest_Normalize(t *testing.T) {
	testCases := []struct {
		name     string
		request  index.SearchRequest
		wantPage int
		wantSize int
		wantSort string
	}{
		{name: "defaults", request: index.SearchRequest{}, wantPage: 1, wantSize: 100, wantSort: "timestamp"},
		{name: "zero page", request: index.SearchRequest{Page: 0, Size: 50}, wantPage: 1, wantSize: 50, wantSort: "timestamp"},
		{name: "size capped", request: index.SearchRequest{Page: 2, Size: 100000}, wantPage: 2, wantSize: 1000, wantSort: "timestamp"},
		{name: "explicit sort kept", request: index.SearchRequest{SortBy: "level"}, wantPage: 1, wantSize: 100, wantSort: "level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.request.Normalize()
			assert.Equal(t, tc.wantPage, tc.request.Page)
			assert.Equal(t, tc.wantSize, tc.request.Size)
			assert.Equal(t, tc.wantSort, tc.request.SortBy)
		})
	}
}

func TestSearchRequest_Offset(t *testing.T) {
	r := index.SearchRequest{Page: 100, Size: 100}
	r.Normalize()
	assert.Equal(t, uint64(9900), r.Offset())
}

func TestIndexName(t *testing.T) {
	assert.Equal(t, "logstream-logs-acme", index.IndexName("logstream-logs", "acme"))
}
