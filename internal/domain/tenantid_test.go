package domain_test

import (
	"strings"
	"testing"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseTenantID(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    domain.TenantID
		wantErr error
	}{
		{name: "lowercased", input: "Foo-1", want: "foo-1"},
		{name: "already normalized", input: "acme", want: "acme"},
		{name: "underscore allowed", input: "acme_corp", want: "acme_corp"},
		{name: "embedded space", input: "acme corp", wantErr: domain.ErrInvalidTenantID},
		{name: "at sign", input: "acme@corp", wantErr: domain.ErrInvalidTenantID},
		{name: "empty", input: "", wantErr: domain.ErrEmptyTenantID},
		{name: "blank", input: "   ", wantErr: domain.ErrEmptyTenantID},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: domain.ErrTenantIDTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParseTenantID(tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTenantID_NormalizationIsIdempotent(t *testing.T) {
	first, err := domain.ParseTenantID("Foo-1")
	assert.NoError(t, err)

	second, err := domain.ParseTenantID(first.String())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
