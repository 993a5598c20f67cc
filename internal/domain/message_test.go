package domain_test

import (
	"testing"

	"github.com/Egor213/LogStream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	_, err := domain.NewMessage("", "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	message, err := domain.NewMessage("hello", "", nil)
	require.NoError(t, err)
	assert.NotNil(t, message.Properties)
}

func TestMessage_FullMessage(t *testing.T) {
	testCases := []struct {
		name       string
		content    string
		properties map[string]any
		want       string
	}{
		{
			name:    "no properties",
			content: "plain message",
			want:    "plain message",
		},
		{
			name:       "token expansion",
			content:    "user {user} logged in from {ip}",
			properties: map[string]any{"user": "bob", "ip": "10.0.0.1"},
			want:       "user bob logged in from 10.0.0.1",
		},
		{
			name:       "nil property value",
			content:    "value is {v}",
			properties: map[string]any{"v": nil},
			want:       "value is null",
		},
		{
			name:       "missing token stays",
			content:    "value is {other}",
			properties: map[string]any{"v": 1},
			want:       "value is {other}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			message, err := domain.NewMessage(tc.content, "", tc.properties)
			require.NoError(t, err)
			assert.Equal(t, tc.want, message.FullMessage())
		})
	}
}

func TestMessage_ContainsKeyword(t *testing.T) {
	message, err := domain.NewMessage("Database timeout", "db {op} timed out", map[string]any{"op": "insert"})
	require.NoError(t, err)

	assert.True(t, message.ContainsKeyword("database"))
	assert.True(t, message.ContainsKeyword("TIMED"))
	assert.True(t, message.ContainsKeyword("insert"))
	assert.False(t, message.ContainsKeyword("redis"))
	assert.False(t, message.ContainsKeyword("  "))
}

func TestNewSource(t *testing.T) {
	_, err := domain.NewSource("", "prod", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyApplication)

	_, err = domain.NewSource("auth", " ", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyEnvironment)

	source, err := domain.NewSource(" auth ", " prod ", " web-1 ", "")
	require.NoError(t, err)
	assert.Equal(t, "auth", source.Application)
	assert.Equal(t, "web-1", source.Server)
}

func TestSource_Identifier(t *testing.T) {
	full, _ := domain.NewSource("auth", "prod", "web-1", "login")
	assert.Equal(t, "auth:prod:web-1:login", full.Identifier())

	partial, _ := domain.NewSource("auth", "prod", "", "")
	assert.Equal(t, "auth:prod:unknown:default", partial.Identifier())
}

func TestSource_Matches(t *testing.T) {
	source, _ := domain.NewSource("Auth", "Prod", "web-1", "")

	assert.True(t, source.Matches("auth", "", ""))
	assert.True(t, source.Matches("auth", "prod", "WEB-1"))
	assert.False(t, source.Matches("billing", "", ""))
	assert.False(t, source.Matches("auth", "staging", ""))
}
