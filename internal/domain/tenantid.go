package domain

import "strings"

// TenantID is a normalized tenant identifier: lowercase, alphanumeric
// plus '-' and '_', at most 100 characters. Construct only via ParseTenantID.
type TenantID string

func ParseTenantID(value string) (TenantID, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptyTenantID
	}

	if len(value) > 100 {
		return "", ErrTenantIDTooLong
	}

	for _, c := range value {
		if !isTenantIDChar(c) {
			return "", ErrInvalidTenantID
		}
	}

	return TenantID(strings.ToLower(value)), nil
}

func (t TenantID) String() string {
	return string(t)
}

func isTenantIDChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
