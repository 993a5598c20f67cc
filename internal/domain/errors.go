package domain

import "fmt"

var (
	ErrEmptyTenantID      = fmt.Errorf("tenant id cannot be empty")
	ErrTenantIDTooLong    = fmt.Errorf("tenant id cannot exceed 100 characters")
	ErrInvalidTenantID    = fmt.Errorf("invalid tenant id format")
	ErrInvalidLogLevel    = fmt.Errorf("invalid log level")
	ErrEmptyApplication   = fmt.Errorf("application cannot be empty")
	ErrEmptyEnvironment   = fmt.Errorf("environment cannot be empty")
	ErrEmptyContent       = fmt.Errorf("log message content cannot be empty")
	ErrEmptyFormat        = fmt.Errorf("original format cannot be empty")
	ErrEmptyRawContent    = fmt.Errorf("raw content cannot be empty")
	ErrEmptyTenantName    = fmt.Errorf("tenant name cannot be empty")
	ErrEmptyAPIKey        = fmt.Errorf("api key cannot be empty")
	ErrInvalidLimits      = fmt.Errorf("tenant limits must be positive")
	ErrInvalidSubsWindow  = fmt.Errorf("subscription start must be before end")
)
