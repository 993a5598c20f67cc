package service

import "fmt"

var (
	ErrTenantNotFound      = fmt.Errorf("tenant not found")
	ErrTenantAlreadyExists = fmt.Errorf("tenant already exists")
	ErrTenantCannotIngest  = fmt.Errorf("tenant cannot ingest logs")
	ErrCannotCreateLog     = fmt.Errorf("cannot create log entry")
	ErrCannotSearch        = fmt.Errorf("cannot execute search")
	ErrCannotUpdateTenant  = fmt.Errorf("cannot update tenant")
)
