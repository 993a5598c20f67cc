package notifier

import (
	"context"
	"time"

	"github.com/Egor213/LogStream/internal/domain"
)

// AlertNotification is the delivery contract for operational alerts.
type AlertNotification struct {
	TenantID  domain.TenantID `json:"tenant_id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Severity  string          `json:"severity"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// Notifier delivers notifications best-effort: callers log failures and
// never let them block a scan loop.
type Notifier interface {
	Send(ctx context.Context, notification AlertNotification) error
}
