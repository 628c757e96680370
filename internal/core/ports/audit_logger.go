package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditEntry captures one security-relevant action for the audit trail.
type AuditEntry struct {
	Action    string
	ActorID   kernel.UUID
	ActorRole string
	OrderID   *kernel.UUID
	TargetID  *kernel.UUID
	Detail    string
	At        time.Time
}

// AuditLogger records audit entries. Implementations must not fail the
// business operation: recording happens after commit and errors are swallowed
// into operational logs.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry)
}
