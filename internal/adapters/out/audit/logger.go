// Package audit provides the slog-backed implementation of the audit trail.
//
// Entries are emitted to structured logs only; persistence and shipping are
// the logging pipeline's concern. Emission is best-effort and can never fail
// the business operation it describes.
package audit

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// SlogAuditLogger writes audit entries as structured log records.
type SlogAuditLogger struct {
	logger *slog.Logger
}

// NewSlogAuditLogger creates an audit logger on top of the given slog logger.
func NewSlogAuditLogger(logger *slog.Logger) *SlogAuditLogger {
	return &SlogAuditLogger{logger: logger.With("component", "audit")}
}

// Log emits one audit entry.
func (l *SlogAuditLogger) Log(ctx context.Context, entry ports.AuditEntry) {
	attrs := []any{
		slog.String("action", entry.Action),
		slog.String("actor_id", entry.ActorID.String()),
		slog.String("actor_role", entry.ActorRole),
		slog.String("detail", entry.Detail),
		slog.Time("at", entry.At),
	}
	if entry.OrderID != nil {
		attrs = append(attrs, slog.String("order_id", entry.OrderID.String()))
	}
	if entry.TargetID != nil {
		attrs = append(attrs, slog.String("target_id", entry.TargetID.String()))
	}

	l.logger.InfoContext(ctx, "audit", attrs...)
}
