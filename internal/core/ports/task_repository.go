package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates.
//
// Storage enforces at most one open task per (order, kind) via a partial
// unique constraint. Add surfaces a violation as a typed conflict error so
// concurrent claims lose cleanly instead of racing.
type TaskRepository interface {
	// Add persists a new task aggregate to storage.
	// Returns a conflict error when an open task for the same order and kind
	// already exists.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task aggregate.
	Update(ctx context.Context, aggregate *task.Task) error

	// GetOpenByOrderAndKind retrieves the open task for an order and stage,
	// or a not-found error when none is open.
	GetOpenByOrderAndKind(ctx context.Context, orderID kernel.UUID, kind task.Kind) (*task.Task, error)
}
