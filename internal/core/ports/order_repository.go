// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tenant"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read is tenant-scoped: an order outside the caller's scope is
// indistinguishable from a missing one.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, limited to
	// the given tenant scope. Returns a not-found error both when the order
	// does not exist and when it belongs to another tenant.
	Get(ctx context.Context, id kernel.UUID, scope tenant.Scope) (*order.Order, error)
}
