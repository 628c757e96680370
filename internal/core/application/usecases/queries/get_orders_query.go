// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Every query carries the caller's resolved tenant scope. A match-none scope
// short-circuits to an empty result set without touching the database.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible inside a tenant scope.
//
// Example:
//
//	query, err := NewGetOrdersQuery(scope)
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	scope tenant.Scope

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query bounded to the given tenant scope.
func NewGetOrdersQuery(scope tenant.Scope) (GetOrdersQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Scope returns the tenant boundary applied to the listing.
func (q GetOrdersQuery) Scope() tenant.Scope {
	return q.scope
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is the order listing read model.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	TotalAmount  int64
	Status       order.Status
}
