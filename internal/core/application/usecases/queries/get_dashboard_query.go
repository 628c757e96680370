package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves per-status order counts and the number of open
// tasks inside a tenant scope. Backs the operational overview screen.
type GetDashboardQuery struct {
	scope tenant.Scope

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query bounded to the given tenant scope.
func NewGetDashboardQuery(scope tenant.Scope) (GetDashboardQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}

	return GetDashboardQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Scope returns the tenant boundary applied to the aggregation.
func (q GetDashboardQuery) Scope() tenant.Scope {
	return q.scope
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse aggregates the tenant's fulfillment workload.
type GetDashboardQueryResponse struct {
	OrdersByStatus map[order.Status]int64
	OpenTasks      int64
}
