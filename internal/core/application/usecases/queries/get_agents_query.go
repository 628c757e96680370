package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAgentsQueryIsNotConstructed = errors.New(
	"GetAgentsQuery must be created via NewGetAgentsQuery constructor",
)

// GetAgentsQuery retrieves the packaging and delivery agents visible inside
// a tenant scope. Used by managers when choosing an assignment target.
type GetAgentsQuery struct {
	scope tenant.Scope

	guard guard.ConstructorGuard
}

// NewGetAgentsQuery creates a query bounded to the given tenant scope.
func NewGetAgentsQuery(scope tenant.Scope) (GetAgentsQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetAgentsQuery{}, err
	}

	return GetAgentsQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Scope returns the tenant boundary applied to the listing.
func (q GetAgentsQuery) Scope() tenant.Scope {
	return q.scope
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentsQueryIsNotConstructed if validation fails.
func (q GetAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentsQueryIsNotConstructed)
}

// GetAgentsQueryResponse is the agent listing read model.
type GetAgentsQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Role   user.Role
	Active bool
}
