// Package tenancy resolves the tenant scope of an acting user.
//
// The resolution rules:
//
//   - super admin: match-all scope
//   - admin: own id is the tenant boundary
//   - staff (reviewer, packaging agent, delivery agent): the admin that
//     created them; loaded from persistence when the request context did not
//     carry the creator link
//   - anything unresolved: fail-closed match-none scope, never an error
//
// Returning ScopeNone instead of an error keeps the calling code on one path:
// a scoped query that happens to match zero rows.
package tenancy

import (
	"context"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/core/domain/model/user"
)

// UserGetter is the narrow read the resolver needs when the actor does not
// carry its creator link. Satisfied by ports.UserRepository.
type UserGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

// ResolveScope maps an actor to its tenant visibility boundary.
// Persistence errors during the staff fallback degrade to ScopeNone; a
// transient read failure must narrow visibility, not widen it.
func ResolveScope(ctx context.Context, act actor.Actor, users UserGetter) tenant.Scope {
	if err := act.Validate(); err != nil {
		return tenant.ScopeNone()
	}

	switch act.Role() {
	case user.RoleSuperAdmin:
		return tenant.ScopeAll()

	case user.RoleAdmin:
		scope, err := tenant.ScopeAdmin(act.ID())
		if err != nil {
			return tenant.ScopeNone()
		}
		return scope

	case user.RoleIntakeReviewer, user.RolePackagingAgent, user.RoleDeliveryAgent:
		adminID := act.CreatedByID()
		if adminID == nil {
			loaded, err := users.Get(ctx, act.ID())
			if err != nil {
				return tenant.ScopeNone()
			}
			adminID = loaded.CreatedByID()
		}
		if adminID == nil {
			return tenant.ScopeNone()
		}
		scope, err := tenant.ScopeAdmin(*adminID)
		if err != nil {
			return tenant.ScopeNone()
		}
		return scope

	default:
		return tenant.ScopeNone()
	}
}
