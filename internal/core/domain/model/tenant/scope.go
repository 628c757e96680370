// Package tenant contains the Scope value object that expresses a tenant
// visibility boundary.
//
// Every order belongs to exactly one tenant (the admin that owns the order's
// seller), and every read or write path must be constrained by a Scope. A
// Scope is one of three shapes:
//
//   - match-all: super admin, no filtering
//   - match-one: a single admin id, the normal case
//   - match-none: the actor's tenant could not be resolved; fail closed and
//     match zero rows rather than fall back to an unscoped query
//
// The match-none shape exists precisely so that an unresolved actor can never
// widen into a global query by omission.
package tenant

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrScopeIsNotConstructed is returned when a Scope was not created via one of
// the ScopeAll, ScopeAdmin, or ScopeNone constructors.
var ErrScopeIsNotConstructed = errors.New("Scope must be created via ScopeAll, ScopeAdmin, or ScopeNone")

// Scope is an immutable tenant visibility boundary.
// The zero value is invalid; it is deliberately distinct from ScopeNone so
// that forgetting to resolve a scope is a detectable bug rather than a silent
// empty result.
type Scope struct {
	all     bool
	adminID *kernel.UUID

	isConstructed bool
}

// ScopeAll creates a scope that matches every tenant. Only the super admin
// role resolves to this scope.
func ScopeAll() Scope {
	return Scope{all: true, isConstructed: true}
}

// ScopeAdmin creates a scope bounded to a single admin's tenant.
func ScopeAdmin(adminID kernel.UUID) (Scope, error) {
	if err := adminID.Validate(); err != nil {
		return Scope{}, err
	}
	return Scope{adminID: &adminID, isConstructed: true}, nil
}

// ScopeNone creates the fail-closed scope that matches zero rows.
func ScopeNone() Scope {
	return Scope{isConstructed: true}
}

// Validate ensures the Scope was created through a constructor.
func (s Scope) Validate() error {
	if !s.isConstructed {
		return ErrScopeIsNotConstructed
	}
	return nil
}

// MatchesAll reports whether the scope is unbounded.
func (s Scope) MatchesAll() bool {
	return s.all
}

// MatchesNone reports whether the scope is the fail-closed empty scope.
func (s Scope) MatchesNone() bool {
	return !s.all && s.adminID == nil
}

// AdminID returns the bounding admin id for a single-tenant scope, or nil for
// the match-all and match-none shapes.
func (s Scope) AdminID() *kernel.UUID {
	return s.adminID
}

// Matches reports whether data owned by the given admin is visible under this
// scope. Used for in-memory checks; repositories translate the scope into SQL
// predicates instead.
func (s Scope) Matches(adminID kernel.UUID) bool {
	if s.all {
		return true
	}
	if s.adminID == nil {
		return false
	}
	return s.adminID.IsEqual(adminID)
}
