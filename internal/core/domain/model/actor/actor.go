// Package actor contains the request-time Actor value object.
//
// An Actor is the authenticated identity attached to a single request. It is
// not persisted; it carries just enough of the corresponding User (id, role,
// creator link) for the transition table and tenant resolution to work without
// re-reading the user row on every check.
package actor

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies who is performing an operation and in which role.
// CreatedByID mirrors the user's creator link and may be nil; tenant
// resolution falls back to persistence in that case (see the tenancy
// resolver) and fails closed when the link cannot be recovered.
type Actor struct {
	id          kernel.UUID
	role        user.Role
	createdByID *kernel.UUID

	isConstructed bool
}

// NewActor creates an Actor with validation.
func NewActor(id kernel.UUID, role user.Role, createdByID *kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if createdByID != nil {
		if err := createdByID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:            id,
		role:          role,
		createdByID:   createdByID,
		isConstructed: true,
	}, nil
}

// ActorFromUser builds an Actor from a loaded User aggregate.
func ActorFromUser(u *user.User) (Actor, error) {
	if err := u.Validate(); err != nil {
		return Actor{}, err
	}
	return NewActor(u.ID(), u.Role(), u.CreatedByID())
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor holds for this request.
func (a Actor) Role() user.Role {
	return a.role
}

// CreatedByID returns the creator link carried from the user record, or nil.
func (a Actor) CreatedByID() *kernel.UUID {
	return a.createdByID
}

// IsPrivileged reports whether the actor bypasses the role transition table.
func (a Actor) IsPrivileged() bool {
	return a.role.IsPrivileged()
}
