package user

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents a staff member or admin account.
//
// Invariants:
//   - Must have a valid unique identifier and a valid role
//   - Name is required
//   - CreatedByID links staff to the admin that created them; it is nil for
//     admins and super admins, which are their own tenant root
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id          kernel.UUID
	name        string
	role        Role
	createdByID *kernel.UUID
	active      bool

	isConstructed bool
}

// NewUser creates a new active User with validation. Staff roles should carry
// the creating admin's id in createdByID; passing nil for a staff role is
// permitted for legacy accounts but leaves the user tenant-unresolvable until
// backfilled (such users match zero rows under tenant scoping).
func NewUser(id kernel.UUID, name string, role Role, createdByID *kernel.UUID) (*User, error) {
	u := &User{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
		u.setCreatedByID(createdByID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence, including its active flag.
func RestoreUser(id kernel.UUID, name string, role Role, createdByID *kernel.UUID, active bool) (*User, error) {
	u, err := NewUser(id, name, role, createdByID)
	if err != nil {
		return nil, err
	}

	u.active = active
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CreatedByID returns the id of the admin that created this user,
// or nil when the user is its own tenant root (admin, super admin)
// or a legacy account with no link.
func (u *User) CreatedByID() *kernel.UUID {
	return u.createdByID
}

// IsActive reports whether the account may be assigned work.
func (u *User) IsActive() bool {
	return u.active
}

// Deactivate marks the account as inactive. Inactive agents are rejected as
// assignment targets but keep their historical tasks.
func (u *User) Deactivate() {
	u.active = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCreatedByID(createdByID *kernel.UUID) error {
	if createdByID != nil {
		if err := createdByID.Validate(); err != nil {
			return err
		}
	}
	u.createdByID = createdByID
	return nil
}
