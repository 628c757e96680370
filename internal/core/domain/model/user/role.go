package user

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role determines what a user may do: which status transitions it can request,
// whether it can assign agents, and how its tenant boundary is resolved.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleSuperAdmin is the platform operator. Exempt from tenant scoping and
	// from the role transition table.
	RoleSuperAdmin

	// RoleAdmin is a tenant root. Owns sellers and staff, bypasses the role
	// transition table within its own tenant.
	RoleAdmin

	// RoleIntakeReviewer reviews pending orders and confirms or cancels them.
	RoleIntakeReviewer

	// RolePackagingAgent claims confirmed orders for packaging and marks them packed.
	RolePackagingAgent

	// RoleDeliveryAgent takes packed orders out for delivery and records the outcome.
	RoleDeliveryAgent
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:        "Unknown",
		RoleSuperAdmin:     "SuperAdmin",
		RoleAdmin:          "Admin",
		RoleIntakeReviewer: "IntakeReviewer",
		RolePackagingAgent: "PackagingAgent",
		RoleDeliveryAgent:  "DeliveryAgent",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleSuperAdmin:     "SuperAdmin",
		RoleAdmin:          "Admin",
		RoleIntakeReviewer: "IntakeReviewer",
		RolePackagingAgent: "PackagingAgent",
		RoleDeliveryAgent:  "DeliveryAgent",
	}
}

// Validate checks that the Role is one of the defined values.
// RoleUnknown (0) and out-of-range values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// It implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsPrivileged reports whether the role bypasses the role transition table.
// Admin and super admin transitions are checked only against the structural
// status graph; this is a deliberate escape hatch, not a fallthrough.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
