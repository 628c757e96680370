package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/user"
)

// ErrInvalidTransition is returned when a requested status change is not
// permitted: either the (role, from, to) triple is absent from the role
// transition table, or - for privileged actors - the structural graph has no
// such edge. It is distinct from ownership failures so callers can map the
// two to different responses.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// OwnershipCheck names the precondition a transition places on the actor's
// relationship to the order's open task.
type OwnershipCheck int

const (
	// OwnershipNone means the transition has no ownership precondition.
	OwnershipNone OwnershipCheck = iota

	// OwnershipPackagingAssignee requires the actor to be the agent of the
	// order's open packaging task.
	OwnershipPackagingAssignee

	// OwnershipDeliveryAssignee requires the actor to be the agent of the
	// order's open delivery task.
	OwnershipDeliveryAssignee
)

// transitionRule describes what one role may do from one status: the set of
// reachable statuses and the ownership precondition, if any.
type transitionRule struct {
	targets   []Status
	ownership OwnershipCheck
}

// getRoleTransitions returns the declarative role transition table. Adding a
// role or a status is a data change here, not a new code branch. Privileged
// roles are deliberately absent: they bypass this table (see Allowed).
func getRoleTransitions() map[user.Role]map[Status]transitionRule {
	return map[user.Role]map[Status]transitionRule{
		user.RoleIntakeReviewer: {
			StatusPendingReview: {targets: []Status{StatusConfirmed, StatusCancelled}},
		},
		user.RolePackagingAgent: {
			StatusConfirmed:   {targets: []Status{StatusInPackaging}},
			StatusInPackaging: {targets: []Status{StatusPacked}, ownership: OwnershipPackagingAssignee},
		},
		user.RoleDeliveryAgent: {
			StatusPacked:         {targets: []Status{StatusOutForDelivery}},
			StatusOutForDelivery: {targets: []Status{StatusDelivered, StatusDeliveryFailed}, ownership: OwnershipDeliveryAssignee},
		},
	}
}

// AllowedTransition checks whether the given role may move an order from one
// status to another.
//
// Privileged roles (admin, super admin) are checked only against the
// structural status graph - the explicit privileged override. All other roles
// must have the exact (role, from, to) triple in the role transition table,
// which itself only contains structurally valid edges.
//
// Returns nil when the transition is allowed, ErrInvalidTransition otherwise.
func AllowedTransition(role user.Role, from, to Status) error {
	if role.IsPrivileged() {
		if !from.CanTransitionTo(to) {
			return ErrInvalidTransition
		}
		return nil
	}

	rule, ok := getRoleTransitions()[role][from]
	if !ok {
		return ErrInvalidTransition
	}

	for _, target := range rule.targets {
		if target == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

// RequiredOwnership returns the ownership precondition the given role carries
// when transitioning an order out of the given status, or OwnershipNone.
// Privileged roles never carry ownership preconditions.
func RequiredOwnership(role user.Role, from Status) OwnershipCheck {
	if role.IsPrivileged() {
		return OwnershipNone
	}
	return getRoleTransitions()[role][from].ownership
}
