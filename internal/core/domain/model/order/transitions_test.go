package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedTransition_RoleTable(t *testing.T) {
	testCases := []struct {
		name    string
		role    user.Role
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"reviewer confirms", user.RoleIntakeReviewer, order.StatusPendingReview, order.StatusConfirmed, true},
		{"reviewer cancels", user.RoleIntakeReviewer, order.StatusPendingReview, order.StatusCancelled, true},
		{"reviewer cannot pack", user.RoleIntakeReviewer, order.StatusConfirmed, order.StatusInPackaging, false},
		{"reviewer cannot deliver", user.RoleIntakeReviewer, order.StatusOutForDelivery, order.StatusDelivered, false},

		{"packer claims", user.RolePackagingAgent, order.StatusConfirmed, order.StatusInPackaging, true},
		{"packer finishes", user.RolePackagingAgent, order.StatusInPackaging, order.StatusPacked, true},
		{"packer cannot confirm", user.RolePackagingAgent, order.StatusPendingReview, order.StatusConfirmed, false},
		{"packer cannot ship", user.RolePackagingAgent, order.StatusPacked, order.StatusOutForDelivery, false},

		{"courier claims", user.RoleDeliveryAgent, order.StatusPacked, order.StatusOutForDelivery, true},
		{"courier delivers", user.RoleDeliveryAgent, order.StatusOutForDelivery, order.StatusDelivered, true},
		{"courier records failure", user.RoleDeliveryAgent, order.StatusOutForDelivery, order.StatusDeliveryFailed, true},
		{"courier cannot pack", user.RoleDeliveryAgent, order.StatusConfirmed, order.StatusInPackaging, false},

		{"unknown role allowed nothing", user.RoleUnknown, order.StatusPendingReview, order.StatusConfirmed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := order.AllowedTransition(tc.role, tc.from, tc.to)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			}
		})
	}
}

func TestAllowedTransition_PrivilegedOverride(t *testing.T) {
	for _, role := range []user.Role{user.RoleAdmin, user.RoleSuperAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			// Any structurally valid edge is allowed.
			require.NoError(t, order.AllowedTransition(role, order.StatusPendingReview, order.StatusCancelled))
			require.NoError(t, order.AllowedTransition(role, order.StatusConfirmed, order.StatusInPackaging))
			require.NoError(t, order.AllowedTransition(role, order.StatusOutForDelivery, order.StatusDeliveryFailed))

			// The override does not extend past the structural graph.
			require.ErrorIs(t,
				order.AllowedTransition(role, order.StatusPendingReview, order.StatusDelivered),
				order.ErrInvalidTransition)
			require.ErrorIs(t,
				order.AllowedTransition(role, order.StatusDelivered, order.StatusPendingReview),
				order.ErrInvalidTransition)
		})
	}
}

func TestRequiredOwnership(t *testing.T) {
	testCases := []struct {
		name     string
		role     user.Role
		from     order.Status
		expected order.OwnershipCheck
	}{
		{"packer claiming has no precondition", user.RolePackagingAgent, order.StatusConfirmed, order.OwnershipNone},
		{"packer finishing must own the task", user.RolePackagingAgent, order.StatusInPackaging, order.OwnershipPackagingAssignee},
		{"courier claiming has no precondition", user.RoleDeliveryAgent, order.StatusPacked, order.OwnershipNone},
		{"courier completing must own the task", user.RoleDeliveryAgent, order.StatusOutForDelivery, order.OwnershipDeliveryAssignee},
		{"reviewer has no preconditions", user.RoleIntakeReviewer, order.StatusPendingReview, order.OwnershipNone},
		{"admin bypasses preconditions", user.RoleAdmin, order.StatusInPackaging, order.OwnershipNone},
		{"super admin bypasses preconditions", user.RoleSuperAdmin, order.StatusOutForDelivery, order.OwnershipNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.RequiredOwnership(tc.role, tc.from))
		})
	}
}
