package tenancy_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/tenancy"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserGetter struct{ mock.Mock }

func (m *MockUserGetter) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func mustActor(t *testing.T, role user.Role, createdByID *kernel.UUID) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(kernel.NewUUID(), role, createdByID)
	require.NoError(t, err)
	return act
}

func TestResolveScope_SuperAdmin(t *testing.T) {
	act := mustActor(t, user.RoleSuperAdmin, nil)
	users := new(MockUserGetter)

	scope := tenancy.ResolveScope(t.Context(), act, users)

	assert.True(t, scope.MatchesAll())
	users.AssertNotCalled(t, "Get")
}

func TestResolveScope_AdminIsOwnTenant(t *testing.T) {
	act := mustActor(t, user.RoleAdmin, nil)
	users := new(MockUserGetter)

	scope := tenancy.ResolveScope(t.Context(), act, users)

	require.NotNil(t, scope.AdminID())
	assert.True(t, scope.Matches(act.ID()))
	assert.False(t, scope.Matches(kernel.NewUUID()))
	users.AssertNotCalled(t, "Get")
}

func TestResolveScope_StaffUsesCreatorLink(t *testing.T) {
	adminID := kernel.NewUUID()
	users := new(MockUserGetter)

	for _, role := range []user.Role{
		user.RoleIntakeReviewer,
		user.RolePackagingAgent,
		user.RoleDeliveryAgent,
	} {
		t.Run(role.String(), func(t *testing.T) {
			act := mustActor(t, role, &adminID)

			scope := tenancy.ResolveScope(t.Context(), act, users)

			assert.True(t, scope.Matches(adminID))
			assert.False(t, scope.MatchesAll())
		})
	}
	users.AssertNotCalled(t, "Get")
}

func TestResolveScope_StaffFallsBackToPersistence(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	act := mustActor(t, user.RolePackagingAgent, nil)

	stored, err := user.RestoreUser(act.ID(), "Packer", user.RolePackagingAgent, &adminID, true)
	require.NoError(t, err)

	users := new(MockUserGetter)
	users.On("Get", ctx, act.ID()).Return(stored, nil).Once()

	scope := tenancy.ResolveScope(ctx, act, users)

	assert.True(t, scope.Matches(adminID))
	users.AssertExpectations(t)
}

func TestResolveScope_FailsClosed(t *testing.T) {
	ctx := t.Context()

	t.Run("unconstructed actor", func(t *testing.T) {
		var act actor.Actor
		scope := tenancy.ResolveScope(ctx, act, new(MockUserGetter))

		assert.True(t, scope.MatchesNone())
	})

	t.Run("persistence error during fallback", func(t *testing.T) {
		act := mustActor(t, user.RoleDeliveryAgent, nil)
		users := new(MockUserGetter)
		users.On("Get", ctx, act.ID()).Return(nil, errors.New("database error")).Once()

		scope := tenancy.ResolveScope(ctx, act, users)

		assert.True(t, scope.MatchesNone())
	})

	t.Run("staff with no creator link anywhere", func(t *testing.T) {
		act := mustActor(t, user.RoleIntakeReviewer, nil)
		stored, err := user.RestoreUser(act.ID(), "Reviewer", user.RoleIntakeReviewer, nil, true)
		require.NoError(t, err)

		users := new(MockUserGetter)
		users.On("Get", ctx, act.ID()).Return(stored, nil).Once()

		scope := tenancy.ResolveScope(ctx, act, users)

		assert.True(t, scope.MatchesNone())
	})
}
