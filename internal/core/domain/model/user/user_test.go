package user_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	adminID := kernel.NewUUID()

	t.Run("creates valid staff user", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, "Packing Pete", user.RolePackagingAgent, &adminID)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, id, u.ID())
		assert.Equal(t, "Packing Pete", u.Name())
		assert.Equal(t, user.RolePackagingAgent, u.Role())
		require.NotNil(t, u.CreatedByID())
		assert.True(t, u.CreatedByID().IsEqual(adminID))
		assert.True(t, u.IsActive())
	})

	t.Run("creates admin without creator link", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Tenant Root", user.RoleAdmin, nil)

		require.NoError(t, err)
		assert.Nil(t, u.CreatedByID())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", user.RoleAdmin, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Nobody", user.RoleUnknown, nil)

		require.Error(t, err)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		var id kernel.UUID
		_, err := user.NewUser(id, "Nobody", user.RoleAdmin, nil)

		require.Error(t, err)
	})

	t.Run("rejects zero-value creator id", func(t *testing.T) {
		var creator kernel.UUID
		_, err := user.NewUser(kernel.NewUUID(), "Nobody", user.RoleDeliveryAgent, &creator)

		require.Error(t, err)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("restores inactive user", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Former Agent", user.RoleDeliveryAgent, nil, false)

		require.NoError(t, err)
		assert.False(t, u.IsActive())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil user fails validation", func(t *testing.T) {
		var u *user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_Deactivate(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Agent", user.RoleDeliveryAgent, nil)
	require.NoError(t, err)

	u.Deactivate()

	assert.False(t, u.IsActive())
}

func TestRole_Validate(t *testing.T) {
	valid := []user.Role{
		user.RoleSuperAdmin,
		user.RoleAdmin,
		user.RoleIntakeReviewer,
		user.RolePackagingAgent,
		user.RoleDeliveryAgent,
	}
	for _, r := range valid {
		assert.NoError(t, r.Validate(), r.String())
	}

	assert.Error(t, user.RoleUnknown.Validate())
	assert.Error(t, user.Role(99).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "PackagingAgent", user.RolePackagingAgent.String())
	assert.Equal(t, "Unknown", user.Role(99).String())
}

func TestRole_IsPrivileged(t *testing.T) {
	assert.True(t, user.RoleAdmin.IsPrivileged())
	assert.True(t, user.RoleSuperAdmin.IsPrivileged())
	assert.False(t, user.RoleIntakeReviewer.IsPrivileged())
	assert.False(t, user.RolePackagingAgent.IsPrivileged())
	assert.False(t, user.RoleDeliveryAgent.IsPrivileged())
}
