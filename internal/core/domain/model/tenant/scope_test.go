package tenant_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeAll(t *testing.T) {
	s := tenant.ScopeAll()

	require.NoError(t, s.Validate())
	assert.True(t, s.MatchesAll())
	assert.False(t, s.MatchesNone())
	assert.Nil(t, s.AdminID())
	assert.True(t, s.Matches(kernel.NewUUID()))
}

func TestScopeAdmin(t *testing.T) {
	adminID := kernel.NewUUID()

	t.Run("matches only its own tenant", func(t *testing.T) {
		s, err := tenant.ScopeAdmin(adminID)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.False(t, s.MatchesAll())
		assert.False(t, s.MatchesNone())
		require.NotNil(t, s.AdminID())
		assert.True(t, s.Matches(adminID))
		assert.False(t, s.Matches(kernel.NewUUID()))
	})

	t.Run("rejects zero-value admin id", func(t *testing.T) {
		var id kernel.UUID
		_, err := tenant.ScopeAdmin(id)

		require.Error(t, err)
	})
}

func TestScopeNone(t *testing.T) {
	s := tenant.ScopeNone()

	require.NoError(t, s.Validate())
	assert.True(t, s.MatchesNone())
	assert.False(t, s.MatchesAll())
	assert.False(t, s.Matches(kernel.NewUUID()))
}

func TestScope_ZeroValueIsInvalid(t *testing.T) {
	var s tenant.Scope

	require.ErrorIs(t, s.Validate(), tenant.ErrScopeIsNotConstructed)
	// The zero value behaves like match-none if it ever slips through.
	assert.False(t, s.Matches(kernel.NewUUID()))
}
