package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignAgentCommand(t *testing.T) {
	actorID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewAssignAgentCommand(actorID, orderID, agentID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, actorID, cmd.ActorID())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, agentID, cmd.AgentID())
	})

	t.Run("rejects zero-value ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewAssignAgentCommand(zero, orderID, agentID)
		require.Error(t, err)

		_, err = commands.NewAssignAgentCommand(actorID, zero, agentID)
		require.Error(t, err)

		_, err = commands.NewAssignAgentCommand(actorID, orderID, zero)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignAgentCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignAgentCommandIsNotConstructed)
	})
}
