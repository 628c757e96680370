package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	actorID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(
			actorID, orderID, order.StatusDelivered, "J. Smith", "left at reception")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, actorID, cmd.ActorID())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, order.StatusDelivered, cmd.Target())
		assert.Equal(t, "J. Smith", cmd.ReceiverName())
		assert.Equal(t, "left at reception", cmd.Notes())
	})

	t.Run("rejects zero-value actor id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewUpdateOrderStatusCommand(zero, orderID, order.StatusConfirmed, "", "")

		require.Error(t, err)
	})

	t.Run("rejects zero-value order id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewUpdateOrderStatusCommand(actorID, zero, order.StatusConfirmed, "", "")

		require.Error(t, err)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(actorID, orderID, order.StatusUnknown, "", "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
