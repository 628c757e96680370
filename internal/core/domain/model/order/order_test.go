package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("J. Smith", "+15550100", "12 Main St")
	require.NoError(t, err)
	return customer
}

func TestNewOrder(t *testing.T) {
	sellerID := kernel.NewUUID()

	t.Run("creates valid order in pending review", func(t *testing.T) {
		id := kernel.NewUUID()
		ord, err := order.NewOrder(id, "ORD-2024-000123", sellerID, testCustomer(t), 14900)

		require.NoError(t, err)
		require.NoError(t, ord.Validate())
		assert.Equal(t, id, ord.ID())
		assert.Equal(t, "ORD-2024-000123", ord.Number())
		assert.Equal(t, sellerID, ord.SellerID())
		assert.Equal(t, int64(14900), ord.TotalAmount())
		assert.Equal(t, order.StatusPendingReview, ord.Status())
		assert.Equal(t, "J. Smith", ord.Customer().Name())
	})

	t.Run("allows zero total amount", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), ord.TotalAmount())
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", sellerID, testCustomer(t), 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order number")
	})

	t.Run("rejects negative total amount", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total amount")
	})

	t.Run("rejects zero-value seller id", func(t *testing.T) {
		var seller kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", seller, testCustomer(t), 100)

		require.Error(t, err)
	})

	t.Run("rejects unconstructed customer", func(t *testing.T) {
		var customer order.Customer
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, customer, 100)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrCustomerIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	sellerID := kernel.NewUUID()

	t.Run("restores order in arbitrary status", func(t *testing.T) {
		ord, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100, order.StatusOutForDelivery)

		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, ord.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100, order.StatusUnknown)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var ord order.Order

		require.ErrorIs(t, ord.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var ord *order.Order

		require.ErrorIs(t, ord.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	sellerID := kernel.NewUUID()

	t.Run("walks the full happy path", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100)
		require.NoError(t, err)

		for _, next := range []order.Status{
			order.StatusConfirmed,
			order.StatusInPackaging,
			order.StatusPacked,
			order.StatusOutForDelivery,
			order.StatusDelivered,
		} {
			require.NoError(t, ord.ChangeStatus(next))
			assert.Equal(t, next, ord.Status())
		}
	})

	t.Run("rejects structural violations and keeps status", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100)
		require.NoError(t, err)

		err = ord.ChangeStatus(order.StatusDelivered)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPendingReview, ord.Status())
	})

	t.Run("rejects transitions out of terminal states", func(t *testing.T) {
		ord, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100, order.StatusCancelled)
		require.NoError(t, err)

		err = ord.ChangeStatus(order.StatusConfirmed)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusCancelled, ord.Status())
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), "ORD-1", sellerID, testCustomer(t), 100)
		require.NoError(t, err)

		require.Error(t, ord.ChangeStatus(order.StatusUnknown))
		assert.Equal(t, order.StatusPendingReview, ord.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	sellerID := kernel.NewUUID()
	id := kernel.NewUUID()

	ord1, err := order.NewOrder(id, "ORD-1", sellerID, testCustomer(t), 100)
	require.NoError(t, err)
	ord2, err := order.NewOrder(id, "ORD-1-COPY", sellerID, testCustomer(t), 200)
	require.NoError(t, err)
	ord3, err := order.NewOrder(kernel.NewUUID(), "ORD-2", sellerID, testCustomer(t), 100)
	require.NoError(t, err)

	assert.True(t, ord1.IsEqual(ord2))
	assert.False(t, ord1.IsEqual(ord3))
	assert.False(t, ord1.IsEqual(nil))
}

func TestNewCustomer(t *testing.T) {
	t.Run("phone is optional", func(t *testing.T) {
		customer, err := order.NewCustomer("J. Smith", "", "12 Main St")

		require.NoError(t, err)
		assert.Empty(t, customer.Phone())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := order.NewCustomer("", "+15550100", "12 Main St")

		require.Error(t, err)
	})

	t.Run("address is required", func(t *testing.T) {
		_, err := order.NewCustomer("J. Smith", "+15550100", "")

		require.Error(t, err)
	})
}
