package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a target status on behalf of an
// acting user. Whether the move is legal depends on the actor's role and the
// order's current status; the handler decides, the command only carries data.
//
// ReceiverName and Notes are delivery proof, meaningful only on the
// OutForDelivery -> Delivered and OutForDelivery -> DeliveryFailed edges.
type UpdateOrderStatusCommand struct {
	actorID      kernel.UUID
	orderID      kernel.UUID
	target       order.Status
	receiverName string
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated command.
func NewUpdateOrderStatusCommand(
	actorID, orderID kernel.UUID,
	target order.Status,
	receiverName, notes string,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		actorID.Validate(),
		orderID.Validate(),
		target.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actorID:      actorID,
		orderID:      orderID,
		target:       target,
		receiverName: receiverName,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ActorID returns the id of the user requesting the transition.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the id of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// ReceiverName returns the delivery proof receiver, if any.
func (c UpdateOrderStatusCommand) ReceiverName() string {
	return c.receiverName
}

// Notes returns free-form notes attached to the transition, if any.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}
