package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand pre-assigns a specific agent to an order's next
// fulfillment stage on behalf of a manager. The stage is implied by the
// order's current status: Confirmed orders get a packaging assignment,
// Packed orders a delivery assignment.
type AssignAgentCommand struct {
	actorID kernel.UUID
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a validated command.
func NewAssignAgentCommand(actorID, orderID, agentID kernel.UUID) (AssignAgentCommand, error) {
	if err := errors.Join(
		actorID.Validate(),
		orderID.Validate(),
		agentID.Validate(),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		actorID: actorID,
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ActorID returns the id of the manager requesting the assignment.
func (c AssignAgentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the id of the order to assign.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the id of the agent receiving the task.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}
