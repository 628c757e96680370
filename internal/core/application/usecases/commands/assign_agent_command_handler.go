package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/application/tenancy"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrInvalidAgent is returned when the target agent does not exist, is
// deactivated, holds the wrong role for the stage, or belongs to another
// tenant.
var ErrInvalidAgent = errors.New("agent is not eligible for this assignment")

// AssignAgentCommandHandler executes manager-driven pre-assignment. Only
// admins and the super admin may assign; the target agent must be an active
// agent of the matching role inside the manager's tenant.
//
// The assignment reuses the TaskOrchestrator, so it advances the order status
// (Confirmed -> InPackaging or Packed -> OutForDelivery) and opens the task
// in the same transaction, exactly like a self-claim would.
type AssignAgentCommandHandler struct {
	uowFactory   UoWFactory
	orchestrator TaskOrchestrator
	audit        ports.AuditLogger
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	audit ports.AuditLogger,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory:   uowFactory,
		orchestrator: NewTaskOrchestrator(),
		audit:        audit,
	}
}

// Handle processes an assignment request and returns the advanced order with
// the task that was opened for the agent.
// Returns ErrNotPermitted for non-manager callers, errs.ErrObjectNotFound
// for orders outside the caller's tenant, order.ErrInvalidTransition when
// the order is not awaiting a stage, ErrInvalidAgent for ineligible targets,
// and task.ErrTaskAlreadyOpen when the stage was claimed concurrently.
func (h AssignAgentCommandHandler) Handle(
	ctx context.Context,
	command AssignAgentCommand,
) (*order.Order, *task.Task, error) {
	if err := command.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	actingUser, err := userRepo.Get(ctx, command.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, ErrNotPermitted
	}
	if err != nil {
		return nil, nil, err
	}
	if !actingUser.IsActive() {
		return nil, nil, ErrNotPermitted
	}

	act, err := actor.ActorFromUser(actingUser)
	if err != nil {
		return nil, nil, err
	}
	if !act.IsPrivileged() {
		return nil, nil, ErrNotPermitted
	}

	scope := tenancy.ResolveScope(ctx, act, userRepo)

	ord, err := uow.OrderRepository().Get(ctx, command.OrderID(), scope)
	if err != nil {
		return nil, nil, err
	}

	var target order.Status
	var kind task.Kind
	switch ord.Status() {
	case order.StatusConfirmed:
		target, kind = order.StatusInPackaging, task.KindPackaging
	case order.StatusPacked:
		target, kind = order.StatusOutForDelivery, task.KindDelivery
	default:
		return nil, nil, fmt.Errorf("order in status %s is not awaiting assignment: %w",
			ord.Status(), order.ErrInvalidTransition)
	}

	agent, err := userRepo.Get(ctx, command.AgentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, ErrInvalidAgent
	}
	if err != nil {
		return nil, nil, err
	}

	if agent.Role() != kind.RequiredAgentRole() || !agent.IsActive() {
		return nil, nil, ErrInvalidAgent
	}
	if agent.CreatedByID() == nil || !scope.Matches(*agent.CreatedByID()) {
		return nil, nil, ErrInvalidAgent
	}

	opened, err := h.orchestrator.ApplyTransition(
		ctx, uow, ord, target, agent.ID(), order.OwnershipNone, TransitionProof{},
	)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	orderID := command.OrderID()
	agentID := agent.ID()
	h.audit.Log(ctx, ports.AuditEntry{
		Action:    AuditActionAgentAssigned,
		ActorID:   act.ID(),
		ActorRole: act.Role().String(),
		OrderID:   &orderID,
		TargetID:  &agentID,
		Detail:    fmt.Sprintf("%s assignment, order advanced to %s", kind, target),
		At:        time.Now().UTC(),
	})

	return ord, opened, nil
}
