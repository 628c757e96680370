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

// ErrNotPermitted is returned when the acting user is unknown, deactivated,
// or lacks the role an operation demands.
var ErrNotPermitted = errors.New("actor is not permitted to perform this operation")

// Audit action names emitted by the command handlers.
const (
	AuditActionOrderStatusUpdate = "ORDER_STATUS_UPDATE"
	AuditActionAgentAssigned     = "AGENT_ASSIGNED"
)

// UpdateOrderStatusCommandHandler executes status transitions requested by
// staff and admins. It resolves the actor's tenant scope, consults the role
// transition table, and delegates the coupled status-plus-task write to the
// TaskOrchestrator inside one transaction.
//
// Error contract, in the order the checks run:
//
//	errs.ErrObjectNotFound    order missing or outside the actor's tenant
//	order.ErrInvalidTransition edge not allowed for this role and status
//	ErrNoOpenTask             completing edge with nothing to complete
//	ErrNotAssigned            completing someone else's task
//	task.ErrProofRequired     Delivered without a receiver name
//	task.ErrTaskAlreadyOpen   concurrent claim lost to the uniqueness guard
type UpdateOrderStatusCommandHandler struct {
	uowFactory   UoWFactory
	orchestrator TaskOrchestrator
	audit        ports.AuditLogger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	audit ports.AuditLogger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		orchestrator: NewTaskOrchestrator(),
		audit:        audit,
	}
}

// Handle processes a status transition request and returns the order in its
// post-transition state together with the task the transition opened or
// closed (nil for task-free edges), so callers observe the outcome of the
// committed transaction rather than re-reading.
// The audit event is emitted only after a successful commit; a failed
// transition leaves no trace beyond operational logs.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderStatusCommand,
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

	scope := tenancy.ResolveScope(ctx, act, userRepo)

	ord, err := uow.OrderRepository().Get(ctx, command.OrderID(), scope)
	if err != nil {
		return nil, nil, err
	}

	previous := ord.Status()
	if err = order.AllowedTransition(act.Role(), previous, command.Target()); err != nil {
		return nil, nil, err
	}

	ownership := order.RequiredOwnership(act.Role(), previous)

	affected, err := h.orchestrator.ApplyTransition(
		ctx, uow, ord, command.Target(), act.ID(), ownership,
		TransitionProof{
			ReceiverName: command.ReceiverName(),
			Notes:        command.Notes(),
		},
	)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	orderID := command.OrderID()
	entry := ports.AuditEntry{
		Action:    AuditActionOrderStatusUpdate,
		ActorID:   act.ID(),
		ActorRole: act.Role().String(),
		OrderID:   &orderID,
		Detail:    fmt.Sprintf("%s -> %s", previous, command.Target()),
		At:        time.Now().UTC(),
	}
	if affected != nil {
		agentID := affected.AgentID()
		entry.TargetID = &agentID
	}
	h.audit.Log(ctx, entry)

	return ord, affected, nil
}
