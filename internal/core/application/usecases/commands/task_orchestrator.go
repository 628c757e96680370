package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNoOpenTask is returned when a completing transition finds no open
	// task for the order and stage.
	ErrNoOpenTask = errors.New("no open task exists for this order and stage")

	// ErrNotAssigned is returned when an agent tries to complete a stage
	// whose open task belongs to someone else.
	ErrNotAssigned = errors.New("task is assigned to a different agent")
)

// TransitionProof carries the delivery evidence attached to a completing
// transition. ReceiverName is mandatory for Delivered, ignored elsewhere.
type TransitionProof struct {
	ReceiverName string
	Notes        string
}

// TaskOrchestrator is the single writer that couples an order status change
// with its task side effect. Both mutation entry points (status updates and
// manager assignment) funnel through it so the pairing can never diverge.
//
// The orchestrator runs inside the caller's unit of work: the status change
// and the task write commit together or not at all. Opening a task relies on
// the storage uniqueness guard; a concurrent duplicate claim surfaces as
// task.ErrTaskAlreadyOpen from the repository and rolls the whole transition
// back.
type TaskOrchestrator struct{}

// NewTaskOrchestrator creates the orchestrator. It is stateless; all
// collaborators arrive per call through the unit of work.
func NewTaskOrchestrator() TaskOrchestrator {
	return TaskOrchestrator{}
}

// ApplyTransition moves the order to the target status and applies the task
// effect the edge demands:
//
//	Confirmed       -> InPackaging:    open a packaging task for agentID
//	InPackaging     -> Packed:         close the open packaging task
//	Packed          -> OutForDelivery: open a delivery task for agentID
//	OutForDelivery  -> Delivered:      close the open delivery task with proof
//	OutForDelivery  -> DeliveryFailed: close the open delivery task with notes
//	everything else:                   status change only
//
// agentID is the agent the effect applies to: the actor itself on a
// self-claim, the target agent on a manager assignment. ownership states
// whether the closing agent must own the open task; privileged callers pass
// OwnershipNone.
//
// Returns the task that was opened or closed, or nil for edges without a
// task effect. On any error the caller must roll back.
func (o TaskOrchestrator) ApplyTransition(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	to order.Status,
	agentID kernel.UUID,
	ownership order.OwnershipCheck,
	proof TransitionProof,
) (*task.Task, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	from := ord.Status()
	if err := ord.ChangeStatus(to); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var affected *task.Task

	switch {
	case from == order.StatusConfirmed && to == order.StatusInPackaging:
		opened, err := o.openTask(ctx, uow, ord, task.KindPackaging, agentID, now)
		if err != nil {
			return nil, err
		}
		affected = opened

	case from == order.StatusPacked && to == order.StatusOutForDelivery:
		opened, err := o.openTask(ctx, uow, ord, task.KindDelivery, agentID, now)
		if err != nil {
			return nil, err
		}
		affected = opened

	case from == order.StatusInPackaging && to == order.StatusPacked:
		closed, err := o.closeTask(ctx, uow, ord, task.KindPackaging, agentID, ownership,
			func(tsk *task.Task) error { return tsk.Complete(now) })
		if err != nil {
			return nil, err
		}
		affected = closed

	case from == order.StatusOutForDelivery && to == order.StatusDelivered:
		closed, err := o.closeTask(ctx, uow, ord, task.KindDelivery, agentID, ownership,
			func(tsk *task.Task) error {
				return tsk.CompleteDelivered(now, proof.ReceiverName, proof.Notes)
			})
		if err != nil {
			return nil, err
		}
		affected = closed

	case from == order.StatusOutForDelivery && to == order.StatusDeliveryFailed:
		closed, err := o.closeTask(ctx, uow, ord, task.KindDelivery, agentID, ownership,
			func(tsk *task.Task) error { return tsk.CompleteFailed(now, proof.Notes) })
		if err != nil {
			return nil, err
		}
		affected = closed
	}

	if err := uow.OrderRepository().Update(ctx, ord); err != nil {
		return nil, err
	}

	return affected, nil
}

func (o TaskOrchestrator) openTask(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	kind task.Kind,
	agentID kernel.UUID,
	now time.Time,
) (*task.Task, error) {
	opened, err := task.NewTask(kernel.NewUUID(), kind, ord.ID(), agentID, now)
	if err != nil {
		return nil, err
	}

	if err = uow.TaskRepository().Add(ctx, opened); err != nil {
		return nil, err
	}

	return opened, nil
}

func (o TaskOrchestrator) closeTask(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	kind task.Kind,
	agentID kernel.UUID,
	ownership order.OwnershipCheck,
	complete func(*task.Task) error,
) (*task.Task, error) {
	tsk, err := uow.TaskRepository().GetOpenByOrderAndKind(ctx, ord.ID(), kind)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOpenTask
	}
	if err != nil {
		return nil, err
	}

	if ownership != order.OwnershipNone && !tsk.IsAssignedTo(agentID) {
		return nil, ErrNotAssigned
	}

	if err = complete(tsk); err != nil {
		return nil, err
	}

	if err = uow.TaskRepository().Update(ctx, tsk); err != nil {
		return nil, err
	}

	return tsk, nil
}
