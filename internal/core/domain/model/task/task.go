package task

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created
	// through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")

	// ErrTaskAlreadyCompleted is returned when completing a task that is no
	// longer open.
	ErrTaskAlreadyCompleted = errors.New("task is already completed")

	// ErrProofRequired is returned when a delivery task is completed as
	// delivered without a receiver name.
	ErrProofRequired = errors.New("receiver name is required to complete a delivery")

	// ErrKindMismatch is returned when a completion method is called on a task
	// of the wrong kind.
	ErrKindMismatch = errors.New("operation does not match the task kind")

	// ErrTaskAlreadyOpen is returned when opening a task for an order and
	// stage that already have one. Raised by the storage layer, which owns
	// the uniqueness constraint.
	ErrTaskAlreadyOpen = errors.New("an open task already exists for this order and stage")
)

// Task represents one agent's claim on one fulfillment stage of one order.
//
// Invariants:
//   - Belongs to exactly one order and exactly one agent
//   - CompletedAt is nil while the task is open and set exactly once
//   - Delivery tasks completed as delivered carry a receiver name
//   - StartedAt is set for delivery tasks only (the moment the courier left)
//   - Can only be created through NewTask or RestoreTask
type Task struct {
	id           kernel.UUID
	kind         Kind
	orderID      kernel.UUID
	agentID      kernel.UUID
	assignedAt   time.Time
	startedAt    *time.Time
	completedAt  *time.Time
	receiverName string
	notes        string

	isConstructed bool
}

// NewTask creates a new open Task with validation. Delivery tasks record
// assignedAt as their startedAt: the stage begins the moment it is claimed.
func NewTask(id kernel.UUID, kind Kind, orderID, agentID kernel.UUID, assignedAt time.Time) (*Task, error) {
	t := &Task{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setKind(kind),
		t.setOrderID(orderID),
		t.setAgentID(agentID),
		t.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	if kind == KindDelivery {
		started := assignedAt
		t.startedAt = &started
	}

	return t, nil
}

// RestoreTask reconstructs a Task from persistence, including completion state.
func RestoreTask(
	id kernel.UUID,
	kind Kind,
	orderID, agentID kernel.UUID,
	assignedAt time.Time,
	startedAt, completedAt *time.Time,
	receiverName, notes string,
) (*Task, error) {
	t, err := NewTask(id, kind, orderID, agentID, assignedAt)
	if err != nil {
		return nil, err
	}

	t.startedAt = startedAt
	t.completedAt = completedAt
	t.receiverName = receiverName
	t.notes = notes

	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}

	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Kind returns the fulfillment stage this task represents.
func (t *Task) Kind() Kind {
	return t.kind
}

// OrderID returns the identifier of the order this task belongs to.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// AgentID returns the identifier of the assigned agent.
func (t *Task) AgentID() kernel.UUID {
	return t.agentID
}

// AssignedAt returns when the task was created.
func (t *Task) AssignedAt() time.Time {
	return t.assignedAt
}

// StartedAt returns when the stage began, or nil for packaging tasks.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when the task was closed, or nil while it is open.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// ReceiverName returns the delivery proof recorded on completion.
func (t *Task) ReceiverName() string {
	return t.receiverName
}

// Notes returns free-form notes recorded on completion.
func (t *Task) Notes() string {
	return t.notes
}

// IsOpen reports whether the task has not been completed yet.
func (t *Task) IsOpen() bool {
	return t.completedAt == nil
}

// IsAssignedTo reports whether the given agent owns this task.
func (t *Task) IsAssignedTo(agentID kernel.UUID) bool {
	return t.agentID.IsEqual(agentID)
}

// Complete closes a packaging task.
// Returns ErrKindMismatch for delivery tasks and ErrTaskAlreadyCompleted if
// the task is no longer open.
func (t *Task) Complete(at time.Time) error {
	if t.kind != KindPackaging {
		return ErrKindMismatch
	}
	if !t.IsOpen() {
		return ErrTaskAlreadyCompleted
	}

	completed := at
	t.completedAt = &completed
	return nil
}

// CompleteDelivered closes a delivery task with proof of handover.
// The receiver name is mandatory; notes are optional.
func (t *Task) CompleteDelivered(at time.Time, receiverName, notes string) error {
	if t.kind != KindDelivery {
		return ErrKindMismatch
	}
	if !t.IsOpen() {
		return ErrTaskAlreadyCompleted
	}
	if receiverName == "" {
		return ErrProofRequired
	}

	completed := at
	t.completedAt = &completed
	t.receiverName = receiverName
	t.notes = notes
	return nil
}

// CompleteFailed closes a delivery task after a failed attempt.
// No receiver proof is required; notes describe what happened.
func (t *Task) CompleteFailed(at time.Time, notes string) error {
	if t.kind != KindDelivery {
		return ErrKindMismatch
	}
	if !t.IsOpen() {
		return ErrTaskAlreadyCompleted
	}

	completed := at
	t.completedAt = &completed
	t.notes = notes
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	t.kind = kind
	return nil
}

func (t *Task) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Task) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	t.agentID = agentID
	return nil
}

func (t *Task) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	t.assignedAt = assignedAt
	return nil
}
