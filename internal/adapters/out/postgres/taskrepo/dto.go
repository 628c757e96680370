// Package taskrepo provides data transfer objects and mapping functions for task persistence.
//
// The table carries the system's one concurrency-critical constraint: a
// partial unique index over (order_id, kind) restricted to rows where
// completed_at IS NULL. Two concurrent claims for the same stage both reach
// INSERT; the database lets exactly one through and the loser surfaces as
// task.ErrTaskAlreadyOpen.
package taskrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tasks_one_open_per_stage,where:completed_at IS NULL"`
	Kind         int        `gorm:"not null;uniqueIndex:idx_tasks_one_open_per_stage,where:completed_at IS NULL"`
	AgentID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	AssignedAt   time.Time  `gorm:"not null"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ReceiverName string
	Notes        string
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// fromDomain converts a task domain aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	return TaskDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		Kind:         int(aggregate.Kind()),
		AgentID:      aggregate.AgentID().Bytes(),
		AssignedAt:   aggregate.AssignedAt(),
		StartedAt:    aggregate.StartedAt(),
		CompletedAt:  aggregate.CompletedAt(),
		ReceiverName: aggregate.ReceiverName(),
		Notes:        aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a task domain aggregate using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(
		id,
		task.Kind(dto.Kind),
		orderID,
		agentID,
		dto.AssignedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.ReceiverName,
		dto.Notes,
	)
}
