// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// created_by_id links staff to their owning admin and is the column tenant
// resolution and agent listings filter on.
type UserDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"not null"`
	Role        int        `gorm:"index;not null"`
	CreatedByID *uuid.UUID `gorm:"type:uuid;index"`
	Active      bool       `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	var createdByID *uuid.UUID
	if id := aggregate.CreatedByID(); id != nil {
		raw := id.Bytes()
		createdByID = &raw
	}

	return UserDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Role:        int(aggregate.Role()),
		CreatedByID: createdByID,
		Active:      aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var createdByID *kernel.UUID
	if dto.CreatedByID != nil {
		cID, creatorErr := kernel.UUIDFromBytes((*dto.CreatedByID)[:])
		if creatorErr != nil {
			return nil, creatorErr
		}

		createdByID = &cID
	}

	return user.RestoreUser(id, dto.Name, user.Role(dto.Role), createdByID, dto.Active)
}
