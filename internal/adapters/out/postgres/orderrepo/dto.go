// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer snapshot is embedded; the tenant boundary is reachable through
// the seller row (sellers.admin_id). CreatedAt and UpdatedAt are maintained by
// GORM; updates must not write CreatedAt (see GormOrderRepository.Update).
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number      string      `gorm:"uniqueIndex;not null"`
	SellerID    uuid.UUID   `gorm:"type:uuid;index;not null"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	TotalAmount int64
	Status      int `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer snapshot within the order table.
// Captured at intake time and immutable afterwards.
type CustomerDTO struct {
	Name    string `gorm:"not null"`
	Phone   string
	Address string `gorm:"not null"`
}

// SellerDTO represents the database structure for sellers. Each seller is
// owned by exactly one admin, which is what every tenant predicate joins on.
type SellerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null"`
	AdminID uuid.UUID `gorm:"type:uuid;index;not null"`
}

// TableName specifies the database table name for seller entities.
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Number:   aggregate.Number(),
		SellerID: aggregate.SellerID().Bytes(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
		},
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Number, sellerID, customer, dto.TotalAmount, order.Status(dto.Status))
}
