package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a fulfillment order. It is the aggregate root for the
// order lifecycle from intake review through packaging and delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty unique order number
//   - Belongs to exactly one seller for its entire lifetime (sellerID is
//     immutable after creation)
//   - Status is always one of the defined enum values and only changes along
//     edges of the structural status graph
//   - Total amount is never negative
//   - Can only be created through NewOrder or RestoreOrder
//
// Status changes go through ChangeStatus, which enforces the structural
// graph. Role legality and task side effects are layered on top by the
// application layer; the aggregate stays ignorant of both.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable unique order number
	number string

	// sellerID identifies the owning seller; immutable after creation
	sellerID kernel.UUID

	// customer is the buyer snapshot taken at intake
	customer Customer

	// totalAmount is the order total in minor currency units
	totalAmount int64

	// status is the current state in the fulfillment lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in PendingReview status with validation.
// This is the only way to create a valid new Order.
//
// Example:
//
//	customer, _ := order.NewCustomer("J. Smith", "+15550100", "12 Main St")
//	ord, err := order.NewOrder(kernel.NewUUID(), "ORD-2024-000123", sellerID, customer, 14900)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, number string, sellerID kernel.UUID, customer Customer, totalAmount int64) (*Order, error) {
	o := &Order{
		status:        StatusPendingReview,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setSellerID(sellerID),
		o.setCustomer(customer),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in an arbitrary status.
// The status must be a valid enum value; the structural graph is not
// re-checked because the stored status is the result of past valid
// transitions.
func RestoreOrder(id kernel.UUID, number string, sellerID kernel.UUID, customer Customer, totalAmount int64, status Status) (*Order, error) {
	o, err := NewOrder(id, number, sellerID, customer, totalAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable unique order number.
func (o *Order) Number() string {
	return o.number
}

// SellerID returns the owning seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Customer returns the buyer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order along one edge of the structural status graph.
//
// Returns ErrInvalidTransition (wrapped with the attempted edge) when the
// graph has no edge from the current status to the target. Role legality and
// ownership preconditions are checked by the caller before this point; the
// aggregate only defends the structure.
func (o *Order) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, to)
	}

	o.status = to
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount is invalid", fmt.Errorf("%d is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
