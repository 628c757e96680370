package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the immutable snapshot of the buyer taken at order intake.
// It is stored denormalized on the order so later changes to the customer's
// account never alter historical orders.
type Customer struct {
	name    string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a customer snapshot. Name and address are required;
// phone is optional.
func NewCustomer(name, phone, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer address")
	}

	return Customer{
		name:          name,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}
