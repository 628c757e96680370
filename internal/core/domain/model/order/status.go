package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
//
// State transitions:
//
//	PendingReview ──┬──> Confirmed ──> InPackaging ──> Packed ──> OutForDelivery ──┬──> Delivered
//	                │                                                              └──> DeliveryFailed
//	                └──> Cancelled
//
// Delivered, DeliveryFailed, and Cancelled are terminal. The graph below is
// the structural truth about which transitions exist; which role may request
// a given transition is a separate concern (see transitions.go).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingReview is the initial status: the order awaits intake review.
	StatusPendingReview

	// StatusConfirmed means intake review accepted the order.
	StatusConfirmed

	// StatusInPackaging means a packaging agent has claimed the order and an
	// open packaging task exists.
	StatusInPackaging

	// StatusPacked means packaging finished; the packaging task is closed.
	StatusPacked

	// StatusOutForDelivery means a delivery agent has claimed the order and an
	// open delivery task exists.
	StatusOutForDelivery

	// StatusDelivered is a terminal state: handed to the customer, with
	// receiver proof recorded on the delivery task.
	StatusDelivered

	// StatusDeliveryFailed is a terminal state: delivery was attempted and failed.
	StatusDeliveryFailed

	// StatusCancelled is a terminal state: rejected at intake review.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPendingReview:  "PendingReview",
		StatusConfirmed:      "Confirmed",
		StatusInPackaging:    "InPackaging",
		StatusPacked:         "Packed",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusDeliveryFailed: "DeliveryFailed",
		StatusCancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingReview:  "PendingReview",
		StatusConfirmed:      "Confirmed",
		StatusInPackaging:    "InPackaging",
		StatusPacked:         "Packed",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusDeliveryFailed: "DeliveryFailed",
		StatusCancelled:      "Cancelled",
	}
}

// getStatusGraph returns the structural transition graph. It is data, not
// branching: adding a status is a change here plus the string maps above.
func getStatusGraph() map[Status][]Status {
	return map[Status][]Status{
		StatusPendingReview:  {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusInPackaging},
		StatusInPackaging:    {StatusPacked},
		StatusPacked:         {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered, StatusDeliveryFailed},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns StatusUnknown with an error for anything not in the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined values.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return false
	}
	return len(getStatusGraph()[s]) == 0
}

// CanTransitionTo reports whether the structural graph contains an edge from
// s to target. This is the check the privileged override is still subject to.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getStatusGraph()[s] {
		if next == target {
			return true
		}
	}
	return false
}
