package task

import (
	"fmt"

	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"
)

// Kind distinguishes the two fulfillment stages a task can represent.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindPackaging is the packaging stage, claimed by packaging agents.
	KindPackaging

	// KindDelivery is the delivery stage, claimed by delivery agents.
	KindDelivery
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:   "Unknown",
		KindPackaging: "Packaging",
		KindDelivery:  "Delivery",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindPackaging: "Packaging",
		KindDelivery:  "Delivery",
	}
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid task kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// It implements fmt.Stringer and is safe on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// RequiredAgentRole returns the role an agent must hold to be assigned a task
// of this kind. RoleUnknown for invalid kinds.
func (k Kind) RequiredAgentRole() user.Role {
	switch k {
	case KindPackaging:
		return user.RolePackagingAgent
	case KindDelivery:
		return user.RoleDeliveryAgent
	default:
		return user.RoleUnknown
	}
}
