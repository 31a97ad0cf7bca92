package order

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// Rule names reported by illegal status transitions.
const (
	RuleOrderConfirmation = "OrderConfirmationRule"
	RuleOrderShipping     = "OrderShippingRule"
	RuleOrderDelivery     = "OrderDeliveryRule"
	RuleOrderCancellation = "OrderCancellationRule"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new order.
	Pending

	// Confirmed orders have been accepted and may still be cancelled.
	Confirmed

	// Shipped orders are in transit and can no longer be cancelled.
	Shipped

	// Delivered is a final state.
	Delivered

	// Cancelled is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus maps a status name, in any letter case, back to its Status.
//
// Returns a ValueIsInvalidError for unknown names, including "Unknown".
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the five lifecycle states.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanBeCancelled reports whether Cancel would succeed from this status.
func (s Status) CanBeCancelled() bool {
	return s == Pending || s == Confirmed
}

// Confirm transitions Pending -> Confirmed.
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (Unknown, error) with rule OrderConfirmationRule otherwise
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(RuleOrderConfirmation, "confirm", s)
	}

	return Confirmed, nil
}

// Ship transitions Confirmed -> Shipped.
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (Unknown, error) with rule OrderShippingRule otherwise
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return Unknown, transitionError(RuleOrderShipping, "ship", s)
	}

	return Shipped, nil
}

// Deliver transitions Shipped -> Delivered.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (Unknown, error) with rule OrderDeliveryRule otherwise
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, transitionError(RuleOrderDelivery, "deliver", s)
	}

	return Delivered, nil
}

// Cancel transitions Pending or Confirmed -> Cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (Unknown, error) with rule OrderCancellationRule otherwise
func (s Status) Cancel() (Status, error) {
	if !s.CanBeCancelled() {
		return Unknown, transitionError(RuleOrderCancellation, "cancel", s)
	}

	return Cancelled, nil
}

func transitionError(rule, operation string, current Status) error {
	return errs.NewBusinessRuleViolationError(
		rule,
		fmt.Sprintf("Cannot %s order in %s status", operation, current),
	)
}
