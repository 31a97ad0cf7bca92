// Package order provides domain entities and business logic for order tracking.
// It implements the Order aggregate root with lifecycle management, state
// transitions and a recorded event history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, total, details and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - CreatedEvent, StatusChangedEvent, CancelledEvent: facts recorded by Order
//
// Key business rules:
//   - Orders must reference a customer and carry a total greater than zero
//   - Order status follows a defined workflow: Pending -> Confirmed -> Shipped -> Delivered
//   - Orders can be cancelled only while Pending or Confirmed
//   - Every successful transition records exactly one event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
