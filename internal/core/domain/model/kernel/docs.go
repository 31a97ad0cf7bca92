// Package kernel provides the value types and event plumbing shared by the
// customer and order aggregates.
//
// The package includes:
//   - UUID, CustomerID, OrderID: opaque identifiers backed by github.com/google/uuid
//   - Money: a non-negative decimal amount in a three letter currency
//   - EmailAddress, PhoneNumber, Address: self-validating contact details
//   - Attributes: an opaque map of JSON-like values (preferences, order details)
//   - DomainEvent, BaseEvent, EventRecorder: the event accumulation capability
//
// Every constructor returns either a fully valid value or an error; value
// types are immutable and safe to share between goroutines.
package kernel
