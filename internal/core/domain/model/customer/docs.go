// Package customer provides the Customer aggregate root and the events it
// records.
//
// The package includes:
//   - Customer: identity, contact details, active flag and free-form preferences
//   - CreatedEvent and DeactivatedEvent: facts recorded on creation and deactivation
//
// Key business rules:
//   - A customer name is non-empty after trimming and at most 200 characters
//   - Every new customer records exactly one CustomerCreated event
//   - Deactivation is terminal; deactivating an inactive customer is a business rule violation
//   - Contact and preference updates bump updatedAt and record no events
package customer
