// Package queries contains read operations over customers and orders.
// Query handlers read through the repository ports, never mutate aggregates,
// and return outcome.Outcome values carrying views.
package queries
