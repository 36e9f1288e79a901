// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database and return flat views; they never
// load aggregates, with the single exception of the creation preview.
package queries
