// Package order provides the Order aggregate processed by the warehouse.
//
// The package includes:
//   - Order: identity, product, quantity, delivery type and processing outcome
//   - Status: the New -> Processing -> Processed|Failed state machine
//   - DeliveryType: the closed set Standard, Express, SameDay
//   - Snapshot: an immutable copy of an order for the audit trail
//
// Key business rules:
//   - Quantity must be positive and identifiers must be valid
//   - Stock is reserved once, on the first New -> Processing transition
//   - A Failed order keeps its reservation and outcome and may be processed again
//   - Processed is final
package order
