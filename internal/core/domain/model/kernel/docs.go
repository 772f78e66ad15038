// Package kernel provides the value objects shared by the warehouse domain model.
//
// The package includes:
//   - ID: positive integer identity of orders and products
//   - UUID: generated identity of stock level records and notification messages
//   - Money: exact non-negative decimal amount used for prices and order totals
//
// All values are immutable and their zero values are invalid, so a missing
// constructor call is caught by Validate.
package kernel
