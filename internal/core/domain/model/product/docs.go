// Package product provides the catalog view and the stock ledger entry the
// warehouse reads while processing orders.
//
// Products are maintained by another system and are read-only here. A
// StockLevel is the single mutable record per product; its quantity never
// goes negative and a failed reservation leaves it untouched.
package product
