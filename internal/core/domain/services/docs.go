// Package services provides the domain services of the order-processing
// pipeline. Each one owns a single business rule and holds no per-order state.
//
// The package includes:
//   - PriorityScorer: ranks an order from its quantity, delivery type and processing hour
//   - PricingCalculator: computes the exact total cost of an order
//   - DeliveryEstimator: promises a delivery date from delivery type and priority
//   - InventoryLedger: reserves stock without ever driving it negative
package services
