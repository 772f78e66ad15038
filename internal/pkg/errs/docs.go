// Package errs provides standardized error types for the warehouse service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an aggregate cannot be found in the store
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//
// Callers classify errors with errors.Is against the sentinels, for example
// repositories return *ObjectNotFoundError and use cases test for ErrObjectNotFound.
package errs
