// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// ObjectNotFoundError doubles as the tenant-isolation error: lookups that fail
// because the object belongs to another tenant return the same error as lookups
// for objects that do not exist at all, so existence never leaks across tenants.
package errs
