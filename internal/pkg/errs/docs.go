// Package errs provides standardized error types for the barista service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases, and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a domain rule
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
//
// Adapters translate the sentinels into transport results: ErrObjectNotFound
// becomes 404, the validation sentinels become 400.
package errs
