// Package errs provides the standardized error types used across the
// storefront service. Each error kind follows the same pattern: a sentinel
// error variable, a struct carrying the details, constructors with and
// without a cause, and Unwrap support so callers can classify failures
// with errors.Is.
//
// Error kinds:
//   - ValueIsRequiredError: a required value is missing (phone, qty, location)
//   - ValueIsInvalidError: a value fails validation (unknown status, bad UUID)
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup matched nothing (unknown order or item ID)
package errs
