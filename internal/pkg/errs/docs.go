// Package errs provides the typed errors returned by the order-taking value constructors
// and adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but has the wrong format
//   - ValueIsOutOfRangeError: a numeric value lies outside its inclusive bounds
//   - ObjectNotFoundError: a referenced object (such as a product) does not exist
//
// Each error type follows the same pattern: a sentinel variable (ErrValueIsRequired, ...),
// a struct carrying the details, constructors with and without a cause, an Error method
// and an Unwrap method returning the sentinel, so callers classify errors with errors.Is
// and inspect details with errors.As.
package errs
