// Package guard provides ConstructorGuard, the marker embedded in every smart-constructed
// value of the order-taking domain.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the caller
// passes a nil error and the guarded value was not built by its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records that a value was produced by its validating constructor.
//
// The zero value reports "not constructed", so a struct literal such as kernel.Price{}
// fails Validate while a value returned by kernel.NewPrice passes. Only constructors
// call NewConstructorGuard; nothing ever resets it.
//
// Example:
//
//	var ErrZipCodeNotConstructed = errors.New("ZipCode must be created via NewZipCode")
//
//	type ZipCode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (z ZipCode) Validate() error {
//	    return z.guard.Validate(ErrZipCodeNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
