package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PlaceOrderError is the single error a failed place-order workflow returns:
// *ValidationError, *PricingError or *RemoteServiceError.
//
//sumtype:decl
type PlaceOrderError interface {
	error
	// Code is the wire name of the error kind.
	Code() string
	isPlaceOrderError()
}

const (
	ValidationErrorCode    = "validationError"
	PricingErrorCode       = "pricingError"
	RemoteServiceErrorCode = "remoteServiceError"
)

// ValidationError reports invalid input. Message is the first problem found; Details
// lists every distinct problem in the order they were found.
type ValidationError struct {
	Message string
	Details []string
	causes  []error
}

// NewValidationError builds a ValidationError from the individual failures of
// validation. Failures with the same message are reported once.
func NewValidationError(failures ...error) *ValidationError {
	v := &ValidationError{}
	for _, err := range failures {
		if err == nil {
			continue
		}
		msg := err.Error()
		if slices.Contains(v.Details, msg) {
			continue
		}
		v.Details = append(v.Details, msg)
		v.causes = append(v.causes, err)
	}
	if len(v.Details) > 0 {
		v.Message = v.Details[0]
	}
	return v
}

func (e *ValidationError) Error() string {
	if len(e.Details) > 1 {
		return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap exposes the typed failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return append([]error(nil), e.causes...)
}

func (e *ValidationError) Code() string     { return ValidationErrorCode }
func (*ValidationError) isPlaceOrderError() {}

// PricingError reports that a valid order could not be priced, for example because a
// line price exceeds the price limit.
type PricingError struct {
	Message string
	Cause   error
}

func NewPricingError(cause error) *PricingError {
	return &PricingError{Message: cause.Error(), Cause: cause}
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("pricing failed: %s", e.Message)
}

func (e *PricingError) Unwrap() error    { return e.Cause }
func (e *PricingError) Code() string     { return PricingErrorCode }
func (*PricingError) isPlaceOrderError() {}

// ServiceInfo identifies a remote collaborator.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

// RemoteServiceError reports that a collaborator failed for reasons unrelated to the
// order itself.
type RemoteServiceError struct {
	Service ServiceInfo
	Cause   error
}

func NewRemoteServiceError(service ServiceInfo, cause error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Cause: cause}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s failed: %v", e.Service.Name, e.Cause)
}

func (e *RemoteServiceError) Unwrap() error    { return e.Cause }
func (e *RemoteServiceError) Code() string     { return RemoteServiceErrorCode }
func (*RemoteServiceError) isPlaceOrderError() {}

// AddressValidationError is a negative answer of the address-checking service.
type AddressValidationError int

const (
	AddressInvalidFormat AddressValidationError = iota + 1
	AddressNotFound
)

var ErrUnknownAddressValidation = errors.New("unknown address validation error")

func (e AddressValidationError) Error() string {
	switch e {
	case AddressInvalidFormat:
		return "Address has bad format"
	case AddressNotFound:
		return "Address not found"
	default:
		return ErrUnknownAddressValidation.Error()
	}
}
