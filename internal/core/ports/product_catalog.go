// Package ports defines the collaborators the place-order workflow depends on.
// Each port is an interface with a function adapter, so adapters and tests can supply
// a plain function where a full type is not needed.
package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ProductCatalog answers whether a product is sold.
type ProductCatalog interface {
	ProductCodeExists(code kernel.ProductCode) bool
}

// ProductCatalogFunc adapts a function to ProductCatalog.
type ProductCatalogFunc func(code kernel.ProductCode) bool

func (f ProductCatalogFunc) ProductCodeExists(code kernel.ProductCode) bool { return f(code) }

// AddressChecker confirms that an address exists.
//
// A negative answer is returned as an order.AddressValidationError and becomes part of
// the order's validation errors. Any other error means the checking service itself
// failed and aborts the workflow with an *order.RemoteServiceError.
//
// Example:
//
//	checked, err := checker.CheckAddress(ctx, unvalidated.ShippingAddress)
//	var negative order.AddressValidationError
//	if errors.As(err, &negative) {
//	    // "Address not found" or "Address has bad format"
//	}
type AddressChecker interface {
	CheckAddress(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}

// AddressCheckerFunc adapts a function to AddressChecker.
type AddressCheckerFunc func(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)

func (f AddressCheckerFunc) CheckAddress(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	return f(ctx, address)
}
