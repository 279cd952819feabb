// Package order models the life of an order as it moves through the place-order
// workflow, and the events and errors the workflow produces.
//
// Each stage yields a distinct immutable type, produced exactly once:
//
//	UnvalidatedOrder ──> ValidatedOrder ──> PricedOrder ──> PricedOrderWithShippingMethod
//
// Closed sets are sealed interfaces (PricingMethod, PricedOrderLine, PlaceOrderEvent,
// PlaceOrderError) or int enums (ShippingMethod, SendResult, AddressValidationError).
// Consumers switch on the concrete type; the unexported marker methods keep the sets
// closed to this package.
//
// Slices handed to constructors are copied, and accessors return copies, so a value
// never changes after it is built.
package order
