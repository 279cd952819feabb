package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a request to place the order described by a raw order form.
// The form is validated by the handler, which reports every problem at once.
//
// Example:
//
//	cmd := NewPlaceOrderCommand(order.UnvalidatedOrder{OrderID: "123", ...})
//	events, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	unvalidatedOrder order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand wraps an order form. The lines slice is copied.
func NewPlaceOrderCommand(unvalidatedOrder order.UnvalidatedOrder) PlaceOrderCommand {
	unvalidatedOrder.Lines = append([]order.UnvalidatedOrderLine(nil), unvalidatedOrder.Lines...)
	return PlaceOrderCommand{
		unvalidatedOrder: unvalidatedOrder,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UnvalidatedOrder returns a copy of the order form.
func (c PlaceOrderCommand) UnvalidatedOrder() order.UnvalidatedOrder {
	o := c.unvalidatedOrder
	o.Lines = append([]order.UnvalidatedOrderLine(nil), c.unvalidatedOrder.Lines...)
	return o
}
