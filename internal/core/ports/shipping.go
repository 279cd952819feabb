package ports

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ShippingCostCalculator prices the shipment of an order.
type ShippingCostCalculator interface {
	ShippingCost(po order.PricedOrder) kernel.Price
}

// ShippingCostCalculatorFunc adapts a function to ShippingCostCalculator.
type ShippingCostCalculatorFunc func(po order.PricedOrder) kernel.Price

func (f ShippingCostCalculatorFunc) ShippingCost(po order.PricedOrder) kernel.Price { return f(po) }
