package services

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CalculateShippingCost prices the shipment of an order.
type CalculateShippingCost func(po order.PricedOrder) kernel.Price

type shippingType int

const (
	usLocalState shippingType = iota
	usRemoteState
	international
)

// ShippingCalculator is the default shipping tariff: 5 within the western US states
// (CA, OR, AZ, NV), 10 elsewhere in the US and 20 abroad.
type ShippingCalculator struct {
	localStateCost    kernel.Price
	remoteStateCost   kernel.Price
	internationalCost kernel.Price
}

func NewShippingCalculator() ShippingCalculator {
	return ShippingCalculator{
		localStateCost:    kernel.MustNewPrice(decimal.NewFromInt(5)),
		remoteStateCost:   kernel.MustNewPrice(decimal.NewFromInt(10)),
		internationalCost: kernel.MustNewPrice(decimal.NewFromInt(20)),
	}
}

// ShippingCost returns the cost of shipping to the order's shipping address.
func (c ShippingCalculator) ShippingCost(po order.PricedOrder) kernel.Price {
	switch getShippingType(po.ShippingAddress()) {
	case usLocalState:
		return c.localStateCost
	case usRemoteState:
		return c.remoteStateCost
	default:
		return c.internationalCost
	}
}

func getShippingType(address kernel.Address) shippingType {
	if address.Country().String() != "US" {
		return international
	}
	switch address.State().String() {
	case "CA", "OR", "AZ", "NV":
		return usLocalState
	default:
		return usRemoteState
	}
}

// AddShippingInfoToOrder attaches the default shipping method and its cost.
func AddShippingInfoToOrder(calculate CalculateShippingCost, po order.PricedOrder) order.PricedOrderWithShippingMethod {
	info := order.NewShippingInfo(order.DefaultShippingMethod, calculate(po))
	return order.NewPricedOrderWithShippingMethod(info, po)
}

// FreeVipShipping waives the shipping cost for VIP customers, keeping the method.
// Orders of normal customers are returned unchanged.
func FreeVipShipping(o order.PricedOrderWithShippingMethod) order.PricedOrderWithShippingMethod {
	switch o.PricedOrder().CustomerInfo().VipStatus() {
	case kernel.VipStatusVip:
		return o.WithShippingInfo(order.NewShippingInfo(o.ShippingInfo().Method(), zeroPrice))
	default:
		return o
	}
}
