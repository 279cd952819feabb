package order

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
)

// ShippingMethod is the carrier service used to ship an order.
type ShippingMethod int

const (
	ShippingMethodUnknown ShippingMethod = iota
	PostalService
	Fedex24
	Fedex48
	Ups48
)

// DefaultShippingMethod is the method attached to every order.
const DefaultShippingMethod = Fedex24

func getShippingMethodStrings() map[ShippingMethod]string {
	return map[ShippingMethod]string{
		ShippingMethodUnknown: "unknown",
		PostalService:         "postalService",
		Fedex24:               "fedex24",
		Fedex48:               "fedex48",
		Ups48:                 "ups48",
	}
}

func (m ShippingMethod) String() string {
	if str, ok := getShippingMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

func (m ShippingMethod) Validate() error {
	if m < PostalService || m > Ups48 {
		return errs.NewValueIsInvalidErrorWithCause("shippingMethod", fmt.Errorf("%d is not a shipping method", m))
	}
	return nil
}

// ShippingInfo is the chosen method and its cost.
type ShippingInfo struct {
	method ShippingMethod
	cost   kernel.Price
}

func NewShippingInfo(method ShippingMethod, cost kernel.Price) ShippingInfo {
	return ShippingInfo{method: method, cost: cost}
}

func (s ShippingInfo) Method() ShippingMethod { return s.method }
func (s ShippingInfo) Cost() kernel.Price     { return s.cost }

// PricedOrderWithShippingMethod is a priced order with shipping attached.
type PricedOrderWithShippingMethod struct {
	shippingInfo ShippingInfo
	pricedOrder  PricedOrder
}

func NewPricedOrderWithShippingMethod(info ShippingInfo, pricedOrder PricedOrder) PricedOrderWithShippingMethod {
	return PricedOrderWithShippingMethod{shippingInfo: info, pricedOrder: pricedOrder}
}

func (o PricedOrderWithShippingMethod) ShippingInfo() ShippingInfo { return o.shippingInfo }
func (o PricedOrderWithShippingMethod) PricedOrder() PricedOrder   { return o.pricedOrder }

// WithShippingInfo returns a copy carrying info instead of the current shipping info.
func (o PricedOrderWithShippingMethod) WithShippingInfo(info ShippingInfo) PricedOrderWithShippingMethod {
	return PricedOrderWithShippingMethod{shippingInfo: info, pricedOrder: o.pricedOrder}
}
