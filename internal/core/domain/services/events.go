package services

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/option"
)

// CreateEvents lists the events of a placed order in publication order: the
// acknowledgment (when one was sent), the shipment (always) and the billing (when
// there is something to bill).
func CreateEvents(
	po order.PricedOrder,
	acknowledgment option.Option[order.OrderAcknowledgementSent],
) []order.PlaceOrderEvent {
	return option.Values(
		option.Map(acknowledgment, asEvent[order.OrderAcknowledgementSent]),
		option.Some(asEvent(createShippingEvent(po))),
		option.Map(createBillingEvent(po), asEvent[order.BillableOrderPlaced]),
	)
}

func asEvent[E order.PlaceOrderEvent](e E) order.PlaceOrderEvent {
	return e
}

func createShippingEvent(po order.PricedOrder) order.ShippableOrderPlaced {
	var lines []order.ShippableOrderLine
	for _, line := range po.Lines() {
		if l, ok := line.(order.PricedOrderProductLine); ok {
			lines = append(lines, order.NewShippableOrderLine(l.ProductCode(), l.Quantity()))
		}
	}
	pdf := kernel.NewPdfAttachment("Order"+po.OrderID().String(), nil)
	return order.NewShippableOrderPlaced(po.OrderID(), po.ShippingAddress(), lines, pdf)
}

func createBillingEvent(po order.PricedOrder) option.Option[order.BillableOrderPlaced] {
	if !po.AmountToBill().IsPositive() {
		return option.None[order.BillableOrderPlaced]()
	}
	return option.Some(order.NewBillableOrderPlaced(po.OrderID(), po.BillingAddress(), po.AmountToBill()))
}
