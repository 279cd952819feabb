package commands

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/option"
)

// acknowledgeOrder renders and sends the acknowledgment letter. Only a confirmed send
// produces an OrderAcknowledgementSent event.
func (h *PlaceOrderCommandHandler) acknowledgeOrder(
	ctx context.Context,
	o order.PricedOrderWithShippingMethod,
) option.Option[order.OrderAcknowledgementSent] {
	priced := o.PricedOrder()
	email := priced.CustomerInfo().EmailAddress()
	acknowledgment := order.OrderAcknowledgement{
		EmailAddress: email,
		Letter:       h.letterRenderer.RenderLetter(o),
	}

	switch result := h.sender.SendAcknowledgment(ctx, acknowledgment); result {
	case order.Sent:
		return option.Some(order.NewOrderAcknowledgementSent(priced.OrderID(), email))
	default:
		h.logger.WarnContext(ctx, "acknowledgment not sent",
			"orderId", priced.OrderID().String(), "result", result.String())
		return option.None[order.OrderAcknowledgementSent]()
	}
}
