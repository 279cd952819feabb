package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// AcknowledgmentLetterRenderer renders the letter acknowledging an order.
type AcknowledgmentLetterRenderer interface {
	RenderLetter(o order.PricedOrderWithShippingMethod) order.HTMLString
}

// AcknowledgmentLetterRendererFunc adapts a function to AcknowledgmentLetterRenderer.
type AcknowledgmentLetterRendererFunc func(o order.PricedOrderWithShippingMethod) order.HTMLString

func (f AcknowledgmentLetterRendererFunc) RenderLetter(o order.PricedOrderWithShippingMethod) order.HTMLString {
	return f(o)
}

// AcknowledgmentSender delivers an acknowledgment to the customer. It reports
// failure as order.NotSent rather than as an error: a lost acknowledgment never fails
// the order.
type AcknowledgmentSender interface {
	SendAcknowledgment(ctx context.Context, ack order.OrderAcknowledgement) order.SendResult
}

// AcknowledgmentSenderFunc adapts a function to AcknowledgmentSender.
type AcknowledgmentSenderFunc func(ctx context.Context, ack order.OrderAcknowledgement) order.SendResult

func (f AcknowledgmentSenderFunc) SendAcknowledgment(
	ctx context.Context,
	ack order.OrderAcknowledgement,
) order.SendResult {
	return f(ctx, ack)
}
