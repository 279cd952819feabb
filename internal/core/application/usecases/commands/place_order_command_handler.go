// Package commands contains the order-placing use case.
package commands

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

// PlaceOrderCommandHandler turns an order form into the events of a placed order.
//
// Stages, in order:
//   - validate the form, collecting every problem (*order.ValidationError); a failing
//     address-checking service aborts with *order.RemoteServiceError
//   - price the order, stopping at the first problem (*order.PricingError)
//   - attach shipping and waive its cost for VIP customers
//   - send an acknowledgment; a failed send is logged and never fails the order
//   - emit the acknowledgment, shipment and billing events
//
// The handler holds no mutable state and is safe for concurrent use.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(catalog, checker, catalog, shipping, renderer, sender, logger)
//	events, err := handler.Handle(ctx, NewPlaceOrderCommand(form))
//	var validationErr *order.ValidationError
//	if errors.As(err, &validationErr) {
//	    // show validationErr.Details to the customer
//	}
type PlaceOrderCommandHandler struct {
	productCatalog     ports.ProductCatalog
	addressChecker     ports.AddressChecker
	pricer             services.OrderPricer
	shippingCalculator ports.ShippingCostCalculator
	letterRenderer     ports.AcknowledgmentLetterRenderer
	sender             ports.AcknowledgmentSender
	logger             *slog.Logger
}

// NewPlaceOrderCommandHandler wires the workflow to its collaborators. A nil logger
// falls back to slog.Default.
func NewPlaceOrderCommandHandler(
	productCatalog ports.ProductCatalog,
	addressChecker ports.AddressChecker,
	priceList ports.PriceList,
	shippingCalculator ports.ShippingCostCalculator,
	letterRenderer ports.AcknowledgmentLetterRenderer,
	sender ports.AcknowledgmentSender,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PlaceOrderCommandHandler{
		productCatalog:     productCatalog,
		addressChecker:     addressChecker,
		pricer:             services.NewOrderPricer(pricingFunction(priceList)),
		shippingCalculator: shippingCalculator,
		letterRenderer:     letterRenderer,
		sender:             sender,
		logger:             logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle runs the workflow. It returns either the ordered events or exactly one
// order.PlaceOrderError, never both.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]order.PlaceOrderEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, order.NewValidationError(err)
	}
	unvalidated := cmd.UnvalidatedOrder()

	validated, err := h.validateOrder(ctx, unvalidated)
	if err != nil {
		h.logger.WarnContext(ctx, "order rejected", "orderId", unvalidated.OrderID, "error", err)
		return nil, err
	}

	priced, err := h.pricer.PriceOrder(validated)
	if err != nil {
		h.logger.WarnContext(ctx, "order could not be priced", "orderId", unvalidated.OrderID, "error", err)
		return nil, err
	}

	withShipping := services.FreeVipShipping(
		services.AddShippingInfoToOrder(h.shippingCalculator.ShippingCost, priced))
	acknowledgment := h.acknowledgeOrder(ctx, withShipping)
	events := services.CreateEvents(priced, acknowledgment)

	h.logger.InfoContext(ctx, "order placed",
		"orderId", priced.OrderID().String(),
		"amountToBill", priced.AmountToBill().String(),
		"shippingCost", withShipping.ShippingInfo().Cost().String(),
		"events", len(events),
	)
	return events, nil
}

func pricingFunction(priceList ports.PriceList) services.GetPricingFunction {
	return services.NewPricingFunction(
		func() services.GetProductPrice {
			return priceList.StandardPrice
		},
		func(promotion kernel.PromotionCode) services.TryGetProductPrice {
			return func(code kernel.ProductCode) (kernel.Price, bool) {
				return priceList.PromotionPrice(promotion, code)
			}
		},
	)
}
