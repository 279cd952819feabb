package commands

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/pkg/combine"
	"ordertaking/internal/pkg/errs"
)

var addressCheckingService = order.ServiceInfo{
	Name:     "AddressCheckingService",
	Endpoint: "CheckAddress",
}

// validateOrder checks both addresses, then validates every field of the form,
// accumulating all failures into one *order.ValidationError.
func (h *PlaceOrderCommandHandler) validateOrder(
	ctx context.Context,
	unvalidated order.UnvalidatedOrder,
) (order.ValidatedOrder, error) {
	checkedShipping, err := h.checkAddress(ctx, unvalidated.ShippingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}
	checkedBilling, err := h.checkAddress(ctx, unvalidated.BillingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	orderID, customerInfo, shippingAddress, billingAddress, lines, err := combine.Collect5(
		combine.Of(kernel.NewOrderID(unvalidated.OrderID, "orderId")),
		toCustomerInfo(unvalidated.CustomerInfo),
		combine.Then(checkedShipping, toAddress),
		combine.Then(checkedBilling, toAddress),
		combine.Traverse(unvalidated.Lines, h.toValidatedOrderLine),
	)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(combine.List(err)...)
	}

	validated, err := order.NewValidatedOrder(
		orderID,
		customerInfo,
		shippingAddress,
		billingAddress,
		lines,
		services.CreatePricingMethod(unvalidated.PromotionCode),
	)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(combine.List(err)...)
	}
	return validated, nil
}

// checkAddress returns a negative answer as a failed Result and a service failure as
// an *order.RemoteServiceError.
func (h *PlaceOrderCommandHandler) checkAddress(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (combine.Result[order.CheckedAddress], error) {
	checked, err := h.addressChecker.CheckAddress(ctx, address)
	if err == nil {
		return combine.Ok(checked), nil
	}

	var negative order.AddressValidationError
	if errors.As(err, &negative) {
		return combine.Fail[order.CheckedAddress](negative), nil
	}
	return combine.Result[order.CheckedAddress]{}, order.NewRemoteServiceError(addressCheckingService, err)
}

func toCustomerInfo(unvalidated order.UnvalidatedCustomerInfo) combine.Result[kernel.CustomerInfo] {
	firstName, lastName, email, vipStatus, err := combine.Collect4(
		combine.Of(kernel.NewString50(unvalidated.FirstName, "firstName")),
		combine.Of(kernel.NewString50(unvalidated.LastName, "lastName")),
		combine.Of(kernel.NewEmailAddress(unvalidated.EmailAddress, "emailAddress")),
		combine.Of(kernel.NewVipStatus(unvalidated.VipStatus, "vipStatus")),
	)
	if err != nil {
		return combine.Fail[kernel.CustomerInfo](err)
	}

	name, err := kernel.NewPersonalName(firstName, lastName)
	if err != nil {
		return combine.Fail[kernel.CustomerInfo](err)
	}
	return combine.Of(kernel.NewCustomerInfo(name, email, vipStatus))
}

func toAddress(checked order.CheckedAddress) combine.Result[kernel.Address] {
	line1, line2, line3, line4, city, zipCode, state, country, err := combine.Collect8(
		combine.Of(kernel.NewString50(checked.AddressLine1, "addressLine1")),
		combine.Of(kernel.NewOptionalString50(checked.AddressLine2, "addressLine2")),
		combine.Of(kernel.NewOptionalString50(checked.AddressLine3, "addressLine3")),
		combine.Of(kernel.NewOptionalString50(checked.AddressLine4, "addressLine4")),
		combine.Of(kernel.NewString50(checked.City, "city")),
		combine.Of(kernel.NewZipCode(checked.ZipCode, "zipCode")),
		combine.Of(kernel.NewUsStateCode(checked.State, "state")),
		combine.Of(kernel.NewString50(checked.Country, "country")),
	)
	if err != nil {
		return combine.Fail[kernel.Address](err)
	}

	optional := kernel.AddressLines{Line2: line2, Line3: line3, Line4: line4}
	return combine.Of(kernel.NewAddress(line1, optional, city, zipCode, state, country))
}

// toValidatedOrderLine validates a line. The quantity rule depends on the product, so
// it is only checked once the product code is known to be valid and sold.
func (h *PlaceOrderCommandHandler) toValidatedOrderLine(
	line order.UnvalidatedOrderLine,
) combine.Result[order.ValidatedOrderLine] {
	productCode := combine.Then(
		combine.Of(kernel.NewProductCode(line.ProductCode, "productCode")),
		h.checkProductExists,
	)
	quantity := combine.Then(productCode, func(code kernel.ProductCode) combine.Result[kernel.OrderQuantity] {
		return combine.Of(kernel.NewOrderQuantity(code, line.Quantity, "orderQuantity"))
	})

	orderLineID, code, qty, err := combine.Collect3(
		combine.Of(kernel.NewOrderLineID(line.OrderLineID, "orderLineId")),
		productCode,
		quantity,
	)
	if err != nil {
		return combine.Fail[order.ValidatedOrderLine](err)
	}
	return combine.Of(order.NewValidatedOrderLine(orderLineID, code, qty))
}

func (h *PlaceOrderCommandHandler) checkProductExists(code kernel.ProductCode) combine.Result[kernel.ProductCode] {
	if !h.productCatalog.ProductCodeExists(code) {
		return combine.Fail[kernel.ProductCode](errs.NewObjectNotFoundError("productCode", code.String()))
	}
	return combine.Ok(code)
}
