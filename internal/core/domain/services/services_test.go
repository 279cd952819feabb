package services_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/pkg/option"

	"github.com/shopspring/decimal"
)

// must unwraps fixture constructors that are known to succeed.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func price(v string) kernel.Price {
	return kernel.MustNewPrice(decimal.RequireFromString(v))
}

func address(t *testing.T, state, country string) kernel.Address {
	t.Helper()
	return must(kernel.NewAddress(
		must(kernel.NewString50("1 Main St", "addressLine1")),
		kernel.AddressLines{},
		must(kernel.NewString50("Somewhere", "city")),
		must(kernel.NewZipCode("98503", "zipCode")),
		must(kernel.NewUsStateCode(state, "state")),
		must(kernel.NewString50(country, "country")),
	))
}

func line(t *testing.T, id, code, qty string) order.ValidatedOrderLine {
	t.Helper()
	pc := must(kernel.NewProductCode(code, "productCode"))
	return must(order.NewValidatedOrderLine(
		must(kernel.NewOrderLineID(id, "orderLineId")),
		pc,
		must(kernel.NewOrderQuantity(pc, decimal.RequireFromString(qty), "orderQuantity")),
	))
}

type orderFixture struct {
	vip     kernel.VipStatus
	state   string
	country string
	method  order.PricingMethod
	lines   []order.ValidatedOrderLine
}

func validatedOrder(t *testing.T, s orderFixture) order.ValidatedOrder {
	t.Helper()
	if s.vip == kernel.VipStatusUnknown {
		s.vip = kernel.VipStatusNormal
	}
	if s.state == "" {
		s.state = "WA"
	}
	if s.country == "" {
		s.country = "US"
	}
	if s.method == nil {
		s.method = order.Standard{}
	}
	name := must(kernel.NewPersonalName(
		must(kernel.NewString50("Ada", "firstName")),
		must(kernel.NewString50("Lovelace", "lastName")),
	))
	info := must(kernel.NewCustomerInfo(name,
		must(kernel.NewEmailAddress("ada@example.com", "emailAddress")), s.vip))
	return must(order.NewValidatedOrder(
		must(kernel.NewOrderID("123", "orderId")),
		info,
		address(t, s.state, s.country),
		address(t, "WA", "US"),
		s.lines,
		s.method,
	))
}

func promotion(t *testing.T, code string) order.PricingMethod {
	t.Helper()
	return order.NewPromotion(must(kernel.NewPromotionCode(code, "promotionCode")))
}

// fixedPrices prices every product at standard and, under the promotion "HALF", W1234 at half.
func fixedPrices(standard string) services.GetPricingFunction {
	return services.NewPricingFunction(
		func() services.GetProductPrice {
			return func(kernel.ProductCode) kernel.Price { return price(standard) }
		},
		func(promo kernel.PromotionCode) services.TryGetProductPrice {
			return func(code kernel.ProductCode) (kernel.Price, bool) {
				if promo.String() == "HALF" && code.String() == "W1234" {
					return price("5"), true
				}
				return kernel.Price{}, false
			}
		},
	)
}

var noAck = option.None[order.OrderAcknowledgementSent]()
