package services

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// GetProductPrice returns the unit price of a product.
type GetProductPrice func(code kernel.ProductCode) kernel.Price

// TryGetProductPrice returns the unit price of a product if the source has one.
type TryGetProductPrice func(code kernel.ProductCode) (kernel.Price, bool)

// GetStandardPrices returns the current standard price source.
type GetStandardPrices func() GetProductPrice

// GetPromotionPrices returns the price source for a promotion.
type GetPromotionPrices func(promotion kernel.PromotionCode) TryGetProductPrice

// GetPricingFunction resolves the price source for a pricing method.
type GetPricingFunction func(method order.PricingMethod) GetProductPrice

// CreatePricingMethod maps the raw promotion code of an order form to a pricing method.
// A blank code selects Standard; anything else is a Promotion of the trimmed code.
func CreatePricingMethod(rawPromotionCode string) order.PricingMethod {
	code, err := kernel.NewPromotionCode(rawPromotionCode, "promotionCode")
	if err != nil {
		return order.Standard{}
	}
	return order.NewPromotion(code)
}

// NewPricingFunction builds the resolver used to price each order.
//
// Standard orders are priced from the standard source. Promotion orders try the
// promotion source first and fall back to the standard price for products the
// promotion does not cover. Both sources are fetched when the method is resolved, so
// a reloaded catalog takes effect on the next order.
//
// Example:
//
//	getPricing := services.NewPricingFunction(standardPrices, promotionPrices)
//	price := getPricing(order.Standard{})(code)
func NewPricingFunction(standard GetStandardPrices, promotion GetPromotionPrices) GetPricingFunction {
	return func(method order.PricingMethod) GetProductPrice {
		standardPrices := standard()
		switch m := method.(type) {
		case order.Promotion:
			promotionPrices := promotion(m.Code())
			return func(code kernel.ProductCode) kernel.Price {
				if price, ok := promotionPrices(code); ok {
					return price
				}
				return standardPrices(code)
			}
		default:
			return standardPrices
		}
	}
}
