package order

import (
	"ordertaking/internal/core/domain/model/kernel"
)

// PricingMethod selects the price source for an order: Standard or Promotion.
//
//sumtype:decl
type PricingMethod interface {
	isPricingMethod()
}

// Standard prices every product at its list price.
type Standard struct{}

func (Standard) isPricingMethod() {}

// Promotion prices products with a promotion price when one exists.
type Promotion struct {
	code kernel.PromotionCode
}

func NewPromotion(code kernel.PromotionCode) Promotion {
	return Promotion{code: code}
}

func (p Promotion) Code() kernel.PromotionCode { return p.code }
func (Promotion) isPricingMethod()             {}
