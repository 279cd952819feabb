package ports

import (
	"ordertaking/internal/core/domain/model/kernel"
)

// PriceList supplies unit prices.
type PriceList interface {
	// StandardPrice returns the list price of a product.
	StandardPrice(code kernel.ProductCode) kernel.Price
	// PromotionPrice returns the promotion price of a product, if the promotion covers it.
	PromotionPrice(promotion kernel.PromotionCode, code kernel.ProductCode) (kernel.Price, bool)
}

// PriceListFuncs adapts a pair of functions to PriceList.
type PriceListFuncs struct {
	Standard  func(code kernel.ProductCode) kernel.Price
	Promotion func(promotion kernel.PromotionCode, code kernel.ProductCode) (kernel.Price, bool)
}

func (f PriceListFuncs) StandardPrice(code kernel.ProductCode) kernel.Price {
	return f.Standard(code)
}

func (f PriceListFuncs) PromotionPrice(promotion kernel.PromotionCode, code kernel.ProductCode) (kernel.Price, bool) {
	if f.Promotion == nil {
		return kernel.Price{}, false
	}
	return f.Promotion(promotion, code)
}
