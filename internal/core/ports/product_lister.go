package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
)

// ProductListing is one entry of the product catalog.
type ProductListing struct {
	Code            kernel.ProductCode
	StandardPrice   kernel.Price
	PromotionPrices map[string]kernel.Price
}

// ProductLister lists the products of the catalog.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]ProductListing, error)
}
