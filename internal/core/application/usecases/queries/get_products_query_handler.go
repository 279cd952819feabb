package queries

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/option"

	"github.com/shopspring/decimal"
)

// GetProductsQueryHandler reads the product list from the catalog, sorted by code.
type GetProductsQueryHandler struct {
	lister ports.ProductLister
}

func NewGetProductsQueryHandler(lister ports.ProductLister) GetProductsQueryHandler {
	return GetProductsQueryHandler{lister: lister}
}

func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings, err := h.lister.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]GetProductsQueryResponse, 0, len(listings))
	for _, listing := range listings {
		products = append(products, toResponse(listing, query.Promotion()))
	}
	slices.SortFunc(products, func(a, b GetProductsQueryResponse) int {
		return strings.Compare(a.Code, b.Code)
	})
	return products, nil
}

func toResponse(listing ports.ProductListing, promotion option.Option[kernel.PromotionCode]) GetProductsQueryResponse {
	price := listing.StandardPrice.Value()
	if code, ok := promotion.Get(); ok {
		if promoted, found := listing.PromotionPrices[code.String()]; found {
			price = promoted.Value()
		}
	}

	promotions := make(map[string]decimal.Decimal, len(listing.PromotionPrices))
	for promotion, price := range listing.PromotionPrices {
		promotions[promotion] = price.Value()
	}
	return GetProductsQueryResponse{
		Code:            listing.Code.String(),
		Kind:            productKind(listing.Code),
		Price:           price,
		StandardPrice:   listing.StandardPrice.Value(),
		PromotionPrices: promotions,
	}
}

func productKind(code kernel.ProductCode) string {
	switch code.(type) {
	case kernel.WidgetCode:
		return "widget"
	case kernel.GizmoCode:
		return "gizmo"
	default:
		return "unknown"
	}
}
