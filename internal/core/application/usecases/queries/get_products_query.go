// Package queries contains read operations over the order-taking catalog.
package queries

import (
	"errors"
	"strings"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/option"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery lists the products that can be ordered, with their prices. With a
// promotion, Price is the promotion price where the promotion covers the product.
//
// Example:
//
//	query, err := NewGetProductsQuery("HALF")
//	if err != nil {
//	    return err
//	}
//	products, err := NewGetProductsQueryHandler(catalog).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type GetProductsQuery struct {
	promotion option.Option[kernel.PromotionCode]
	guard     guard.ConstructorGuard
}

// NewGetProductsQuery builds the query. A blank promotion lists standard prices.
func NewGetProductsQuery(promotion string) (GetProductsQuery, error) {
	q := GetProductsQuery{
		promotion: option.None[kernel.PromotionCode](),
		guard:     guard.NewConstructorGuard(),
	}
	if strings.TrimSpace(promotion) == "" {
		return q, nil
	}
	code, err := kernel.NewPromotionCode(promotion, "promotion")
	if err != nil {
		return GetProductsQuery{}, err
	}
	q.promotion = option.Some(code)
	return q, nil
}

func (q GetProductsQuery) Promotion() option.Option[kernel.PromotionCode] {
	return q.promotion
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is the read model of one product.
type GetProductsQueryResponse struct {
	Code            string
	Kind            string
	Price           decimal.Decimal
	StandardPrice   decimal.Decimal
	PromotionPrices map[string]decimal.Decimal
}
