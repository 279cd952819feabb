package services

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/combine"

	"github.com/shopspring/decimal"
)

var zeroPrice = kernel.MustNewPrice(decimal.Zero)

// OrderPricer prices validated orders.
//
// Pricing stops at the first failure: a line whose price leaves the Price range, or a
// total that leaves the BillingAmount range, yields an *order.PricingError.
//
// Example:
//
//	pricer := services.NewOrderPricer(services.NewPricingFunction(standard, promotion))
//	priced, err := pricer.PriceOrder(validated)
type OrderPricer struct {
	getPricingFunction GetPricingFunction
}

func NewOrderPricer(getPricingFunction GetPricingFunction) OrderPricer {
	return OrderPricer{getPricingFunction: getPricingFunction}
}

// PriceOrder prices every line with the source selected by the order's pricing method,
// appends a comment line for promotions and totals the product lines.
//
// Returns:
//   - order.PricedOrder: the priced order
//   - error: *order.PricingError on failure
func (p OrderPricer) PriceOrder(validated order.ValidatedOrder) (order.PricedOrder, error) {
	getProductPrice := p.getPricingFunction(validated.PricingMethod())

	lines := combine.Map(
		combine.Traverse(validated.Lines(), func(line order.ValidatedOrderLine) combine.Result[order.PricedOrderLine] {
			return toPricedOrderLine(getProductPrice, line)
		}),
		func(lines []order.PricedOrderLine) []order.PricedOrderLine {
			return addCommentLine(validated.PricingMethod(), lines)
		},
	)
	amountToBill := combine.Then(lines, func(lines []order.PricedOrderLine) combine.Result[kernel.BillingAmount] {
		return combine.Of(kernel.SumPrices(linePrices(lines)))
	})

	pricedLines, amount, err := combine.First2(lines, amountToBill)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err)
	}

	priced, err := order.NewPricedOrder(validated, pricedLines, amount)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err)
	}
	return priced, nil
}

func toPricedOrderLine(getProductPrice GetProductPrice, line order.ValidatedOrderLine) combine.Result[order.PricedOrderLine] {
	linePrice, err := getProductPrice(line.ProductCode()).Multiply(line.Quantity().Value())
	if err != nil {
		return combine.Fail[order.PricedOrderLine](fmt.Errorf("line %s: %w", line.OrderLineID(), err))
	}
	return combine.Ok[order.PricedOrderLine](order.NewPricedOrderProductLine(line, linePrice))
}

func addCommentLine(method order.PricingMethod, lines []order.PricedOrderLine) []order.PricedOrderLine {
	switch m := method.(type) {
	case order.Promotion:
		return append(lines, order.NewCommentLine(fmt.Sprintf("Applied promotion %s", m.Code())))
	default:
		return lines
	}
}

// linePrices lists the price of every line; comment lines cost nothing.
func linePrices(lines []order.PricedOrderLine) []kernel.Price {
	prices := make([]kernel.Price, 0, len(lines))
	for _, line := range lines {
		switch l := line.(type) {
		case order.PricedOrderProductLine:
			prices = append(prices, l.LinePrice())
		case order.CommentLine:
			prices = append(prices, zeroPrice)
		}
	}
	return prices
}
