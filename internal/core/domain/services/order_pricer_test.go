package services_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPricer_PriceOrder(t *testing.T) {
	t.Run("standard pricing multiplies quantity by unit price", func(t *testing.T) {
		vo := validatedOrder(t, orderFixture{lines: []order.ValidatedOrderLine{
			line(t, "1", "W1234", "10"),
			line(t, "2", "G123", "2.5"),
		}})

		po, err := services.NewOrderPricer(fixedPrices("10")).PriceOrder(vo)

		require.NoError(t, err)
		lines := po.Lines()
		require.Len(t, lines, 2)
		assert.True(t, lines[0].(order.PricedOrderProductLine).LinePrice().Equal(price("100")))
		assert.True(t, lines[1].(order.PricedOrderProductLine).LinePrice().Equal(price("25")))
		assert.True(t, po.AmountToBill().Value().Equal(decimal.NewFromInt(125)))
	})

	t.Run("promotion appends comment line", func(t *testing.T) {
		vo := validatedOrder(t, orderFixture{
			method: promotion(t, "HALF"),
			lines:  []order.ValidatedOrderLine{line(t, "1", "W1234", "2")},
		})

		po, err := services.NewOrderPricer(fixedPrices("10")).PriceOrder(vo)

		require.NoError(t, err)
		lines := po.Lines()
		require.Len(t, lines, 2)
		assert.True(t, lines[0].(order.PricedOrderProductLine).LinePrice().Equal(price("10")))
		assert.Equal(t, order.NewCommentLine("Applied promotion HALF"), lines[1])
		assert.True(t, po.AmountToBill().Value().Equal(decimal.NewFromInt(10)))
	})

	t.Run("empty order bills zero", func(t *testing.T) {
		po, err := services.NewOrderPricer(fixedPrices("10")).PriceOrder(validatedOrder(t, orderFixture{}))

		require.NoError(t, err)
		assert.Empty(t, po.Lines())
		assert.True(t, po.AmountToBill().Value().IsZero())
	})

	t.Run("line price over the limit is a pricing error", func(t *testing.T) {
		vo := validatedOrder(t, orderFixture{lines: []order.ValidatedOrderLine{
			line(t, "1", "W1234", "1000"),
			line(t, "2", "W1234", "999"),
		}})

		_, err := services.NewOrderPricer(fixedPrices("10")).PriceOrder(vo)

		var pricingErr *order.PricingError
		require.ErrorAs(t, err, &pricingErr)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, pricingErr.Message, "line 1")
		assert.NotContains(t, pricingErr.Message, "line 2")
	})

	t.Run("total over the billing limit is a pricing error", func(t *testing.T) {
		var lines []order.ValidatedOrderLine
		for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"} {
			lines = append(lines, line(t, id, "W1234", "100"))
		}

		_, err := services.NewOrderPricer(fixedPrices("10")).PriceOrder(validatedOrder(t, orderFixture{lines: lines}))

		var pricingErr *order.PricingError
		require.ErrorAs(t, err, &pricingErr)
		assert.Contains(t, pricingErr.Message, "BillingAmount")
	})

	t.Run("pricing is idempotent", func(t *testing.T) {
		vo := validatedOrder(t, orderFixture{
			method: promotion(t, "HALF"),
			lines:  []order.ValidatedOrderLine{line(t, "1", "W1234", "3"), line(t, "2", "G123", "1.5")},
		})
		pricer := services.NewOrderPricer(fixedPrices("10"))

		first, err := pricer.PriceOrder(vo)
		require.NoError(t, err)
		second, err := pricer.PriceOrder(vo)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
