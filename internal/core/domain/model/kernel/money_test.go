package kernel_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"0", true},
		{"1000", true},
		{"-0.01", false},
		{"1000.01", false},
		{"1001", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := kernel.NewPrice(decimal.RequireFromString(tt.raw), "price")

			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestMustNewPrice(t *testing.T) {
	assert.NotPanics(t, func() { kernel.MustNewPrice(decimal.NewFromInt(10)) })
	assert.Panics(t, func() { kernel.MustNewPrice(decimal.NewFromInt(-1)) })
}

func TestPrice_Multiply(t *testing.T) {
	unit := kernel.MustNewPrice(decimal.NewFromInt(10))

	line, err := unit.Multiply(decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.True(t, line.Equal(kernel.MustNewPrice(decimal.NewFromInt(25))))

	_, err = unit.Multiply(decimal.NewFromInt(101))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestSumPrices(t *testing.T) {
	t.Run("sums", func(t *testing.T) {
		got, err := kernel.SumPrices([]kernel.Price{
			kernel.MustNewPrice(decimal.NewFromInt(100)),
			kernel.MustNewPrice(decimal.RequireFromString("2.5")),
		})

		require.NoError(t, err)
		assert.True(t, got.Value().Equal(decimal.RequireFromString("102.5")))
		assert.True(t, got.IsPositive())
	})

	t.Run("empty is zero", func(t *testing.T) {
		got, err := kernel.SumPrices(nil)

		require.NoError(t, err)
		assert.True(t, got.Value().IsZero())
		assert.False(t, got.IsPositive())
	})

	t.Run("over the billing limit", func(t *testing.T) {
		prices := make([]kernel.Price, 11)
		for i := range prices {
			prices[i] = kernel.MustNewPrice(decimal.NewFromInt(1000))
		}

		_, err := kernel.SumPrices(prices)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewBillingAmount(t *testing.T) {
	_, err := kernel.NewBillingAmount(decimal.NewFromInt(10000), "amountToBill")
	require.NoError(t, err)

	_, err = kernel.NewBillingAmount(decimal.NewFromInt(10001), "amountToBill")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPdfAttachment(t *testing.T) {
	data := []byte{1, 2}
	pdf := kernel.NewPdfAttachment("Order123", data)
	data[0] = 9

	assert.Equal(t, "Order123", pdf.Name())
	assert.Equal(t, []byte{1, 2}, pdf.Bytes())
}
