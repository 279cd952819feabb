package commands_test

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ProductCodeExists(code kernel.ProductCode) bool {
	args := m.Called(code.String())
	return args.Bool(0)
}

type MockAddressChecker struct{ mock.Mock }

func (m *MockAddressChecker) CheckAddress(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(order.CheckedAddress), args.Error(1)
}

type MockAcknowledgmentSender struct{ mock.Mock }

func (m *MockAcknowledgmentSender) SendAcknowledgment(
	ctx context.Context,
	ack order.OrderAcknowledgement,
) order.SendResult {
	args := m.Called(ctx, ack)
	return args.Get(0).(order.SendResult)
}

// testPriceList prices every product at 10; promotion HALF costs 5 and QUARTER 2.5.
type testPriceList struct{}

func (testPriceList) StandardPrice(kernel.ProductCode) kernel.Price {
	return kernel.MustNewPrice(decimal.NewFromInt(10))
}

func (testPriceList) PromotionPrice(promotion kernel.PromotionCode, _ kernel.ProductCode) (kernel.Price, bool) {
	switch promotion.String() {
	case "HALF":
		return kernel.MustNewPrice(decimal.NewFromInt(5)), true
	case "QUARTER":
		return kernel.MustNewPrice(decimal.RequireFromString("2.5")), true
	default:
		return kernel.Price{}, false
	}
}
