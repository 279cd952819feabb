package queries_test

import (
	"context"
	"errors"
	"testing"

	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductLister struct{ mock.Mock }

func (m *MockProductLister) ListProducts(ctx context.Context) ([]ports.ProductListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ProductListing), args.Error(1)
}

func listing(t *testing.T, code string, price int64, promotions map[string]int64) ports.ProductListing {
	t.Helper()
	productCode, err := kernel.NewProductCode(code, "productCode")
	require.NoError(t, err)
	promotionPrices := make(map[string]kernel.Price, len(promotions))
	for promotion, p := range promotions {
		promotionPrices[promotion] = kernel.MustNewPrice(decimal.NewFromInt(p))
	}
	return ports.ProductListing{
		Code:            productCode,
		StandardPrice:   kernel.MustNewPrice(decimal.NewFromInt(price)),
		PromotionPrices: promotionPrices,
	}
}

func TestGetProductsQueryHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	lister := new(MockProductLister)
	lister.On("ListProducts", ctx).Return([]ports.ProductListing{
		listing(t, "W1234", 10, map[string]int64{"HALF": 5}),
		listing(t, "G123", 20, nil),
	}, nil)
	handler := queries.NewGetProductsQueryHandler(lister)
	query, err := queries.NewGetProductsQuery("")
	require.NoError(t, err)

	// Act
	products, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, decimal.NewFromInt(20).Equal(products[0].Price))
	assert.True(t, decimal.NewFromInt(10).Equal(products[1].Price))

	assert.Equal(t, "G123", products[0].Code)
	assert.Equal(t, "gizmo", products[0].Kind)
	assert.True(t, decimal.NewFromInt(20).Equal(products[0].StandardPrice))
	assert.Empty(t, products[0].PromotionPrices)

	assert.Equal(t, "W1234", products[1].Code)
	assert.Equal(t, "widget", products[1].Kind)
	assert.True(t, decimal.NewFromInt(5).Equal(products[1].PromotionPrices["HALF"]))
	lister.AssertExpectations(t)
}

func TestGetProductsQueryHandler_Handle_PromotionPrice(t *testing.T) {
	// Arrange
	ctx := context.Background()
	lister := new(MockProductLister)
	lister.On("ListProducts", ctx).Return([]ports.ProductListing{
		listing(t, "W1234", 10, map[string]int64{"HALF": 5}),
		listing(t, "G123", 20, nil),
	}, nil)
	handler := queries.NewGetProductsQueryHandler(lister)
	query, err := queries.NewGetProductsQuery("HALF")
	require.NoError(t, err)

	// Act
	products, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, decimal.NewFromInt(20).Equal(products[0].Price))
	assert.True(t, decimal.NewFromInt(5).Equal(products[1].Price))
	assert.True(t, decimal.NewFromInt(10).Equal(products[1].StandardPrice))
}

func TestGetProductsQueryHandler_Handle_ListerError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	lister := new(MockProductLister)
	expected := errors.New("catalog unavailable")
	lister.On("ListProducts", ctx).Return(nil, expected)
	handler := queries.NewGetProductsQueryHandler(lister)
	query, err := queries.NewGetProductsQuery("")
	require.NoError(t, err)

	// Act
	products, err := handler.Handle(ctx, query)

	// Assert
	require.ErrorIs(t, err, expected)
	assert.Nil(t, products)
}

func TestGetProductsQueryHandler_Handle_QueryNotConstructed(t *testing.T) {
	// Arrange
	lister := new(MockProductLister)
	handler := queries.NewGetProductsQueryHandler(lister)

	// Act
	_, err := handler.Handle(context.Background(), queries.GetProductsQuery{})

	// Assert
	require.ErrorIs(t, err, queries.ErrGetProductsQueryIsNotConstructed)
	lister.AssertNotCalled(t, "ListProducts", mock.Anything)
}
