package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/address"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/notification"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrderForm = `{
	"orderId": "123",
	"customerInfo": {
		"firstName": "Albert",
		"lastName": "Einstein",
		"emailAddress": "albert@example.com",
		"vipStatus": "normal"
	},
	"shippingAddress": {
		"addressLine1": "123 Main St",
		"city": "Springfield",
		"zipCode": "12345",
		"state": "NY",
		"country": "US"
	},
	"billingAddress": {
		"addressLine1": "123 Main St",
		"city": "Springfield",
		"zipCode": "12345",
		"state": "NY",
		"country": "US"
	},
	"lines": [
		{"orderLineId": "1", "productCode": "W1234", "quantity": 2},
		{"orderLineId": "2", "productCode": "G123", "quantity": 1.5}
	]
}`

func newTestEcho(t *testing.T, checker ports.AddressChecker) *echo.Echo {
	t.Helper()

	c, err := catalog.NewDefault()
	require.NoError(t, err)
	api, err := httpadapter.LoadAPIDocument(context.Background())
	require.NoError(t, err)

	placeOrder := commands.NewPlaceOrderCommandHandler(
		c,
		checker,
		c,
		services.NewShippingCalculator(),
		notification.NewLetterRenderer("orders@widgets.example", nil),
		notification.NewLoggingSender(true, "orders@widgets.example", nil),
		nil,
	)
	server := httpadapter.NewServer(placeOrder, queries.NewGetProductsQueryHandler(c), api, nil)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorDto {
	t.Helper()
	var dto httpadapter.ErrorDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return dto
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_PlaceOrder_Success(t *testing.T) {
	// Arrange
	e := newTestEcho(t, address.NewPassThroughChecker())

	// Act
	rec := serve(e, http.MethodPost, "/api/v1/orders", validOrderForm)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var events []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 3)
	assert.Contains(t, events[0], order.OrderAcknowledgementSentKind)
	assert.Contains(t, events[1], order.ShippableOrderPlacedKind)
	assert.Contains(t, events[2], order.BillableOrderPlacedKind)

	var shipment httpadapter.ShippableOrderPlacedDto
	require.NoError(t, json.Unmarshal(events[1][order.ShippableOrderPlacedKind], &shipment))
	assert.Equal(t, "123", shipment.OrderID)
	assert.Equal(t, "Order123", shipment.Pdf.Name)
	require.Len(t, shipment.ShipmentLines, 2)
	assert.Equal(t, "1.5", shipment.ShipmentLines[1].Quantity.String())

	var bill httpadapter.BillableOrderPlacedDto
	require.NoError(t, json.Unmarshal(events[2][order.BillableOrderPlacedKind], &bill))
	assert.Equal(t, "35", bill.AmountToBill.String())
	assert.Equal(t, "Springfield", bill.BillingAddress.City)
}

func TestServer_PlaceOrder_MalformedBody(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())

	rec := serve(e, http.MethodPost, "/api/v1/orders", `{"orderId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "badRequest", decodeError(t, rec).Code)
}

func TestServer_PlaceOrder_BodyTooLarge(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())
	body := `{"orderId":"` + strings.Repeat("1", 70*1024) + `"}`

	rec := serve(e, http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_PlaceOrder_SchemaViolations(t *testing.T) {
	// Arrange
	e := newTestEcho(t, address.NewPassThroughChecker())
	body := `{"orderId": "1", "lines": [{"orderLineId": "1", "productCode": "W1234", "quantity": "two"}]}`

	// Act
	rec := serve(e, http.MethodPost, "/api/v1/orders", body)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	dto := decodeError(t, rec)
	assert.Equal(t, order.ValidationErrorCode, dto.Code)
	assert.GreaterOrEqual(t, len(dto.Details), 4)
	assert.Contains(t, dto.Message, "customerInfo")
	assert.Contains(t, dto.Message, "billingAddress")
	assert.Contains(t, dto.Message, "quantity")
	assert.Equal(t, strings.Join(dto.Details, ", "), dto.Message)
}

func TestServer_PlaceOrder_ValidationError(t *testing.T) {
	// Arrange
	e := newTestEcho(t, address.NewPassThroughChecker())
	body := strings.Replace(validOrderForm, "albert@example.com", "albert", 1)
	body = strings.Replace(body, `"zipCode": "12345"`, `"zipCode": "1234"`, 1)

	// Act
	rec := serve(e, http.MethodPost, "/api/v1/orders", body)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	dto := decodeError(t, rec)
	assert.Equal(t, order.ValidationErrorCode, dto.Code)
	require.Len(t, dto.Details, 2)
	assert.Contains(t, dto.Details[0], "emailAddress")
	assert.Contains(t, dto.Details[1], "zipCode")
	assert.Equal(t, dto.Details[0], dto.Message)
}

func TestServer_PlaceOrder_PricingError(t *testing.T) {
	// Arrange
	e := newTestEcho(t, address.NewPassThroughChecker())
	body := strings.Replace(validOrderForm, `"quantity": 2`, `"quantity": 1000`, 1)

	// Act
	rec := serve(e, http.MethodPost, "/api/v1/orders", body)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, order.PricingErrorCode, decodeError(t, rec).Code)
}

func TestServer_PlaceOrder_RemoteServiceError(t *testing.T) {
	// Arrange
	checker := ports.AddressCheckerFunc(func(context.Context, order.UnvalidatedAddress) (order.CheckedAddress, error) {
		return order.CheckedAddress{}, errors.New("address service unavailable")
	})
	e := newTestEcho(t, checker)

	// Act
	rec := serve(e, http.MethodPost, "/api/v1/orders", validOrderForm)

	// Assert
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	dto := decodeError(t, rec)
	assert.Equal(t, order.RemoteServiceErrorCode, dto.Code)
	assert.Contains(t, dto.Message, "AddressCheckingService")
}

func TestServer_GetProducts(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())

	t.Run("standard_prices", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/products", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var products []httpadapter.ProductDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 2)
		assert.Equal(t, "G123", products[0].Code)
		assert.Equal(t, "gizmo", products[0].Kind)
		assert.Equal(t, "W1234", products[1].Code)
		assert.Equal(t, "10", products[1].Price.String())
		assert.Equal(t, "2.5", products[1].PromotionPrices["QUARTER"].String())
	})

	t.Run("promotion_prices", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/products?promotion=HALF", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var products []httpadapter.ProductDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 2)
		assert.Equal(t, "5", products[1].Price.String())
		assert.Equal(t, "10", products[1].StandardPrice.String())
	})

	t.Run("unknown_promotion_falls_back_to_standard_prices", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/products?promotion=NOPE", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var products []httpadapter.ProductDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 2)
		assert.Equal(t, "10", products[0].Price.String())
		assert.Equal(t, "10", products[1].Price.String())
	})
}

func TestServer_OpenAPI(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())

	rec := serve(e, http.MethodGet, "/api/v1/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestServer_SwaggerDoc(t *testing.T) {
	e := newTestEcho(t, address.NewPassThroughChecker())

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order Taking")
}
