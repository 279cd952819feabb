// Package http is the JSON boundary of the order-taking service.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	badRequestCode    = "badRequest"
	internalErrorCode = "internalError"

	orderFormBodyLimit = "64K"
)

// Server handles HTTP requests and delegates to the application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler

	// Query handlers
	getProductsHandler queries.GetProductsQueryHandler

	api    *APIDocument
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	api *APIDocument,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		getProductsHandler: getProductsHandler,
		api:                api,
		logger:             logger.With("component", "HTTPServer"),
	}
}

// RegisterRoutes mounts the API, the OpenAPI document and the swagger UI on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.PlaceOrder, middleware.BodyLimit(orderFormBodyLimit))
	e.GET("/api/v1/products", s.GetProducts)
	e.GET("/api/v1/openapi.json", s.OpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstanceName)))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPI handles GET /api/v1/openapi.json.
func (s *Server) OpenAPI(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, s.api.JSON())
}

// PlaceOrder handles POST /api/v1/orders. It answers 200 with the events of the
// placed order, 400 for a malformed or invalid form, 422 when the order cannot be
// priced and 502 when a remote service fails.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    badRequestCode,
			Message: "Failed to read request body",
		})
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    badRequestCode,
			Message: "Invalid request body",
		})
	}
	if problems := s.api.CheckOrderForm(raw); len(problems) > 0 {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    order.ValidationErrorCode,
			Message: strings.Join(problems, ", "),
			Details: problems,
		})
	}

	var form OrderFormDto
	if err := json.Unmarshal(body, &form); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    badRequestCode,
			Message: "Invalid order form: " + err.Error(),
		})
	}

	cmd := commands.NewPlaceOrderCommand(form.toUnvalidatedOrder())
	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.placeOrderFailed(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toEventDtos(events))
}

func (s *Server) placeOrderFailed(ctx echo.Context, err error) error {
	var placeOrderErr order.PlaceOrderError
	if !errors.As(err, &placeOrderErr) {
		s.logger.ErrorContext(ctx.Request().Context(), "unexpected place order failure", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorDto{
			Code:    internalErrorCode,
			Message: "Failed to place order",
		})
	}
	status, dto := toErrorDto(placeOrderErr)
	return ctx.JSON(status, dto)
}

// GetProducts handles GET /api/v1/products?promotion=CODE.
func (s *Server) GetProducts(ctx echo.Context) error {
	var promotion *string
	err := runtime.BindQueryParameter("form", true, false, "promotion", ctx.QueryParams(), &promotion)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    badRequestCode,
			Message: "Invalid format for parameter promotion: " + err.Error(),
		})
	}

	var rawPromotion string
	if promotion != nil {
		rawPromotion = *promotion
	}
	query, err := queries.NewGetProductsQuery(rawPromotion)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDto{
			Code:    order.ValidationErrorCode,
			Message: err.Error(),
		})
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "failed to list products", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorDto{
			Code:    internalErrorCode,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]ProductDto, len(products))
	for i, product := range products {
		response[i] = toProductDto(product)
	}
	return ctx.JSON(http.StatusOK, response)
}
