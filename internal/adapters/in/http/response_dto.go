package http

import (
	"encoding/json"
	"net/http"

	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/option"
)

// PlaceOrderEventDto holds a single event keyed by its kind.
type PlaceOrderEventDto map[string]any

type ShippableOrderLineDto struct {
	ProductCode string      `json:"productCode"`
	Quantity    json.Number `json:"quantity"`
}

type PdfDto struct {
	Name  string `json:"name"`
	Bytes []byte `json:"bytes"`
}

type ShippableOrderPlacedDto struct {
	OrderID         string                  `json:"orderId"`
	ShippingAddress AddressDto              `json:"shippingAddress"`
	ShipmentLines   []ShippableOrderLineDto `json:"shipmentLines"`
	Pdf             PdfDto                  `json:"pdf"`
}

type BillableOrderPlacedDto struct {
	OrderID        string      `json:"orderId"`
	BillingAddress AddressDto  `json:"billingAddress"`
	AmountToBill   json.Number `json:"amountToBill"`
}

type OrderAcknowledgmentSentDto struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

// ErrorDto is the body of every failed response.
type ErrorDto struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ProductDto struct {
	Code            string                 `json:"code"`
	Kind            string                 `json:"kind"`
	Price           json.Number            `json:"price"`
	StandardPrice   json.Number            `json:"standardPrice"`
	PromotionPrices map[string]json.Number `json:"promotionPrices,omitempty"`
}

func toEventDtos(events []order.PlaceOrderEvent) []PlaceOrderEventDto {
	dtos := make([]PlaceOrderEventDto, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, PlaceOrderEventDto{event.Kind(): toEventDto(event)})
	}
	return dtos
}

func toEventDto(event order.PlaceOrderEvent) any {
	switch e := event.(type) {
	case order.ShippableOrderPlaced:
		lines := make([]ShippableOrderLineDto, 0, len(e.ShipmentLines()))
		for _, line := range e.ShipmentLines() {
			lines = append(lines, ShippableOrderLineDto{
				ProductCode: line.ProductCode().String(),
				Quantity:    json.Number(line.Quantity().Value().String()),
			})
		}
		return ShippableOrderPlacedDto{
			OrderID:         e.OrderID().String(),
			ShippingAddress: fromAddress(e.ShippingAddress()),
			ShipmentLines:   lines,
			Pdf:             PdfDto{Name: e.Pdf().Name(), Bytes: e.Pdf().Bytes()},
		}
	case order.BillableOrderPlaced:
		return BillableOrderPlacedDto{
			OrderID:        e.OrderID().String(),
			BillingAddress: fromAddress(e.BillingAddress()),
			AmountToBill:   json.Number(e.AmountToBill().String()),
		}
	case order.OrderAcknowledgementSent:
		return OrderAcknowledgmentSentDto{
			OrderID:      e.OrderID().String(),
			EmailAddress: e.EmailAddress().String(),
		}
	default:
		return nil
	}
}

func fromAddress(a kernel.Address) AddressDto {
	return AddressDto{
		AddressLine1: a.AddressLine1().String(),
		AddressLine2: optionalLine(a.AddressLine2()),
		AddressLine3: optionalLine(a.AddressLine3()),
		AddressLine4: optionalLine(a.AddressLine4()),
		City:         a.City().String(),
		ZipCode:      a.ZipCode().String(),
		State:        a.State().String(),
		Country:      a.Country().String(),
	}
}

func optionalLine(line option.Option[kernel.String50]) string {
	return line.OrElse(kernel.String50{}).String()
}

// toErrorDto maps a workflow error to its status code and body.
func toErrorDto(err order.PlaceOrderError) (int, ErrorDto) {
	switch e := err.(type) {
	case *order.ValidationError:
		return http.StatusBadRequest, ErrorDto{Code: e.Code(), Message: e.Message, Details: e.Details}
	case *order.PricingError:
		return http.StatusUnprocessableEntity, ErrorDto{Code: e.Code(), Message: e.Message}
	case *order.RemoteServiceError:
		return http.StatusBadGateway, ErrorDto{Code: e.Code(), Message: e.Error()}
	default:
		return http.StatusInternalServerError, ErrorDto{Code: err.Code(), Message: err.Error()}
	}
}

func toProductDto(p queries.GetProductsQueryResponse) ProductDto {
	var promotions map[string]json.Number
	if len(p.PromotionPrices) > 0 {
		promotions = make(map[string]json.Number, len(p.PromotionPrices))
		for promotion, price := range p.PromotionPrices {
			promotions[promotion] = json.Number(price.String())
		}
	}
	return ProductDto{
		Code:            p.Code,
		Kind:            p.Kind,
		Price:           json.Number(p.Price.String()),
		StandardPrice:   json.Number(p.StandardPrice.String()),
		PromotionPrices: promotions,
	}
}
