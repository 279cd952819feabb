package http

import (
	"ordertaking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type CustomerInfoDto struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	VipStatus    string `json:"vipStatus"`
}

type AddressDto struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

type OrderLineDto struct {
	OrderLineID string          `json:"orderLineId"`
	ProductCode string          `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// OrderFormDto is the request body of POST /api/v1/orders.
type OrderFormDto struct {
	OrderID         string          `json:"orderId"`
	CustomerInfo    CustomerInfoDto `json:"customerInfo"`
	ShippingAddress AddressDto      `json:"shippingAddress"`
	BillingAddress  AddressDto      `json:"billingAddress"`
	Lines           []OrderLineDto  `json:"lines"`
	PromotionCode   string          `json:"promotionCode,omitempty"`
}

func (dto OrderFormDto) toUnvalidatedOrder() order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}
	return order.UnvalidatedOrder{
		OrderID: dto.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    dto.CustomerInfo.FirstName,
			LastName:     dto.CustomerInfo.LastName,
			EmailAddress: dto.CustomerInfo.EmailAddress,
			VipStatus:    dto.CustomerInfo.VipStatus,
		},
		ShippingAddress: dto.ShippingAddress.toUnvalidatedAddress(),
		BillingAddress:  dto.BillingAddress.toUnvalidatedAddress(),
		Lines:           lines,
		PromotionCode:   dto.PromotionCode,
	}
}

func (dto AddressDto) toUnvalidatedAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		AddressLine3: dto.AddressLine3,
		AddressLine4: dto.AddressLine4,
		City:         dto.City,
		ZipCode:      dto.ZipCode,
		State:        dto.State,
		Country:      dto.Country,
	}
}
