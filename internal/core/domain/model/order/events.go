package order

import "ordertaking/internal/core/domain/model/kernel"

// PlaceOrderEvent is an integration event emitted by a successfully placed order:
// ShippableOrderPlaced, BillableOrderPlaced or OrderAcknowledgementSent.
//
//sumtype:decl
type PlaceOrderEvent interface {
	// Kind is the wire name of the event.
	Kind() string
	isPlaceOrderEvent()
}

const (
	ShippableOrderPlacedKind     = "shippableOrderPlaced"
	BillableOrderPlacedKind      = "billableOrderPlaced"
	OrderAcknowledgementSentKind = "orderAcknowledgementSent"
)

// ShippableOrderLine is what the shipping department needs to know about a line.
type ShippableOrderLine struct {
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
}

func NewShippableOrderLine(productCode kernel.ProductCode, quantity kernel.OrderQuantity) ShippableOrderLine {
	return ShippableOrderLine{productCode: productCode, quantity: quantity}
}

func (l ShippableOrderLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l ShippableOrderLine) Quantity() kernel.OrderQuantity  { return l.quantity }

// ShippableOrderPlaced tells the shipping context to ship the order.
type ShippableOrderPlaced struct {
	orderID         kernel.OrderID
	shippingAddress kernel.Address
	shipmentLines   []ShippableOrderLine
	pdf             kernel.PdfAttachment
}

func NewShippableOrderPlaced(
	orderID kernel.OrderID,
	shippingAddress kernel.Address,
	shipmentLines []ShippableOrderLine,
	pdf kernel.PdfAttachment,
) ShippableOrderPlaced {
	return ShippableOrderPlaced{
		orderID:         orderID,
		shippingAddress: shippingAddress,
		shipmentLines:   append([]ShippableOrderLine(nil), shipmentLines...),
		pdf:             pdf,
	}
}

func (e ShippableOrderPlaced) OrderID() kernel.OrderID         { return e.orderID }
func (e ShippableOrderPlaced) ShippingAddress() kernel.Address { return e.shippingAddress }
func (e ShippableOrderPlaced) Pdf() kernel.PdfAttachment       { return e.pdf }
func (e ShippableOrderPlaced) Kind() string                    { return ShippableOrderPlacedKind }
func (ShippableOrderPlaced) isPlaceOrderEvent()                {}

func (e ShippableOrderPlaced) ShipmentLines() []ShippableOrderLine {
	return append([]ShippableOrderLine(nil), e.shipmentLines...)
}

// BillableOrderPlaced tells the billing context to bill the order.
type BillableOrderPlaced struct {
	orderID        kernel.OrderID
	billingAddress kernel.Address
	amountToBill   kernel.BillingAmount
}

func NewBillableOrderPlaced(
	orderID kernel.OrderID,
	billingAddress kernel.Address,
	amountToBill kernel.BillingAmount,
) BillableOrderPlaced {
	return BillableOrderPlaced{orderID: orderID, billingAddress: billingAddress, amountToBill: amountToBill}
}

func (e BillableOrderPlaced) OrderID() kernel.OrderID            { return e.orderID }
func (e BillableOrderPlaced) BillingAddress() kernel.Address     { return e.billingAddress }
func (e BillableOrderPlaced) AmountToBill() kernel.BillingAmount { return e.amountToBill }
func (e BillableOrderPlaced) Kind() string                       { return BillableOrderPlacedKind }
func (BillableOrderPlaced) isPlaceOrderEvent()                   {}

// OrderAcknowledgementSent records that the customer was sent an acknowledgment.
type OrderAcknowledgementSent struct {
	orderID      kernel.OrderID
	emailAddress kernel.EmailAddress
}

func NewOrderAcknowledgementSent(orderID kernel.OrderID, emailAddress kernel.EmailAddress) OrderAcknowledgementSent {
	return OrderAcknowledgementSent{orderID: orderID, emailAddress: emailAddress}
}

func (e OrderAcknowledgementSent) OrderID() kernel.OrderID           { return e.orderID }
func (e OrderAcknowledgementSent) EmailAddress() kernel.EmailAddress { return e.emailAddress }
func (e OrderAcknowledgementSent) Kind() string                      { return OrderAcknowledgementSentKind }
func (OrderAcknowledgementSent) isPlaceOrderEvent()                  {}
