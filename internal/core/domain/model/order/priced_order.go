package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var ErrPricedOrderIsNotConstructed = errors.New("PricedOrder must be created via NewPricedOrder")

// PricedOrderLine is a line of a priced order: a PricedOrderProductLine or a CommentLine.
//
//sumtype:decl
type PricedOrderLine interface {
	isPricedOrderLine()
}

// PricedOrderProductLine is a validated line with its computed price.
type PricedOrderProductLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	linePrice   kernel.Price
}

func NewPricedOrderProductLine(line ValidatedOrderLine, linePrice kernel.Price) PricedOrderProductLine {
	return PricedOrderProductLine{
		orderLineID: line.OrderLineID(),
		productCode: line.ProductCode(),
		quantity:    line.Quantity(),
		linePrice:   linePrice,
	}
}

func (l PricedOrderProductLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }
func (l PricedOrderProductLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l PricedOrderProductLine) Quantity() kernel.OrderQuantity  { return l.quantity }
func (l PricedOrderProductLine) LinePrice() kernel.Price         { return l.linePrice }
func (PricedOrderProductLine) isPricedOrderLine()                {}

// CommentLine is a free-text line, such as the note that a promotion was applied.
// It carries no price.
type CommentLine struct {
	text string
}

func NewCommentLine(text string) CommentLine { return CommentLine{text: text} }

func (c CommentLine) Text() string     { return c.text }
func (CommentLine) isPricedOrderLine() {}

// PricedOrder is a validated order with a price on every product line and the total
// amount to bill.
type PricedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    kernel.CustomerInfo
	shippingAddress kernel.Address
	billingAddress  kernel.Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	pricingMethod   PricingMethod
	guard           guard.ConstructorGuard
}

// NewPricedOrder carries the identity, customer and addresses of validated over to the
// priced form. The lines slice is copied.
func NewPricedOrder(
	validated ValidatedOrder,
	lines []PricedOrderLine,
	amountToBill kernel.BillingAmount,
) (PricedOrder, error) {
	if err := validated.Validate(); err != nil {
		return PricedOrder{}, err
	}
	o := PricedOrder{
		orderID:         validated.OrderID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		pricingMethod:   validated.PricingMethod(),
		guard:           guard.NewConstructorGuard(),
	}
	if err := errors.Join(o.setAmountToBill(amountToBill), o.setLines(lines)); err != nil {
		return PricedOrder{}, err
	}
	return o, nil
}

func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

func (o PricedOrder) OrderID() kernel.OrderID            { return o.orderID }
func (o PricedOrder) CustomerInfo() kernel.CustomerInfo  { return o.customerInfo }
func (o PricedOrder) ShippingAddress() kernel.Address    { return o.shippingAddress }
func (o PricedOrder) BillingAddress() kernel.Address     { return o.billingAddress }
func (o PricedOrder) AmountToBill() kernel.BillingAmount { return o.amountToBill }
func (o PricedOrder) PricingMethod() PricingMethod       { return o.pricingMethod }
func (o PricedOrder) Lines() []PricedOrderLine           { return append([]PricedOrderLine(nil), o.lines...) }

func (o *PricedOrder) setAmountToBill(v kernel.BillingAmount) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.amountToBill = v
	return nil
}

func (o *PricedOrder) setLines(lines []PricedOrderLine) error {
	for _, line := range lines {
		if line == nil {
			return errs.NewValueIsRequiredError("pricedOrderLine")
		}
	}
	o.lines = append([]PricedOrderLine(nil), lines...)
	return nil
}
