package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrValidatedOrderLineIsNotConstructed = errors.New("ValidatedOrderLine must be created via NewValidatedOrderLine")
	ErrValidatedOrderIsNotConstructed     = errors.New("ValidatedOrder must be created via NewValidatedOrder")
)

// ValidatedOrderLine is an order line whose id, product and quantity passed validation
// and whose product exists in the catalog.
type ValidatedOrderLine struct { //nolint:recvcheck //using for validation
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	guard       guard.ConstructorGuard
}

func NewValidatedOrderLine(
	orderLineID kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
) (ValidatedOrderLine, error) {
	line := ValidatedOrderLine{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		line.setOrderLineID(orderLineID),
		line.setProductCode(productCode),
		line.setQuantity(quantity),
	); err != nil {
		return ValidatedOrderLine{}, err
	}
	return line, nil
}

func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }
func (l ValidatedOrderLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity  { return l.quantity }

func (l *ValidatedOrderLine) setOrderLineID(v kernel.OrderLineID) error {
	if err := v.Validate(); err != nil {
		return err
	}
	l.orderLineID = v
	return nil
}

func (l *ValidatedOrderLine) setProductCode(v kernel.ProductCode) error {
	if v == nil {
		return errs.NewValueIsRequiredError("productCode")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	l.productCode = v
	return nil
}

func (l *ValidatedOrderLine) setQuantity(v kernel.OrderQuantity) error {
	if v == nil {
		return errs.NewValueIsRequiredError("orderQuantity")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	l.quantity = v
	return nil
}

// ValidatedOrder is an order whose every field satisfies the domain rules, with both
// addresses confirmed to exist. It is produced once by the validation stage and never
// changes.
type ValidatedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    kernel.CustomerInfo
	shippingAddress kernel.Address
	billingAddress  kernel.Address
	lines           []ValidatedOrderLine
	pricingMethod   PricingMethod
	guard           guard.ConstructorGuard
}

// NewValidatedOrder assembles a ValidatedOrder. The lines slice is copied.
//
// Parameters:
//   - orderID: the order identifier
//   - customerInfo: who placed the order
//   - shippingAddress, billingAddress: confirmed addresses
//   - lines: validated lines; may be empty
//   - pricingMethod: Standard or Promotion
//
// Returns:
//   - ValidatedOrder: the assembled order
//   - error: joined errors for every part that was not constructed
func NewValidatedOrder(
	orderID kernel.OrderID,
	customerInfo kernel.CustomerInfo,
	shippingAddress, billingAddress kernel.Address,
	lines []ValidatedOrderLine,
	pricingMethod PricingMethod,
) (ValidatedOrder, error) {
	o := ValidatedOrder{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		o.setOrderID(orderID),
		o.setCustomerInfo(customerInfo),
		o.setShippingAddress(shippingAddress),
		o.setBillingAddress(billingAddress),
		o.setLines(lines),
		o.setPricingMethod(pricingMethod),
	); err != nil {
		return ValidatedOrder{}, err
	}
	return o, nil
}

func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

func (o ValidatedOrder) OrderID() kernel.OrderID           { return o.orderID }
func (o ValidatedOrder) CustomerInfo() kernel.CustomerInfo { return o.customerInfo }
func (o ValidatedOrder) ShippingAddress() kernel.Address   { return o.shippingAddress }
func (o ValidatedOrder) BillingAddress() kernel.Address    { return o.billingAddress }
func (o ValidatedOrder) PricingMethod() PricingMethod      { return o.pricingMethod }
func (o ValidatedOrder) Lines() []ValidatedOrderLine       { return append([]ValidatedOrderLine(nil), o.lines...) }

func (o *ValidatedOrder) setOrderID(v kernel.OrderID) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.orderID = v
	return nil
}

func (o *ValidatedOrder) setCustomerInfo(v kernel.CustomerInfo) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.customerInfo = v
	return nil
}

func (o *ValidatedOrder) setShippingAddress(v kernel.Address) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.shippingAddress = v
	return nil
}

func (o *ValidatedOrder) setBillingAddress(v kernel.Address) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.billingAddress = v
	return nil
}

func (o *ValidatedOrder) setLines(lines []ValidatedOrderLine) error {
	joined := make([]error, 0, len(lines))
	for _, line := range lines {
		joined = append(joined, line.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}
	o.lines = append([]ValidatedOrderLine(nil), lines...)
	return nil
}

func (o *ValidatedOrder) setPricingMethod(v PricingMethod) error {
	if v == nil {
		return errs.NewValueIsRequiredError("pricingMethod")
	}
	o.pricingMethod = v
	return nil
}
