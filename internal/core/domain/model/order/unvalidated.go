package order

import "github.com/shopspring/decimal"

// UnvalidatedCustomerInfo is the customer section of an order form, as submitted.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
	VipStatus    string
}

// UnvalidatedAddress is an address as submitted. Empty optional lines mean "absent".
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
	State        string
	Country      string
}

// UnvalidatedOrderLine is one line of an order form. Quantity is interpreted by the
// product kind once the product code is known.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    decimal.Decimal
}

// UnvalidatedOrder is the raw order form, the input of the place-order workflow.
// A blank PromotionCode selects standard pricing.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
	PromotionCode   string
}

// CheckedAddress is an address the address-checking service has confirmed to exist.
// It is still unvalidated against the domain rules.
type CheckedAddress UnvalidatedAddress
