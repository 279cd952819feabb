package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	PriceMin         = decimal.Zero
	PriceMax         = decimal.NewFromInt(1000)
	BillingAmountMin = decimal.Zero
	BillingAmountMax = decimal.NewFromInt(10000)
)

var (
	ErrPriceIsNotConstructed         = errors.New("Price must be created via NewPrice")
	ErrBillingAmountIsNotConstructed = errors.New("BillingAmount must be created via NewBillingAmount")
)

// Price is a monetary amount between PriceMin and PriceMax inclusive. It is used both
// for unit prices and for line prices.
//
// Example:
//
//	unit, _ := kernel.NewPrice(decimal.NewFromInt(10), "price")
//	line, err := unit.Multiply(decimal.NewFromInt(3)) // 30
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice validates raw against [PriceMin, PriceMax]; fieldName defaults to "Price".
func NewPrice(raw decimal.Decimal, fieldName string) (Price, error) {
	if raw.LessThan(PriceMin) || raw.GreaterThan(PriceMax) {
		return Price{}, errs.NewValueIsOutOfRangeError(fieldOr(fieldName, "Price"), raw, PriceMin, PriceMax)
	}
	return Price{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// MustNewPrice is NewPrice for constants known to be in range. It panics otherwise.
func MustNewPrice(raw decimal.Decimal) Price {
	p, err := NewPrice(raw, "")
	if err != nil {
		panic(err)
	}
	return p
}

// Multiply returns the price of qty units at this price. The product must itself be a
// valid Price.
func (p Price) Multiply(qty decimal.Decimal) (Price, error) {
	return NewPrice(p.value.Mul(qty), "Price")
}

func (p Price) Value() decimal.Decimal { return p.value }
func (p Price) String() string         { return p.value.String() }
func (p Price) Validate() error        { return p.guard.Validate(ErrPriceIsNotConstructed) }

// Equal compares amounts, ignoring decimal scale.
func (p Price) Equal(other Price) bool { return p.value.Equal(other.value) }

// BillingAmount is the total to bill for an order, between BillingAmountMin and
// BillingAmountMax inclusive.
type BillingAmount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewBillingAmount(raw decimal.Decimal, fieldName string) (BillingAmount, error) {
	if raw.LessThan(BillingAmountMin) || raw.GreaterThan(BillingAmountMax) {
		return BillingAmount{}, errs.NewValueIsOutOfRangeError(fieldOr(fieldName, "BillingAmount"),
			raw, BillingAmountMin, BillingAmountMax)
	}
	return BillingAmount{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// SumPrices totals prices into a BillingAmount. An empty list sums to zero.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount(total, "BillingAmount")
}

func (b BillingAmount) Value() decimal.Decimal { return b.value }
func (b BillingAmount) String() string         { return b.value.String() }
func (b BillingAmount) Validate() error        { return b.guard.Validate(ErrBillingAmountIsNotConstructed) }

// IsPositive reports whether there is anything to bill.
func (b BillingAmount) IsPositive() bool { return b.value.IsPositive() }

// PdfAttachment is a named document sent to the shipping department. Data is a
// placeholder; no document is rendered.
type PdfAttachment struct {
	name string
	data []byte
}

func NewPdfAttachment(name string, data []byte) PdfAttachment {
	return PdfAttachment{name: name, data: append([]byte(nil), data...)}
}

func (a PdfAttachment) Name() string { return a.name }

// Bytes returns a copy of the attachment content.
func (a PdfAttachment) Bytes() []byte { return append([]byte(nil), a.data...) }
