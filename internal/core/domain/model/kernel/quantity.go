package kernel

import (
	"errors"
	"fmt"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	UnitQuantityMin = 1
	UnitQuantityMax = 1000
)

var (
	KilogramQuantityMin = decimal.RequireFromString("0.05")
	KilogramQuantityMax = decimal.NewFromInt(100)
)

var (
	ErrUnitQuantityIsNotConstructed     = errors.New("UnitQuantity must be created via NewUnitQuantity")
	ErrKilogramQuantityIsNotConstructed = errors.New("KilogramQuantity must be created via NewKilogramQuantity")
)

// OrderQuantity is the amount ordered on a line: a UnitQuantity for widgets or a
// KilogramQuantity for gizmos.
//
//sumtype:decl
type OrderQuantity interface {
	// Value returns the quantity as a decimal, the form used for pricing.
	Value() decimal.Decimal
	Validate() error
	isOrderQuantity()
}

// UnitQuantity is a whole number of items between UnitQuantityMin and UnitQuantityMax.
type UnitQuantity struct {
	value int
	guard guard.ConstructorGuard
}

func NewUnitQuantity(raw int, fieldName string) (UnitQuantity, error) {
	if raw < UnitQuantityMin || raw > UnitQuantityMax {
		return UnitQuantity{}, errs.NewValueIsOutOfRangeError(fieldOr(fieldName, "UnitQuantity"),
			raw, UnitQuantityMin, UnitQuantityMax)
	}
	return UnitQuantity{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (q UnitQuantity) Int() int { return q.value }

func (q UnitQuantity) Value() decimal.Decimal { return decimal.NewFromInt(int64(q.value)) }

func (q UnitQuantity) String() string { return fmt.Sprintf("%d", q.value) }

func (q UnitQuantity) Validate() error { return q.guard.Validate(ErrUnitQuantityIsNotConstructed) }

func (UnitQuantity) isOrderQuantity() {}

// KilogramQuantity is a weight between KilogramQuantityMin and KilogramQuantityMax kg.
type KilogramQuantity struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewKilogramQuantity(raw decimal.Decimal, fieldName string) (KilogramQuantity, error) {
	if raw.LessThan(KilogramQuantityMin) || raw.GreaterThan(KilogramQuantityMax) {
		return KilogramQuantity{}, errs.NewValueIsOutOfRangeError(fieldOr(fieldName, "KilogramQuantity"),
			raw, KilogramQuantityMin, KilogramQuantityMax)
	}
	return KilogramQuantity{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (q KilogramQuantity) Value() decimal.Decimal { return q.value }

func (q KilogramQuantity) String() string { return q.value.String() }

func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}

func (KilogramQuantity) isOrderQuantity() {}

// NewOrderQuantity measures raw according to the kind of product ordered.
//
// Widgets must be whole numbers in [UnitQuantityMin, UnitQuantityMax]; a fractional value
// is a ValueIsInvalidError and an out-of-range one a ValueIsOutOfRangeError. Gizmos must
// weigh between KilogramQuantityMin and KilogramQuantityMax.
//
// Example:
//
//	code, _ := kernel.NewProductCode("W1234", "productCode")
//	qty, err := kernel.NewOrderQuantity(code, decimal.NewFromInt(10), "orderQuantity")
func NewOrderQuantity(code ProductCode, raw decimal.Decimal, fieldName string) (OrderQuantity, error) {
	fieldName = fieldOr(fieldName, "OrderQuantity")
	switch code.(type) {
	case WidgetCode:
		if !raw.IsInteger() {
			return nil, errs.NewValueIsInvalidErrorWithCause(fieldName,
				fmt.Errorf("%s is not a whole number of units", raw))
		}
		if raw.LessThan(decimal.NewFromInt(UnitQuantityMin)) || raw.GreaterThan(decimal.NewFromInt(UnitQuantityMax)) {
			return nil, errs.NewValueIsOutOfRangeError(fieldName, raw, UnitQuantityMin, UnitQuantityMax)
		}
		q, err := NewUnitQuantity(int(raw.IntPart()), fieldName)
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(raw, fieldName)
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(fieldName, fmt.Errorf("unsupported product code %T", code))
	}
}
