package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrWidgetCodeIsNotConstructed = errors.New("WidgetCode must be created via NewWidgetCode")
	ErrGizmoCodeIsNotConstructed  = errors.New("GizmoCode must be created via NewGizmoCode")
)

var (
	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode is either a WidgetCode or a GizmoCode.
//
// The kind of code decides how the ordered quantity is measured: widgets are counted in
// units, gizmos are weighed in kilograms (see NewOrderQuantity).
//
//sumtype:decl
type ProductCode interface {
	fmt.Stringer
	Validate() error
	isProductCode()
}

// WidgetCode is "W" followed by four digits, e.g. "W1234".
type WidgetCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewWidgetCode(raw, fieldName string) (WidgetCode, error) {
	if !widgetCodePattern.MatchString(raw) {
		return WidgetCode{}, errs.NewValueIsInvalidErrorWithCause(fieldOr(fieldName, "WidgetCode"),
			fmt.Errorf("'%s' must be W followed by 4 digits", raw))
	}
	return WidgetCode{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (w WidgetCode) Validate() error { return w.guard.Validate(ErrWidgetCodeIsNotConstructed) }
func (w WidgetCode) String() string  { return w.value }
func (WidgetCode) isProductCode()    {}

// GizmoCode is "G" followed by three digits, e.g. "G123".
type GizmoCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewGizmoCode(raw, fieldName string) (GizmoCode, error) {
	if !gizmoCodePattern.MatchString(raw) {
		return GizmoCode{}, errs.NewValueIsInvalidErrorWithCause(fieldOr(fieldName, "GizmoCode"),
			fmt.Errorf("'%s' must be G followed by 3 digits", raw))
	}
	return GizmoCode{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (g GizmoCode) Validate() error { return g.guard.Validate(ErrGizmoCodeIsNotConstructed) }
func (g GizmoCode) String() string  { return g.value }
func (GizmoCode) isProductCode()    {}

// NewProductCode dispatches on the first character of raw.
//
// Rules:
//   - blank input: ValueIsRequiredError, cause "must not be null or whitespace"
//   - leading "W": validated as a WidgetCode
//   - leading "G": validated as a GizmoCode
//   - anything else: ValueIsInvalidError, cause "format not recognized '<raw>'"
//
// Example:
//
//	code, err := kernel.NewProductCode("G123", "productCode")
//	_, isGizmo := code.(kernel.GizmoCode) // true
func NewProductCode(raw, fieldName string) (ProductCode, error) {
	fieldName = fieldOr(fieldName, "ProductCode")
	switch {
	case strings.TrimSpace(raw) == "":
		return nil, errs.NewValueIsRequiredErrorWithCause(fieldName, errors.New("must not be null or whitespace"))
	case strings.HasPrefix(raw, "W"):
		code, err := NewWidgetCode(raw, fieldName)
		if err != nil {
			return nil, err
		}
		return code, nil
	case strings.HasPrefix(raw, "G"):
		code, err := NewGizmoCode(raw, fieldName)
		if err != nil {
			return nil, err
		}
		return code, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(fieldName, fmt.Errorf("format not recognized '%s'", raw))
	}
}
