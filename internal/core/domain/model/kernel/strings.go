package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/option"
)

const (
	// String50MaxLength is the maximum number of characters of a String50.
	String50MaxLength = 50
	// OrderIDMaxLength is the maximum trimmed length of order and order-line identifiers.
	OrderIDMaxLength = 9
)

var (
	ErrString50IsNotConstructed      = errors.New("String50 must be created via NewString50")
	ErrEmailAddressIsNotConstructed  = errors.New("EmailAddress must be created via NewEmailAddress")
	ErrZipCodeIsNotConstructed       = errors.New("ZipCode must be created via NewZipCode")
	ErrUsStateCodeIsNotConstructed   = errors.New("UsStateCode must be created via NewUsStateCode")
	ErrOrderIDIsNotConstructed       = errors.New("OrderID must be created via NewOrderID")
	ErrOrderLineIDIsNotConstructed   = errors.New("OrderLineID must be created via NewOrderLineID")
	ErrPromotionCodeIsNotConstructed = errors.New("PromotionCode must be created via NewPromotionCode")
)

var (
	emailPattern = regexp.MustCompile(
		`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@` +
			`((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
	zipCodePattern = regexp.MustCompile(`^\d{5}$`)
)

// usStateCodes is the closed set of accepted two-letter state and territory codes.
var usStateCodes = map[string]struct{}{
	"AK": {}, "AL": {}, "AR": {}, "AZ": {}, "CA": {}, "CO": {}, "CT": {}, "DC": {}, "DE": {},
	"FL": {}, "GA": {}, "HI": {}, "IA": {}, "ID": {}, "IL": {}, "IN": {}, "KS": {}, "KY": {},
	"LA": {}, "MA": {}, "MD": {}, "ME": {}, "MI": {}, "MN": {}, "MO": {}, "MS": {}, "MT": {},
	"NC": {}, "ND": {}, "NE": {}, "NH": {}, "NJ": {}, "NM": {}, "NV": {}, "NY": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "PR": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {}, "TX": {},
	"UT": {}, "VA": {}, "VI": {}, "VT": {}, "WA": {}, "WI": {}, "WV": {}, "WY": {},
}

// String50 is a non-empty string of at most 50 characters, used for names, address
// lines, city and country. The value is stored exactly as given.
//
// Example:
//
//	first, err := kernel.NewString50("Ada", "firstName")
//	if err != nil {
//	    // err is *errs.ValueIsRequiredError or *errs.ValueIsInvalidError
//	}
//	fmt.Println(first) // Ada
type String50 struct {
	value string
	guard guard.ConstructorGuard
}

// NewString50 validates raw. An empty raw value yields a ValueIsRequiredError, a value
// longer than String50MaxLength characters a ValueIsInvalidError. fieldName names the
// offending field in the error and defaults to "String50".
func NewString50(raw, fieldName string) (String50, error) {
	fieldName = fieldOr(fieldName, "String50")
	if raw == "" {
		return String50{}, errs.NewValueIsRequiredError(fieldName)
	}
	if utf8.RuneCountInString(raw) > String50MaxLength {
		return String50{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("must not be more than %d chars", String50MaxLength))
	}
	return String50{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// NewOptionalString50 returns None for an empty raw value and Some(String50) for a valid
// one. A present but invalid value is an error.
func NewOptionalString50(raw, fieldName string) (option.Option[String50], error) {
	if raw == "" {
		return option.None[String50](), nil
	}
	s, err := NewString50(raw, fieldName)
	if err != nil {
		return option.None[String50](), err
	}
	return option.Some(s), nil
}

func (s String50) Validate() error { return s.guard.Validate(ErrString50IsNotConstructed) }
func (s String50) String() string  { return s.value }

// EmailAddress is an address matching the customer email pattern.
type EmailAddress struct {
	value string
	guard guard.ConstructorGuard
}

func NewEmailAddress(raw, fieldName string) (EmailAddress, error) {
	fieldName = fieldOr(fieldName, "EmailAddress")
	if !emailPattern.MatchString(raw) {
		return EmailAddress{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("'%s' is not an email address", raw))
	}
	return EmailAddress{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (e EmailAddress) Validate() error { return e.guard.Validate(ErrEmailAddressIsNotConstructed) }
func (e EmailAddress) String() string  { return e.value }

// ZipCode is exactly five ASCII digits.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewZipCode(raw, fieldName string) (ZipCode, error) {
	fieldName = fieldOr(fieldName, "ZipCode")
	if !zipCodePattern.MatchString(raw) {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("'%s' must be 5 digits", raw))
	}
	return ZipCode{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (z ZipCode) Validate() error { return z.guard.Validate(ErrZipCodeIsNotConstructed) }
func (z ZipCode) String() string  { return z.value }

// UsStateCode is an upper-case two-letter US state or territory code.
type UsStateCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewUsStateCode(raw, fieldName string) (UsStateCode, error) {
	fieldName = fieldOr(fieldName, "UsStateCode")
	if _, ok := usStateCodes[raw]; !ok {
		return UsStateCode{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("'%s' is not a US state code", raw))
	}
	return UsStateCode{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (s UsStateCode) Validate() error { return s.guard.Validate(ErrUsStateCodeIsNotConstructed) }
func (s UsStateCode) String() string  { return s.value }

// OrderID identifies an order. The raw value is trimmed; the result must hold between
// 1 and OrderIDMaxLength characters.
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

func NewOrderID(raw, fieldName string) (OrderID, error) {
	value, err := newIdentifier(raw, fieldOr(fieldName, "OrderID"))
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (id OrderID) Validate() error { return id.guard.Validate(ErrOrderIDIsNotConstructed) }
func (id OrderID) String() string  { return id.value }

// OrderLineID identifies a line within an order, with the same rules as OrderID.
type OrderLineID struct {
	value string
	guard guard.ConstructorGuard
}

func NewOrderLineID(raw, fieldName string) (OrderLineID, error) {
	value, err := newIdentifier(raw, fieldOr(fieldName, "OrderLineID"))
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (id OrderLineID) Validate() error { return id.guard.Validate(ErrOrderLineIDIsNotConstructed) }
func (id OrderLineID) String() string  { return id.value }

func newIdentifier(raw, fieldName string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errs.NewValueIsRequiredError(fieldName)
	}
	if utf8.RuneCountInString(value) > OrderIDMaxLength {
		return "", errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("must not be more than %d chars", OrderIDMaxLength))
	}
	return value, nil
}

// PromotionCode is a non-blank, trimmed promotion identifier such as "HALF".
type PromotionCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewPromotionCode(raw, fieldName string) (PromotionCode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return PromotionCode{}, errs.NewValueIsRequiredError(fieldOr(fieldName, "PromotionCode"))
	}
	return PromotionCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (p PromotionCode) Validate() error { return p.guard.Validate(ErrPromotionCodeIsNotConstructed) }
func (p PromotionCode) String() string  { return p.value }

func fieldOr(fieldName, fallback string) string {
	if fieldName == "" {
		return fallback
	}
	return fieldName
}
