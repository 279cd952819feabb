package kernel

import (
	"errors"

	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/option"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a validated postal address. Lines two to four are optional.
type Address struct { //nolint:recvcheck //using for validation
	addressLine1 String50
	addressLine2 option.Option[String50]
	addressLine3 option.Option[String50]
	addressLine4 option.Option[String50]
	city         String50
	zipCode      ZipCode
	state        UsStateCode
	country      String50
	guard        guard.ConstructorGuard
}

// AddressLines carries the optional address lines two to four.
type AddressLines struct {
	Line2 option.Option[String50]
	Line3 option.Option[String50]
	Line4 option.Option[String50]
}

// NewAddress assembles an Address from validated parts. Every part that was not built
// by its constructor is reported in the returned error.
//
// Parameters:
//   - line1: first address line
//   - optional: address lines two to four, each may be None
//   - city, zipCode, state, country: remaining parts
//
// Returns:
//   - Address: the assembled address
//   - error: joined constructor-guard errors of the invalid parts
func NewAddress(
	line1 String50,
	optional AddressLines,
	city String50,
	zipCode ZipCode,
	state UsStateCode,
	country String50,
) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		a.setAddressLine1(line1),
		a.setOptionalLines(optional),
		a.setCity(city),
		a.setZipCode(zipCode),
		a.setState(state),
		a.setCountry(country),
	); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error { return a.guard.Validate(ErrAddressIsNotConstructed) }

func (a Address) AddressLine1() String50                { return a.addressLine1 }
func (a Address) AddressLine2() option.Option[String50] { return a.addressLine2 }
func (a Address) AddressLine3() option.Option[String50] { return a.addressLine3 }
func (a Address) AddressLine4() option.Option[String50] { return a.addressLine4 }
func (a Address) City() String50                        { return a.city }
func (a Address) ZipCode() ZipCode                      { return a.zipCode }
func (a Address) State() UsStateCode                    { return a.state }
func (a Address) Country() String50                     { return a.country }

func (a *Address) setAddressLine1(v String50) error {
	if err := v.Validate(); err != nil {
		return err
	}
	a.addressLine1 = v
	return nil
}

func (a *Address) setOptionalLines(lines AddressLines) error {
	var joined []error
	for _, line := range []option.Option[String50]{lines.Line2, lines.Line3, lines.Line4} {
		if v, ok := line.Get(); ok {
			joined = append(joined, v.Validate())
		}
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}
	a.addressLine2, a.addressLine3, a.addressLine4 = lines.Line2, lines.Line3, lines.Line4
	return nil
}

func (a *Address) setCity(v String50) error {
	if err := v.Validate(); err != nil {
		return err
	}
	a.city = v
	return nil
}

func (a *Address) setZipCode(v ZipCode) error {
	if err := v.Validate(); err != nil {
		return err
	}
	a.zipCode = v
	return nil
}

func (a *Address) setState(v UsStateCode) error {
	if err := v.Validate(); err != nil {
		return err
	}
	a.state = v
	return nil
}

func (a *Address) setCountry(v String50) error {
	if err := v.Validate(); err != nil {
		return err
	}
	a.country = v
	return nil
}
