package kernel

import (
	"errors"

	"ordertaking/internal/pkg/guard"
)

var (
	ErrPersonalNameIsNotConstructed = errors.New("PersonalName must be created via NewPersonalName")
	ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo")
)

// PersonalName is a customer's first and last name.
type PersonalName struct { //nolint:recvcheck //using for validation
	firstName String50
	lastName  String50
	guard     guard.ConstructorGuard
}

// NewPersonalName combines two validated name fragments. Every invalid fragment is
// reported in the returned error.
func NewPersonalName(firstName, lastName String50) (PersonalName, error) {
	name := PersonalName{guard: guard.NewConstructorGuard()}
	if err := errors.Join(name.setFirstName(firstName), name.setLastName(lastName)); err != nil {
		return PersonalName{}, err
	}
	return name, nil
}

func (n PersonalName) Validate() error     { return n.guard.Validate(ErrPersonalNameIsNotConstructed) }
func (n PersonalName) FirstName() String50 { return n.firstName }
func (n PersonalName) LastName() String50  { return n.lastName }

func (n *PersonalName) setFirstName(v String50) error {
	if err := v.Validate(); err != nil {
		return err
	}
	n.firstName = v
	return nil
}

func (n *PersonalName) setLastName(v String50) error {
	if err := v.Validate(); err != nil {
		return err
	}
	n.lastName = v
	return nil
}

// CustomerInfo describes who placed an order.
//
// Example:
//
//	first, _ := kernel.NewString50("Ada", "firstName")
//	last, _ := kernel.NewString50("Lovelace", "lastName")
//	name, _ := kernel.NewPersonalName(first, last)
//	email, _ := kernel.NewEmailAddress("ada@example.com", "emailAddress")
//	info, err := kernel.NewCustomerInfo(name, email, kernel.VipStatusVip)
type CustomerInfo struct { //nolint:recvcheck //using for validation
	name         PersonalName
	emailAddress EmailAddress
	vipStatus    VipStatus
	guard        guard.ConstructorGuard
}

func NewCustomerInfo(name PersonalName, emailAddress EmailAddress, vipStatus VipStatus) (CustomerInfo, error) {
	info := CustomerInfo{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		info.setName(name),
		info.setEmailAddress(emailAddress),
		info.setVipStatus(vipStatus),
	); err != nil {
		return CustomerInfo{}, err
	}
	return info, nil
}

func (c CustomerInfo) Validate() error            { return c.guard.Validate(ErrCustomerInfoIsNotConstructed) }
func (c CustomerInfo) Name() PersonalName         { return c.name }
func (c CustomerInfo) EmailAddress() EmailAddress { return c.emailAddress }
func (c CustomerInfo) VipStatus() VipStatus       { return c.vipStatus }

func (c *CustomerInfo) setName(v PersonalName) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.name = v
	return nil
}

func (c *CustomerInfo) setEmailAddress(v EmailAddress) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.emailAddress = v
	return nil
}

func (c *CustomerInfo) setVipStatus(v VipStatus) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vipStatus = v
	return nil
}
