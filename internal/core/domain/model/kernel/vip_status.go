package kernel

import (
	"fmt"

	"ordertaking/internal/pkg/errs"
)

// VipStatus is the customer's service tier.
type VipStatus int

const (
	// VipStatusUnknown is the zero value and never valid.
	VipStatusUnknown VipStatus = iota
	VipStatusNormal
	VipStatusVip
)

func getVipStatusStrings() map[VipStatus]string {
	return map[VipStatus]string{
		VipStatusUnknown: "unknown",
		VipStatusNormal:  "normal",
		VipStatusVip:     "vip",
	}
}

// NewVipStatus parses "normal" or "vip". Any other input, including the empty string,
// is a ValueIsInvalidError.
func NewVipStatus(raw, fieldName string) (VipStatus, error) {
	switch raw {
	case "normal":
		return VipStatusNormal, nil
	case "vip":
		return VipStatusVip, nil
	default:
		return VipStatusUnknown, errs.NewValueIsInvalidErrorWithCause(fieldOr(fieldName, "VipStatus"),
			fmt.Errorf("'%s' is not a vip status", raw))
	}
}

func (s VipStatus) Validate() error {
	if s != VipStatusNormal && s != VipStatusVip {
		return errs.NewValueIsInvalidErrorWithCause("VipStatus", fmt.Errorf("%d is not a valid vip status", s))
	}
	return nil
}

func (s VipStatus) String() string {
	if str, ok := getVipStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
