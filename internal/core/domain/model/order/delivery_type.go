package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// DeliveryType is the shipping speed the customer paid for. The set is
// closed; urgency increases from Standard to SameDay.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	Standard
	Express
	SameDay
)

var deliveryTypeNames = map[DeliveryType]string{
	Standard: "Standard",
	Express:  "Express",
	SameDay:  "SameDay",
}

// ParseDeliveryType accepts exactly "Standard", "Express" or "SameDay".
func ParseDeliveryType(s string) (DeliveryType, error) {
	for dt, name := range deliveryTypeNames {
		if name == s {
			return dt, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"delivery type is invalid",
		fmt.Errorf("%q is not a delivery type", s),
	)
}

func (d DeliveryType) Validate() error {
	if _, ok := deliveryTypeNames[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery type is invalid",
			fmt.Errorf("%d is not a delivery type", d),
		)
	}
	return nil
}

func (d DeliveryType) String() string {
	if name, ok := deliveryTypeNames[d]; ok {
		return name
	}
	return "Unknown"
}

// DeliveryTypes lists every valid delivery type from least to most urgent.
func DeliveryTypes() []DeliveryType {
	return []DeliveryType{Standard, Express, SameDay}
}
