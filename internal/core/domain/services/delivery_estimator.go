package services

import (
	"time"

	"warehouse/internal/core/domain/model/order"
)

type leadTimeStep struct {
	minPriority int
	leadTime    time.Duration
}

const day = 24 * time.Hour

// leadTimes lists, per delivery type, the lead time granted from a given
// priority upwards. Steps are ordered by descending minPriority and lead
// times grow as priority falls.
var leadTimes = map[order.DeliveryType][]leadTimeStep{
	order.Standard: {
		{minPriority: 100, leadTime: 4 * day},
		{minPriority: 60, leadTime: 5 * day},
		{minPriority: 0, leadTime: 7 * day},
	},
	order.Express: {
		{minPriority: 100, leadTime: 2 * day},
		{minPriority: 60, leadTime: 3 * day},
		{minPriority: 0, leadTime: 5 * day},
	},
	order.SameDay: {
		{minPriority: 150, leadTime: 4 * time.Hour},
		{minPriority: 100, leadTime: 8 * time.Hour},
		{minPriority: 0, leadTime: 24 * time.Hour},
	},
}

// DeliveryEstimator promises a delivery date. For a fixed delivery type a
// higher priority never yields a later date.
type DeliveryEstimator struct{}

func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Estimate returns orderTime plus the lead time for the delivery type and
// priority. Day lead times are calendar days, so the wall-clock time of
// day is kept across DST changes.
func (DeliveryEstimator) Estimate(deliveryType order.DeliveryType, priority int, orderTime time.Time) (time.Time, error) {
	steps, ok := leadTimes[deliveryType]
	if !ok {
		return time.Time{}, deliveryType.Validate()
	}

	leadTime := steps[len(steps)-1].leadTime
	for _, step := range steps {
		if priority >= step.minPriority {
			leadTime = step.leadTime
			break
		}
	}

	if leadTime%day == 0 {
		return orderTime.AddDate(0, 0, int(leadTime/day)), nil
	}
	return orderTime.Add(leadTime), nil
}
