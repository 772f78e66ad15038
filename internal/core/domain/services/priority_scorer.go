package services

import (
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

type quantityBracket int

const (
	smallOrder  quantityBracket = iota // 1..5 units
	mediumOrder                        // 6..10 units
	largeOrder                         // 11..50 units
	bulkOrder                          // 51+ units
)

type timeOfDay int

const (
	morning timeOfDay = iota // before 12:00
	midday                   // 12:00..17:59
	evening                  // 18:00 onwards
)

// priorityTable holds the score for every (delivery type, quantity bracket,
// time of day) cell. Within a delivery type scores never decrease as the
// bracket grows, and for every cell SameDay > Express > Standard.
var priorityTable = map[order.DeliveryType][4][3]int{
	order.Standard: {
		smallOrder:  {morning: 20, midday: 40, evening: 40},
		mediumOrder: {morning: 25, midday: 45, evening: 45},
		largeOrder:  {morning: 40, midday: 80, evening: 80},
		bulkOrder:   {morning: 60, midday: 100, evening: 100},
	},
	order.Express: {
		smallOrder:  {morning: 50, midday: 50, evening: 60},
		mediumOrder: {morning: 60, midday: 60, evening: 70},
		largeOrder:  {morning: 120, midday: 120, evening: 150},
		bulkOrder:   {morning: 140, midday: 140, evening: 170},
	},
	order.SameDay: {
		smallOrder:  {morning: 90, midday: 110, evening: 110},
		mediumOrder: {morning: 100, midday: 120, evening: 120},
		largeOrder:  {morning: 180, midday: 160, evening: 160},
		bulkOrder:   {morning: 200, midday: 180, evening: 180},
	},
}

// PriorityScorer ranks orders for fulfilment. The score depends only on the
// ordered quantity, the delivery type and the hour at which the order is
// processed, so the same inputs always give the same score.
//
// Example usage:
//
//	scorer := services.NewPriorityScorer()
//	priority, err := scorer.Score(11, order.Express, processedAt) // 120 before noon
type PriorityScorer struct{}

func NewPriorityScorer() PriorityScorer {
	return PriorityScorer{}
}

// Score returns the priority for an order of quantity units with the given
// delivery type, processed at now. The hour is read in now's location.
//
// Returns:
//   - int: a positive score, higher means more urgent
//   - error: validation error for a non-positive quantity or unknown delivery type
func (PriorityScorer) Score(quantity int, deliveryType order.DeliveryType, now time.Time) (int, error) {
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	scores, ok := priorityTable[deliveryType]
	if !ok {
		return 0, deliveryType.Validate()
	}

	return scores[bracketOf(quantity)][timeOfDayOf(now)], nil
}

func bracketOf(quantity int) quantityBracket {
	switch {
	case quantity <= 5:
		return smallOrder
	case quantity <= 10:
		return mediumOrder
	case quantity <= 50:
		return largeOrder
	default:
		return bulkOrder
	}
}

func timeOfDayOf(now time.Time) timeOfDay {
	switch hour := now.Hour(); {
	case hour < 12:
		return morning
	case hour < 18:
		return midday
	default:
		return evening
	}
}
