package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the processing state of an order.
//
// State transitions:
//
//	New ──> Processing ──> Processed
//	            │  ▲
//	            ▼  │ (retry)
//	           Failed
//
// An order that could not be confirmed to the customer is Failed and may be
// picked up again, as may a Processing order that stalled (see
// Order.ResumeStalled); Processed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New orders are waiting to be processed and hold no stock reservation.
	New

	// Processing orders hold their stock reservation and have priority,
	// total cost and estimated delivery computed.
	Processing

	// Processed orders were confirmed to the customer. This is a final state.
	Processed

	// Failed orders hold their reservation but the confirmation could not be
	// delivered. They can be processed again.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Processing: "Processing",
		Processed:  "Processed",
		Failed:     "Failed",
	}
}

// ParseStatus converts a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for Unknown and any out-of-range value.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HoldsReservation reports whether stock has already been taken for an
// order in this status.
func (s Status) HoldsReservation() bool {
	return s == Processing || s == Processed || s == Failed
}

// StartProcessing transitions New or Failed to Processing.
//
// Returns:
//   - (Processing, nil) on a valid transition
//   - (0, error) when the order is already Processing or Processed
func (s Status) StartProcessing() (Status, error) {
	if s != New && s != Failed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// Complete transitions Processing to Processed.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Processed, nil
}

// Fail transitions Processing to Failed.
func (s Status) Fail() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return Failed, nil
}
