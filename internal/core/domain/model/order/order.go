package order

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsBeingProcessed is returned when a Processing order is picked up
	// again before it was left alone for the stall timeout.
	ErrOrderIsBeingProcessed = errors.New("order is being processed")

	// ErrOutcomeIsMissing is returned when an order that holds a reservation has no
	// recorded processing outcome.
	ErrOutcomeIsMissing = errors.New("processing outcome is missing")
)

// Outcome is what processing computed for an order: its priority score, the
// total cost and the promised delivery date, plus the instant it was computed.
type Outcome struct {
	Priority              int
	TotalCost             kernel.Money
	EstimatedDeliveryDate time.Time
	ProcessedAt           time.Time
}

// Order is the aggregate root of the processing pipeline. It is created by the
// intake system, which is not part of this service, and is moved through its
// lifecycle here.
//
// Order follows these invariants:
//   - ID and product ID are valid positive identifiers
//   - Quantity is positive (greater than 0)
//   - Delivery type is one of Standard, Express, SameDay
//   - New orders carry no outcome; every other status carries one
//   - Status transitions follow the Status state machine
//
// Fields are private and only change through the transition methods.
type Order struct {
	id            kernel.ID
	productID     kernel.ID
	quantity      int
	deliveryType  DeliveryType
	customerEmail string
	status        Status
	outcome       *Outcome

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in New status.
//
// Parameters:
//   - id: order identifier (positive)
//   - productID: the single product being ordered (positive)
//   - quantity: number of units (positive)
//   - deliveryType: requested shipping speed
//   - customerEmail: recipient of the confirmation; may be empty, in which case
//     the configured default contact is used
//
// Example:
//
//	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "")
//	if err != nil {
//	    // Handle validation error
//	}
//
// All validation errors are joined so that callers see every problem at once.
func NewOrder(id, productID kernel.ID, quantity int, deliveryType DeliveryType, customerEmail string) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setDeliveryType(deliveryType),
		o.setCustomerEmail(customerEmail),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. It applies the same
// validation as NewOrder and additionally checks that the outcome is present
// exactly when the status requires one.
func RestoreOrder(
	id, productID kernel.ID,
	quantity int,
	deliveryType DeliveryType,
	customerEmail string,
	status Status,
	outcome *Outcome,
) (*Order, error) {
	o, err := NewOrder(id, productID, quantity, deliveryType, customerEmail)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.HoldsReservation() && outcome == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("outcome", ErrOutcomeIsMissing)
	}
	if status == New && outcome != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%s order cannot have an outcome", status),
		)
	}

	o.status = status
	if outcome != nil {
		restored := *outcome
		o.outcome = &restored
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) ProductID() kernel.ID {
	return o.productID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// CustomerEmail returns the confirmation recipient, or "" when none was given.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) Status() Status {
	return o.status
}

// Outcome returns a copy of the recorded outcome, or nil for New orders.
func (o *Order) Outcome() *Outcome {
	if o.outcome == nil {
		return nil
	}
	out := *o.outcome
	return &out
}

// StartProcessing moves a New or Failed order to Processing.
//
// It returns whether stock still has to be reserved: true for a New order,
// false for a Failed order being retried, which kept its reservation.
func (o *Order) StartProcessing() (needsReservation bool, err error) {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return false, err
	}

	needsReservation = o.status == New
	o.status = newStatus
	return needsReservation, nil
}

// IsStalled reports whether the order has sat in Processing for at least
// timeout since its outcome was recorded.
func (o *Order) IsStalled(now time.Time, timeout time.Duration) bool {
	return o.status == Processing && o.outcome != nil && !now.Before(o.outcome.ProcessedAt.Add(timeout))
}

// ResumeStalled takes over a Processing order whose previous run never
// reached Processed, for example because the process stopped right after
// the reservation was committed. The order keeps its reservation and stays
// Processing so that a new outcome can be recorded.
//
// Returns ErrOrderIsBeingProcessed while the order is not yet stalled.
func (o *Order) ResumeStalled(now time.Time, timeout time.Duration) error {
	if o.status != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to resume processing", o.status),
		)
	}
	if !o.IsStalled(now, timeout) {
		return fmt.Errorf("%w: order %s", ErrOrderIsBeingProcessed, o.id)
	}
	return nil
}

// RecordOutcome stores the computed priority, total cost and delivery
// estimate. The order must be Processing.
func (o *Order) RecordOutcome(outcome Outcome) error {
	if o.status != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to record an outcome", o.status),
		)
	}
	if outcome.Priority <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not greater than 0", outcome.Priority))
	}
	if outcome.EstimatedDeliveryDate.IsZero() || outcome.ProcessedAt.IsZero() {
		return errs.NewValueIsRequiredError("delivery estimate")
	}
	if outcome.EstimatedDeliveryDate.Before(outcome.ProcessedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery estimate",
			errors.New("estimated delivery is before processing time"),
		)
	}

	o.outcome = &outcome
	return nil
}

// Complete marks the order Processed once the customer was notified.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Fail marks the order Failed after the confirmation could not be sent.
// The outcome and the reservation are kept for a later retry.
func (o *Order) Fail() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	o.productID = productID
	return nil
}

// setQuantity validates and sets the number of units. Quantity must be positive.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail", err)
	}
	o.customerEmail = email
	return nil
}
