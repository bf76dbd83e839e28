package payment

import (
	"errors"
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the aggregate root of the payment ledger for one order. At most
// one payment exists per order identifier; the storage layer enforces that
// with an atomic conditional insert.
//
// Payment maintains these invariants:
//   - refundedAmount never decreases and never exceeds amount
//   - status REFUNDED ⇔ refundedAmount == amount
//   - status PARTIALLY_REFUNDED ⇔ 0 < refundedAmount < amount
//   - transactionReference is set only on COMPLETED, failureReason only on FAILED
//
// The version field supports optimistic concurrency: conditional updates in
// the storage layer write back only if the stored version is unchanged, which
// serializes concurrent refunds against the same payment.
type Payment struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	customerID           kernel.UUID
	amount               kernel.Money
	method               Method
	status               Status
	transactionReference string
	failureReason        string
	refundedAmount       kernel.Money
	version              int

	isConstructed bool
}

// NewPayment creates a new Payment in PROCESSING status, ready to be run
// through the processing step. The amount is expected to equal the order
// total; the ledger validates only that it is positive.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method Method,
) (*Payment, error) {
	p := &Payment{
		status:        Processing,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setCustomerID(customerID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence, revalidating the
// monetary invariants against the stored values.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionReference string,
	failureReason string,
	refundedAmount kernel.Money,
	version int,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, customerID, amount, method)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if refundedAmount.GreaterThan(amount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("refunded amount",
			fmt.Errorf("%s exceeds payment amount %s", refundedAmount, amount))
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("payment version",
			fmt.Errorf("%d is not a positive version", version))
	}

	p.status = status
	p.transactionReference = transactionReference
	p.failureReason = failureReason
	p.refundedAmount = refundedAmount
	p.version = version
	return p, nil
}

// Validate ensures the Payment instance was properly constructed through a
// factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this payment charges. Unique across the ledger.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CustomerID returns the paying customer's identifier.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current status of the payment.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionReference returns the gateway reference, set only on COMPLETED.
func (p *Payment) TransactionReference() string {
	return p.transactionReference
}

// FailureReason returns the decline reason, set only on FAILED.
func (p *Payment) FailureReason() string {
	return p.failureReason
}

// RefundedAmount returns the running refund total. Monotonically
// non-decreasing, never above Amount.
func (p *Payment) RefundedAmount() kernel.Money {
	return p.refundedAmount
}

// RemainingRefundable returns amount − refundedAmount.
func (p *Payment) RemainingRefundable() kernel.Money {
	return p.amount.Sub(p.refundedAmount)
}

// Version returns the optimistic concurrency version of the record.
func (p *Payment) Version() int {
	return p.version
}

// IncrementVersion advances the optimistic concurrency version. Called by the
// storage layer after a conditional update succeeds so the in-memory record
// stays aligned with the stored one.
func (p *Payment) IncrementVersion() {
	p.version++
}

// Complete records a successful processing outcome.
//
// Only permitted from PROCESSING. The transaction reference is required.
func (p *Payment) Complete(transactionReference string) error {
	if p.status != Processing {
		return errs.NewInvalidStateError("payment", p.id.String(), p.status.String(), "complete")
	}
	if transactionReference == "" {
		return errs.NewValueIsRequiredError("transaction reference")
	}

	p.status = Completed
	p.transactionReference = transactionReference
	return nil
}

// Fail records a failed processing outcome.
//
// Only permitted from PROCESSING. The failure reason is required.
func (p *Payment) Fail(reason string) error {
	if p.status != Processing {
		return errs.NewInvalidStateError("payment", p.id.String(), p.status.String(), "fail")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	p.status = Failed
	p.failureReason = reason
	return nil
}

// Refund applies a refund to the payment.
//
// Refunds are only permitted from COMPLETED or PARTIALLY_REFUNDED. The
// amount must be positive and must not exceed the remaining refundable
// amount. On success the running refund total grows by amount and the status
// becomes REFUNDED when the total reaches the charged amount, otherwise
// PARTIALLY_REFUNDED.
func (p *Payment) Refund(amount kernel.Money) error {
	if !p.status.IsRefundable() {
		return errs.NewInvalidStateError("payment", p.id.String(), p.status.String(), "refund")
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("refund amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	remaining := p.RemainingRefundable()
	if amount.GreaterThan(remaining) {
		return errs.NewRefundLimitExceededError(amount.String(), remaining.String())
	}

	p.refundedAmount = p.refundedAmount.Add(amount)
	if p.refundedAmount.IsEqual(p.amount) {
		p.status = Refunded
	} else {
		p.status = PartiallyRefunded
	}
	return nil
}

// Supersede replaces a failed charge attempt with a fresh one, keeping the
// payment's claim on the order identifier slot. Only permitted from FAILED.
//
// The record returns to PROCESSING with the new amount and method; the
// previous failure reason, reference and refund total are cleared.
func (p *Payment) Supersede(amount kernel.Money, method Method) error {
	if p.status != Failed {
		return errs.NewInvalidStateError("payment", p.id.String(), p.status.String(), "supersede")
	}
	if err := p.setAmount(amount); err != nil {
		return err
	}
	if err := p.setMethod(method); err != nil {
		return err
	}

	p.status = Processing
	p.transactionReference = ""
	p.failureReason = ""
	p.refundedAmount = kernel.Money{}
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.customerID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
