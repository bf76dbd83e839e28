package commands

import (
	"errors"
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to refund part or all of a
// payment. The refund ceiling is enforced by the aggregate against the
// remaining refundable amount, never by the command. The reason is free
// text for the audit log and may be empty.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	amount    kernel.Money
	reason    string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
// Validates the payment ID and a positive refund amount.
func NewRefundPaymentCommand(paymentID kernel.UUID, amount kernel.Money, reason string) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to refund.
func (c RefundPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the amount to refund.
func (c RefundPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the caller's stated reason for the refund, if any.
func (c RefundPaymentCommand) Reason() string {
	return c.reason
}

func (c *RefundPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("refund amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}
