package commands

import (
	"errors"
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrChargePaymentCommandIsNotConstructed = errors.New(
	"ChargePaymentCommand must be created via NewChargePaymentCommand constructor",
)

// ChargePaymentCommand represents a request to charge an order. The ledger
// admits at most one payment record per order; a repeat charge succeeds only
// when the existing record is FAILED and can be superseded.
type ChargePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	amount     kernel.Money
	method     payment.Method

	guard guard.ConstructorGuard
}

// NewChargePaymentCommand creates a command to charge an order.
// Validates identifiers, a positive amount and a known payment method.
func NewChargePaymentCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
) (ChargePaymentCommand, error) {
	cmd := ChargePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
	); err != nil {
		return ChargePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChargePaymentCommand) Validate() error {
	return c.guard.Validate(ErrChargePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being charged.
func (c ChargePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the paying customer's identifier.
func (c ChargePaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the amount to charge.
func (c ChargePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the payment method.
func (c ChargePaymentCommand) Method() payment.Method {
	return c.method
}

func (c *ChargePaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChargePaymentCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *ChargePaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("charge amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}

func (c *ChargePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
