// Package guard implements a defensive construction pattern that ensures value
// objects, commands and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type RefundPaymentCommand struct {
//	    paymentID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewRefundPaymentCommand(paymentID kernel.UUID) (RefundPaymentCommand, error) {
//	    if err := paymentID.Validate(); err != nil {
//	        return RefundPaymentCommand{}, err
//	    }
//	    return RefundPaymentCommand{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RefundPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
