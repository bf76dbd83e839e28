package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Money is a value object representing an exact fixed-point currency amount
// with two-decimal semantics. It wraps github.com/shopspring/decimal so that
// monetary arithmetic is never performed in binary floating point.
//
// Money is immutable; every operation returns a new value. The zero value is
// a valid amount of 0.00, which makes Money safe to embed in aggregates that
// start without a refunded amount.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("50.00")
//	if err != nil {
//	    // handle malformed amount
//	}
//	lineTotal := price.MulInt(2)            // 100.00
//	total := lineTotal.Add(deliveryFee)     // 125.00
type Money struct {
	amount decimal.Decimal
}

// MoneyFromString parses a decimal currency amount such as "25.00" or "145.5".
// The parsed value is rounded half-up to two decimal places.
// Returns an error if the string is not a valid decimal number.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal amount", s))
	}
	return MoneyFromDecimal(d), nil
}

// MustMoneyFromString is MoneyFromString that panics on malformed input.
// Intended for package-level constants and tests only.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal creates a Money from a decimal value, rounding half-up to
// two decimal places. Used when reconstructing amounts from persistence.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(2)}
}

// Decimal returns the underlying decimal value. Intended for persistence
// mapping; domain code should use the Money operations instead.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative;
// callers enforce non-negativity where the domain requires it.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// String formats the amount with exactly two decimal places, e.g. "145.00".
// Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
