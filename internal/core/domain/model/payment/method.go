package payment

import (
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Method identifies how the customer pays for an order.
type Method string

const (
	MethodCard Method = "CARD"
	MethodEFT  Method = "EFT"
	MethodCash Method = "CASH"
)

// MethodFromString parses a payment method name.
func MethodFromString(s string) (Method, error) {
	m := Method(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks that the method is one of the supported values.
func (m Method) Validate() error {
	switch m {
	case MethodCard, MethodEFT, MethodCash:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a supported payment method", string(m)))
	}
}

// String returns the persisted name of the method.
func (m Method) String() string {
	return string(m)
}
