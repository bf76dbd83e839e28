package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrConflict            = errors.New("object already exists")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidState        = errors.New("status does not permit the operation")
	ErrRefundLimitExceeded = errors.New("refund limit exceeded")
	ErrConcurrencyConflict = errors.New("concurrent modification detected")
)

// sanitize removes newlines from values interpolated into error messages so a
// single log line stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that no object exists for the given identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VersionIsInvalidError indicates that a stored aggregate carried an unusable version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("version is invalid: %s (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("version is invalid: %s", sanitize(e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConflictError indicates that a record of the given kind already occupies the
// order identifier slot. It is produced by the storage layer's atomic
// conditional insert, never by a separate existence check.
type ConflictError struct {
	Kind    string
	OrderID any
	Cause   error
}

func NewConflictError(kind string, orderID any) *ConflictError {
	return &ConflictError{Kind: kind, OrderID: orderID}
}

func NewConflictErrorWithCause(kind string, orderID any, cause error) *ConflictError {
	return &ConflictError{Kind: kind, OrderID: orderID, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s already exists for order: %s (cause: %s)",
			sanitize(e.Kind), sanitize(e.OrderID), e.Cause)
	}
	return fmt.Sprintf("%s already exists for order: %s", sanitize(e.Kind), sanitize(e.OrderID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError indicates that the requested status change is not in
// the entity's transition table.
type InvalidTransitionError struct {
	Entity  string
	Current string
	Next    string
}

func NewInvalidTransitionError(entity, current, next string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, Current: current, Next: next}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s status transition: %s -> %s",
		sanitize(e.Entity), sanitize(e.Current), sanitize(e.Next))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError indicates that the entity's current status does not permit
// the requested operation.
type InvalidStateError struct {
	Entity    string
	ID        any
	Current   string
	Operation string
}

func NewInvalidStateError(entity string, id any, current, operation string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, Current: current, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s in status %s does not permit %s",
		sanitize(e.Entity), sanitize(e.ID), sanitize(e.Current), sanitize(e.Operation))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// RefundLimitExceededError indicates that a refund request exceeds the
// remaining refundable amount of a payment.
type RefundLimitExceededError struct {
	Requested string
	Remaining string
}

func NewRefundLimitExceededError(requested, remaining string) *RefundLimitExceededError {
	return &RefundLimitExceededError{Requested: requested, Remaining: remaining}
}

func (e *RefundLimitExceededError) Error() string {
	return fmt.Sprintf("refund amount %s exceeds remaining refundable amount %s",
		sanitize(e.Requested), sanitize(e.Remaining))
}

func (e *RefundLimitExceededError) Unwrap() error {
	return ErrRefundLimitExceeded
}

// ConcurrencyConflictError indicates that a conditional write lost a race with
// a concurrent writer. The operation may be retried after re-reading.
type ConcurrencyConflictError struct {
	Entity string
	ID     any
}

func NewConcurrencyConflictError(entity string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Entity: entity, ID: id}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("concurrent modification of %s: %s", sanitize(e.Entity), sanitize(e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
