package order

import (
	"errors"
	"fmt"
)

// Reason discriminates why an order was not added.
type Reason string

const (
	// ReasonEmpty means the submitted code had no digits.
	ReasonEmpty Reason = "empty"
	// ReasonInvalidLength means the code did not have 3, 4 or 6 digits.
	ReasonInvalidLength Reason = "invalid_length"
	// ReasonCourierRequired means no courier id was supplied.
	ReasonCourierRequired Reason = "motoboy_required"
	// ReasonCourierNotFound means the courier id does not name a courier.
	ReasonCourierNotFound Reason = "courier_not_found"
)

// Sentinel errors matching each Reason through errors.Is.
var (
	ErrEmptyCode       = errors.New("order code has no digits")
	ErrInvalidLength   = errors.New("order code must have 3, 4 or 6 digits")
	ErrCourierRequired = errors.New("courier is required")
	ErrCourierNotFound = errors.New("courier not found")
)

// RejectionError is returned when an order cannot be created.
type RejectionError struct {
	Reason Reason
	// Digits is the normalized code that was rejected, if any.
	Digits string
}

func newRejection(reason Reason, digits string) *RejectionError {
	return &RejectionError{Reason: reason, Digits: digits}
}

func (e *RejectionError) Error() string {
	if e.Digits == "" {
		return fmt.Sprintf("order rejected: %s", e.Reason)
	}
	return fmt.Sprintf("order rejected: %s (code %s)", e.Reason, e.Digits)
}

func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case ReasonEmpty:
		return ErrEmptyCode
	case ReasonInvalidLength:
		return ErrInvalidLength
	case ReasonCourierRequired:
		return ErrCourierRequired
	case ReasonCourierNotFound:
		return ErrCourierNotFound
	default:
		return nil
	}
}

// Reject builds a rejection for checks made outside NewOrder, such as the
// courier lookup in the ledger or the parsing of a pasted batch.
func Reject(reason Reason, digits string) *RejectionError {
	return newRejection(reason, digits)
}

// RejectCourierNotFound builds the rejection used when the courier id is
// well-formed but unknown.
func RejectCourierNotFound(digits string) *RejectionError {
	return newRejection(ReasonCourierNotFound, digits)
}

// ReasonOf extracts the rejection reason from err, if it carries one.
func ReasonOf(err error) (Reason, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Reason, true
	}
	return "", false
}
