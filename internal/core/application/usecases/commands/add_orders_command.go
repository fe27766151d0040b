package commands

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddOrdersCommandIsNotConstructed = errors.New(
		"AddOrdersCommand must be created via NewAddOrdersCommand constructor",
	)
	// ErrNoCodes is matched by NoCodesError.
	ErrNoCodes = errors.New("no valid order code in input")
	// ErrNoCouriers is returned when orders are added before any courier exists.
	ErrNoCouriers = errors.New("register a courier before adding orders")
)

// NoCodesError is returned when the pasted text holds no valid code. It
// matches ErrNoCodes and carries an order rejection: invalid_length for the
// first ignored token, or empty when no token had digits.
type NoCodesError struct {
	Invalid []string
}

func (e *NoCodesError) Error() string {
	if len(e.Invalid) == 0 {
		return ErrNoCodes.Error()
	}
	return fmt.Sprintf("%s: invalid %s", ErrNoCodes, strings.Join(e.Invalid, ", "))
}

func (e *NoCodesError) Unwrap() []error {
	if len(e.Invalid) == 0 {
		return []error{ErrNoCodes, order.Reject(order.ReasonEmpty, "")}
	}
	return []error{ErrNoCodes, order.Reject(order.ReasonInvalidLength, e.Invalid[0])}
}

// AddOrdersCommand files every valid code found in pasted text under one
// courier and payment method.
//
// Codes are extracted with order.ParseCodes: split on whitespace and commas,
// digits only, lengths 3, 4 or 6, first occurrence wins. Tokens with a wrong
// length are kept aside and reported back, not added.
//
// Example:
//
//	cmd, err := NewAddOrdersCommand("1234, 567\n12345", "PIX", courierID)
//	// cmd.Codes()        == ["1234", "567"]
//	// cmd.InvalidCodes() == ["12345"]
type AddOrdersCommand struct { //nolint:recvcheck //using for validation
	codes     []string
	invalid   []string
	pay       string
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewAddOrdersCommand parses text. It fails with a *NoCodesError when nothing
// valid was pasted and with a motoboy_required rejection when courierID is
// blank; both problems are reported together, codes first.
func NewAddOrdersCommand(text, pay, courierID string) (AddOrdersCommand, error) {
	command := AddOrdersCommand{
		invalid: order.InvalidCodes(text),
		pay:     pay,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCodes(order.ParseCodes(text)),
		command.setCourierID(courierID),
	); err != nil {
		return AddOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAddOrdersCommandIsNotConstructed)
}

// Codes returns the valid, deduplicated codes in paste order.
func (c AddOrdersCommand) Codes() []string {
	return c.codes
}

// InvalidCodes returns the digit tokens that were ignored for their length.
func (c AddOrdersCommand) InvalidCodes() []string {
	return c.invalid
}

func (c AddOrdersCommand) Pay() string {
	return c.pay
}

func (c AddOrdersCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c *AddOrdersCommand) setCodes(codes []string) error {
	if len(codes) == 0 {
		return &NoCodesError{Invalid: c.invalid}
	}

	c.codes = codes
	return nil
}

func (c *AddOrdersCommand) setCourierID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return order.Reject(order.ReasonCourierRequired, "")
	}

	c.courierID = kernel.ID(id)
	return nil
}
