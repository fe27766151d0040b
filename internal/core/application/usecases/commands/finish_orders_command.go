package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrFinishOrdersCommandIsNotConstructed = errors.New(
		"FinishOrdersCommand must be created via NewFinishOrdersCommand constructor",
	)
	ErrNoOrdersSelected = errs.NewValueIsRequiredError("order ids")
)

// FinishOrdersCommand moves the selected active orders to the history.
type FinishOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewFinishOrdersCommand requires at least one id. Blank ids are rejected
// and repeated ids are collapsed.
func NewFinishOrdersCommand(orderIDs []string) (FinishOrdersCommand, error) {
	command := FinishOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderIDs(orderIDs); err != nil {
		return FinishOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrdersCommandIsNotConstructed)
}

func (c FinishOrdersCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

func (c *FinishOrdersCommand) setOrderIDs(raw []string) error {
	if len(raw) == 0 {
		return ErrNoOrdersSelected
	}

	seen := make(map[kernel.ID]struct{}, len(raw))
	ids := make([]kernel.ID, 0, len(raw))
	var problems []error
	for _, s := range raw {
		id, err := kernel.ParseID(s)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.orderIDs = ids
	return nil
}
