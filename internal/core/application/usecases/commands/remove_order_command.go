package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand deletes an active order without archiving it.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveOrderCommand(orderID string) (RemoveOrderCommand, error) {
	command := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

func (c RemoveOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(id string) error {
	parsed, err := kernel.ParseID(id)
	if err != nil {
		return err
	}

	c.orderID = parsed
	return nil
}
