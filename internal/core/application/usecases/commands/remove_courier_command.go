package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveCourierCommandIsNotConstructed = errors.New(
	"RemoveCourierCommand must be created via NewRemoveCourierCommand constructor",
)

// RemoveCourierCommand deletes a courier together with its active orders.
// Finished orders of the courier stay in the history.
type RemoveCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveCourierCommand(courierID string) (RemoveCourierCommand, error) {
	command := RemoveCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return RemoveCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCourierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCourierCommandIsNotConstructed)
}

func (c RemoveCourierCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c *RemoveCourierCommand) setCourierID(id string) error {
	parsed, err := kernel.ParseID(id)
	if err != nil {
		return err
	}

	c.courierID = parsed
	return nil
}
