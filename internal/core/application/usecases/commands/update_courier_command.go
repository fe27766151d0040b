package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateCourierCommandIsNotConstructed = errors.New(
		"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
	)
	ErrNothingToUpdate = errs.NewValueIsRequiredError("name or tag")
)

// UpdateCourierCommand renames a courier or changes its tag.
// Nil fields are left unchanged; a blank name is ignored.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	patch     courier.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand requires a courier id and at least one field.
func NewUpdateCourierCommand(courierID string, name, tag *string) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	var patchErr error
	if name == nil && tag == nil {
		patchErr = ErrNothingToUpdate
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		patchErr,
	); err != nil {
		return UpdateCourierCommand{}, err
	}
	command.patch = courier.Patch{Name: name, Tag: tag}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

func (c UpdateCourierCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c UpdateCourierCommand) Patch() courier.Patch {
	return c.patch
}

func (c *UpdateCourierCommand) setCourierID(id string) error {
	parsed, err := kernel.ParseID(id)
	if err != nil {
		return err
	}

	c.courierID = parsed
	return nil
}
