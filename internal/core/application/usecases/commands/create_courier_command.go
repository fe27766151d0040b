package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a new courier.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Motoboy 03", "CG-160")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name string
	tag  string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand trims name and tag. A blank name fails with
// courier.ErrNameIsRequired.
func NewCreateCourierCommand(name, tag string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return CreateCourierCommand{}, err
	}
	command.tag = strings.TrimSpace(tag)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Tag() string {
	return c.tag
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return courier.ErrNameIsRequired
	}

	c.name = name
	return nil
}
