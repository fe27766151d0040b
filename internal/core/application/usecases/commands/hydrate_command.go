package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrHydrateCommandIsNotConstructed = errors.New(
	"HydrateCommand must be created via NewHydrateCommand constructor",
)

// HydrateCommand prepares the stored state for use at startup: it seeds the
// default couriers when asked to, removes legacy unassigned orders, and
// selects today when no day filter is set.
//
// Example:
//
//	cmd := NewHydrateCommand(cfg.SeedCouriers)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("hydrate state: %w", err)
//	}
type HydrateCommand struct {
	seedCouriers bool

	guard guard.ConstructorGuard
}

// NewHydrateCommand creates a hydration command.
func NewHydrateCommand(seedCouriers bool) HydrateCommand {
	return HydrateCommand{
		seedCouriers: seedCouriers,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c HydrateCommand) Validate() error {
	return c.guard.Validate(ErrHydrateCommandIsNotConstructed)
}

// SeedCouriers reports whether default couriers may be created.
func (c HydrateCommand) SeedCouriers() bool {
	return c.seedCouriers
}
