package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/pkg/guard"
)

var ErrImportSnapshotCommandIsNotConstructed = errors.New(
	"ImportSnapshotCommand must be created via NewImportSnapshotCommand constructor",
)

// ImportSnapshotCommand replaces the whole state with a backup.
type ImportSnapshotCommand struct {
	state *dispatch.State

	guard guard.ConstructorGuard
}

func NewImportSnapshotCommand(state *dispatch.State) (ImportSnapshotCommand, error) {
	if err := state.Validate(); err != nil {
		return ImportSnapshotCommand{}, err
	}

	return ImportSnapshotCommand{
		state: state.Clone(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrImportSnapshotCommandIsNotConstructed)
}

// State returns a copy of the imported state.
func (c ImportSnapshotCommand) State() *dispatch.State {
	return c.state.Clone()
}
