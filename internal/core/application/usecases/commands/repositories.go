// Package commands contains the operations that modify the dispatch state.
// Every handler follows the same flow: validate the command, open a unit of
// work, load the state with a row lock, apply the domain services, save and
// commit. Any failure rolls the transaction back.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StateRepoFactory provides access to the state repository within a transaction.
	StateRepoFactory interface {
		StateRepository() ports.StateRepository
	}

	// UoW manages one transaction around the dispatch state.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.StateRepository()
	//   state, err := repo.GetForUpdate(ctx)
	//   // ... mutate state
	//   err = repo.Save(ctx, state)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		StateRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
