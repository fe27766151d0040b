// Package ports defines the persistence contracts of the dispatch core.
// Adapters implement them; the application layer depends only on these interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/dispatch"
)

// StateReader loads the dispatch state for read-only use.
type StateReader interface {
	// Get returns the stored state, or an empty unseeded state when nothing
	// was stored yet.
	Get(ctx context.Context) (*dispatch.State, error)
}

// StateRepository persists the dispatch state as a whole.
//
// The state is a single aggregate, so there is no per-entity access: a
// command loads it, mutates it through the domain services and saves it back.
type StateRepository interface {
	StateReader

	// GetForUpdate returns the stored state and locks it until the current
	// transaction ends. Concurrent writers block here, which serializes commands.
	//
	// Example:
	//   state, err := repo.GetForUpdate(ctx)
	//   if err != nil {
	//       return err
	//   }
	//   ledger.Finish(state, id)
	//   return repo.Save(ctx, state)
	GetForUpdate(ctx context.Context) (*dispatch.State, error)

	// Save replaces the stored state.
	Save(ctx context.Context, state *dispatch.State) error
}
