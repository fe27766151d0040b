package http_test

import (
	"context"
	"errors"
	"sync"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/ports"
)

// memoryStore is an in-process stand-in for the Postgres unit of work.
type memoryStore struct {
	mu    sync.Mutex
	state *dispatch.State
}

func newMemoryStore() *memoryStore {
	return &memoryStore{state: dispatch.NewState()}
}

func (m *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: m}
}

func (m *memoryStore) Get(context.Context) (*dispatch.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone(), nil
}

func (m *memoryStore) current() *dispatch.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

type memoryUoW struct {
	store   *memoryStore
	pending *dispatch.State
	open    bool
}

func (u *memoryUoW) Begin(context.Context) error {
	u.open = true
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.open {
		return errors.New("no transaction")
	}
	if u.pending != nil {
		u.store.mu.Lock()
		u.store.state = u.pending
		u.store.mu.Unlock()
	}
	u.open, u.pending = false, nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.open, u.pending = false, nil
	return nil
}

func (u *memoryUoW) StateRepository() ports.StateRepository {
	return memoryRepo{uow: u}
}

type memoryRepo struct {
	uow *memoryUoW
}

func (r memoryRepo) Get(ctx context.Context) (*dispatch.State, error) {
	return r.uow.store.Get(ctx)
}

func (r memoryRepo) GetForUpdate(ctx context.Context) (*dispatch.State, error) {
	return r.uow.store.Get(ctx)
}

func (r memoryRepo) Save(_ context.Context, state *dispatch.State) error {
	r.uow.pending = state.Clone()
	return nil
}
