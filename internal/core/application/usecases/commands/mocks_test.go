package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Get(ctx context.Context) (*dispatch.State, error) {
	args := m.Called(ctx)
	state, _ := args.Get(0).(*dispatch.State)
	return state, args.Error(1)
}

func (m *MockStateRepository) GetForUpdate(ctx context.Context) (*dispatch.State, error) {
	args := m.Called(ctx)
	state, _ := args.Get(0).(*dispatch.State)
	return state, args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *dispatch.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) StateRepository() ports.StateRepository {
	args := m.Called()
	return args.Get(0).(ports.StateRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// mocks bundles the doubles of one handler test.
type mocks struct {
	repo    *MockStateRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

func newMocks() mocks {
	return mocks{
		repo:    new(MockStateRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}
}

// expectCommitted sets up the full successful flow around state.
func (m mocks) expectCommitted(ctx context.Context, state *dispatch.State) {
	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StateRepository").Return(m.repo).Once(),
		m.repo.On("GetForUpdate", ctx).Return(state, nil).Once(),
		m.repo.On("Save", ctx, state).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectRolledBack sets up a flow that loads state and never saves.
func (m mocks) expectRolledBack(ctx context.Context, state *dispatch.State) {
	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StateRepository").Return(m.repo).Once(),
		m.repo.On("GetForUpdate", ctx).Return(state, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func (m mocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.repo.AssertExpectations(t)
}

func stateWithCourier(t *testing.T, id kernel.ID, name string) *dispatch.State {
	t.Helper()
	state := dispatch.NewState()
	c, err := courier.NewCourier(id, name, "")
	require.NoError(t, err)
	require.NoError(t, state.AddCourier(c))
	return state
}

func addActive(t *testing.T, state *dispatch.State, id kernel.ID, code string, courierID kernel.ID) {
	t.Helper()
	o, err := order.NewOrder(id, code, "PIX", courierID, "", now)
	require.NoError(t, err)
	require.NoError(t, state.AddOrder(o))
}

// testContext mirrors testing.T.Context (Go 1.24+): the context is cancelled
// just before Cleanup-registered functions run.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
