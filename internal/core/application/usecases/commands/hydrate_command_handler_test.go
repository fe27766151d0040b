package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHydrateCommandHandler_Handle_FirstStart(t *testing.T) {
	ctx := testContext(t)
	state := dispatch.NewState()
	m := newMocks()
	m.expectCommitted(ctx, state)

	handler := commands.NewHydrateCommandHandler(m.factory, kernel.FixedClock(now))
	result, err := handler.Handle(ctx, commands.NewHydrateCommand(true))

	require.NoError(t, err)
	require.Len(t, result.SeededCouriers, 2)
	assert.Equal(t, "Motoboy 01", result.SeededCouriers[0].Name())
	assert.Equal(t, kernel.DayKeyOf(now), result.DayFilter)
	assert.True(t, state.Seeded())
	assert.Equal(t, kernel.DayKeyOf(now), state.DayFilter())
	m.assertExpectations(t)
}

func TestHydrateCommandHandler_Handle_ReconcilesLegacyState(t *testing.T) {
	ctx := testContext(t)
	state := stateWithCourier(t, "m", "Motoboy")
	orphan, err := courier.RestoreCourier(courier.LegacyUnassignedID, "Sem motoboy", "")
	require.NoError(t, err)
	require.NoError(t, state.AddCourier(orphan))
	addActive(t, state, "o1", "1234", "m")
	addActive(t, state, "o2", "567", courier.LegacyUnassignedID)
	state.SetDayFilter("2025-01-01")
	state.MarkSeeded()

	m := newMocks()
	m.expectCommitted(ctx, state)

	handler := commands.NewHydrateCommandHandler(m.factory, kernel.FixedClock(now))
	result, err := handler.Handle(ctx, commands.NewHydrateCommand(true))

	require.NoError(t, err)
	assert.Empty(t, result.SeededCouriers)
	assert.Equal(t, 1, result.Reconcile.RemovedActive)
	assert.Equal(t, 1, result.Reconcile.RemovedSentinelCouriers)
	assert.Equal(t, kernel.DayKey("2025-01-01"), result.DayFilter, "existing filter is kept")
	assert.Len(t, state.ActiveOrders(), 1)
	m.assertExpectations(t)
}

func TestHydrateCommandHandler_Handle_SeedingDisabled(t *testing.T) {
	ctx := testContext(t)
	state := dispatch.NewState()
	m := newMocks()
	m.expectCommitted(ctx, state)

	handler := commands.NewHydrateCommandHandler(m.factory, kernel.FixedClock(now))
	result, err := handler.Handle(ctx, commands.NewHydrateCommand(false))

	require.NoError(t, err)
	assert.Empty(t, result.SeededCouriers)
	assert.Empty(t, state.Couriers())
	m.assertExpectations(t)
}

func TestHydrateCommandHandler_Handle_InvalidCommand(t *testing.T) {
	m := newMocks()
	handler := commands.NewHydrateCommandHandler(m.factory, kernel.FixedClock(now))

	_, err := handler.Handle(testContext(t), commands.HydrateCommand{})

	require.ErrorIs(t, err, commands.ErrHydrateCommandIsNotConstructed)
	m.assertExpectations(t)
}

func TestHydrateCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := testContext(t)
	state := dispatch.NewState()
	saveErr := errors.New("disk full")
	m := newMocks()
	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StateRepository").Return(m.repo).Once(),
		m.repo.On("GetForUpdate", ctx).Return(state, nil).Once(),
		m.repo.On("Save", ctx, state).Return(saveErr).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewHydrateCommandHandler(m.factory, kernel.FixedClock(now))
	_, err := handler.Handle(ctx, commands.NewHydrateCommand(true))

	require.ErrorIs(t, err, saveErr)
	m.assertExpectations(t)
}
