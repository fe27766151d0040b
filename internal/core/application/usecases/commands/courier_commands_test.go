package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestNewCreateCourierCommand(t *testing.T) {
	cmd, err := commands.NewCreateCourierCommand("  Ana ", " XRE ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", cmd.Name())
	assert.Equal(t, "XRE", cmd.Tag())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewCreateCourierCommand("   ", "tag")
	assert.ErrorIs(t, err, courier.ErrNameIsRequired)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	state := dispatch.NewState()
	m := newMocks()
	m.expectCommitted(ctx, state)

	cmd, err := commands.NewCreateCourierCommand("Ana", "")
	require.NoError(t, err)

	handler := commands.NewCreateCourierCommandHandler(m.factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name())
	assert.True(t, state.HasCourier(created.ID()))
	m.assertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_InvalidCommand(t *testing.T) {
	m := newMocks()
	handler := commands.NewCreateCourierCommandHandler(m.factory)

	_, err := handler.Handle(testContext(t), commands.CreateCourierCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
	m.assertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := testContext(t)
	beginErr := errors.New("connection refused")
	m := newMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(beginErr).Once()

	cmd, err := commands.NewCreateCourierCommand("Ana", "")
	require.NoError(t, err)

	handler := commands.NewCreateCourierCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, beginErr)
	m.assertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_LoadError(t *testing.T) {
	ctx := testContext(t)
	loadErr := errors.New("lock timeout")
	m := newMocks()
	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("StateRepository").Return(m.repo).Once(),
		m.repo.On("GetForUpdate", ctx).Return(nil, loadErr).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateCourierCommand("Ana", "")
	require.NoError(t, err)

	handler := commands.NewCreateCourierCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, loadErr)
	m.assertExpectations(t)
}

func TestNewUpdateCourierCommand(t *testing.T) {
	cmd, err := commands.NewUpdateCourierCommand(" c1 ", ptr("Ana"), nil)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID("c1"), cmd.CourierID())
	assert.Equal(t, "Ana", *cmd.Patch().Name)
	assert.Nil(t, cmd.Patch().Tag)

	_, err = commands.NewUpdateCourierCommand("", nil, nil)
	assert.ErrorIs(t, err, kernel.ErrIDIsRequired)
	assert.ErrorIs(t, err, commands.ErrNothingToUpdate)
}

func TestUpdateCourierCommandHandler_Handle(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		ctx := testContext(t)
		state := stateWithCourier(t, "c1", "Ana")
		m := newMocks()
		m.expectCommitted(ctx, state)

		cmd, err := commands.NewUpdateCourierCommand("c1", ptr("   "), ptr(" CG "))
		require.NoError(t, err)

		handler := commands.NewUpdateCourierCommandHandler(m.factory)
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Ana", updated.Name())
		assert.Equal(t, "CG", updated.Tag())
		m.assertExpectations(t)
	})

	t.Run("unknown courier", func(t *testing.T) {
		ctx := testContext(t)
		state := stateWithCourier(t, "c1", "Ana")
		m := newMocks()
		m.expectRolledBack(ctx, state)

		cmd, err := commands.NewUpdateCourierCommand("ghost", ptr("Bruno"), nil)
		require.NoError(t, err)

		handler := commands.NewUpdateCourierCommandHandler(m.factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		c, _ := state.Courier("c1")
		assert.Equal(t, "Ana", c.Name())
		m.assertExpectations(t)
	})
}

func TestRemoveCourierCommandHandler_Handle(t *testing.T) {
	t.Run("cascades to active orders only", func(t *testing.T) {
		ctx := testContext(t)
		state := stateWithCourier(t, "c1", "Ana")
		c2, err := courier.NewCourier("c2", "Bruno", "")
		require.NoError(t, err)
		require.NoError(t, state.AddCourier(c2))
		addActive(t, state, "o1", "1234", "c1")
		addActive(t, state, "o2", "567", "c1")
		addActive(t, state, "o3", "890", "c2")
		addActive(t, state, "o4", "321", "c1")
		finished, ok := state.TakeOrder("o4")
		require.True(t, ok)
		require.NoError(t, state.AppendHistory(finished.Finish(now)))

		m := newMocks()
		m.expectCommitted(ctx, state)

		cmd, err := commands.NewRemoveCourierCommand("c1")
		require.NoError(t, err)

		handler := commands.NewRemoveCourierCommandHandler(m.factory)
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, result.RemovedOrders)
		assert.False(t, state.HasCourier("c1"))
		require.Len(t, state.ActiveOrders(), 1)
		assert.Equal(t, kernel.ID("c2"), state.ActiveOrders()[0].CourierID())
		require.Len(t, state.History(), 1)
		assert.Equal(t, kernel.ID("c1"), state.History()[0].CourierID())
		m.assertExpectations(t)
	})

	t.Run("unknown courier", func(t *testing.T) {
		ctx := testContext(t)
		m := newMocks()
		m.expectRolledBack(ctx, dispatch.NewState())

		cmd, err := commands.NewRemoveCourierCommand("ghost")
		require.NoError(t, err)

		handler := commands.NewRemoveCourierCommandHandler(m.factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})
}
