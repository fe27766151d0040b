package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// UpdateCourierCommandHandler applies a patch to a registered courier.
type UpdateCourierCommandHandler struct {
	uowFactory UoWFactory
	registry   services.CourierRegistry
}

func NewUpdateCourierCommandHandler(uowFactory UoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewCourierRegistry(),
	}
}

// Handle returns the updated courier. An unknown id changes nothing and
// fails with errs.ErrObjectNotFound.
func (h *UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return nil, err
	}

	if !h.registry.Update(state, cmd.CourierID(), cmd.Patch()) {
		return nil, errs.NewObjectNotFoundError("courier", cmd.CourierID())
	}

	if err = repo.Save(ctx, state); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	updated, _ := state.Courier(cmd.CourierID())
	return updated, nil
}
