package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
)

// CreateCourierCommandHandler appends a courier to the registry.
type CreateCourierCommandHandler struct {
	uowFactory UoWFactory
	registry   services.CourierRegistry
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory UoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewCourierRegistry(),
	}
}

// Handle registers the courier and returns it with its new id.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
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

	created, err := h.registry.Add(state, cmd.Name(), cmd.Tag())
	if err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, state); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
