package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// SetDayFilterCommandHandler stores the selected day.
type SetDayFilterCommandHandler struct {
	uowFactory UoWFactory
	partition  services.DayPartition
}

func NewSetDayFilterCommandHandler(uowFactory UoWFactory, clock kernel.Clock) SetDayFilterCommandHandler {
	return SetDayFilterCommandHandler{
		uowFactory: uowFactory,
		partition:  services.NewDayPartition(clock),
	}
}

// Handle stores the filter and returns the resulting value.
func (h *SetDayFilterCommandHandler) Handle(ctx context.Context, cmd SetDayFilterCommand) (kernel.DayKey, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	dayKey := cmd.DayKey()
	if cmd.Today() {
		dayKey = h.partition.Today()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return "", err
	}

	state.SetDayFilter(dayKey)

	if err = repo.Save(ctx, state); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return dayKey, nil
}
