package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// RemoveCourierResult reports how many active orders went with the courier.
type RemoveCourierResult struct {
	RemovedOrders int
}

// RemoveCourierCommandHandler removes a courier and cascades to its active
// orders so no active order is left pointing at a missing courier.
type RemoveCourierCommandHandler struct {
	uowFactory UoWFactory
	registry   services.CourierRegistry
	ledger     services.OrderLedger
}

func NewRemoveCourierCommandHandler(uowFactory UoWFactory) RemoveCourierCommandHandler {
	return RemoveCourierCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewCourierRegistry(),
		ledger:     services.NewOrderLedger(nil),
	}
}

// Handle deletes the courier's active orders, then the courier. An unknown
// id changes nothing and fails with errs.ErrObjectNotFound.
func (h *RemoveCourierCommandHandler) Handle(ctx context.Context, cmd RemoveCourierCommand) (RemoveCourierResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveCourierResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RemoveCourierResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return RemoveCourierResult{}, err
	}

	if !state.HasCourier(cmd.CourierID()) {
		return RemoveCourierResult{}, errs.NewObjectNotFoundError("courier", cmd.CourierID())
	}

	result := RemoveCourierResult{
		RemovedOrders: h.ledger.RemoveByCourier(state, cmd.CourierID()),
	}
	h.registry.Remove(state, cmd.CourierID())

	if err = repo.Save(ctx, state); err != nil {
		return RemoveCourierResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RemoveCourierResult{}, err
	}

	return result, nil
}
