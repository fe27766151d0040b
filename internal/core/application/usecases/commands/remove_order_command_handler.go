package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// RemoveOrderCommandHandler deletes an active order.
type RemoveOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.OrderLedger
}

func NewRemoveOrderCommandHandler(uowFactory UoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewOrderLedger(nil),
	}
}

// Handle removes the order. An id that is not active changes nothing and
// fails with errs.ErrObjectNotFound.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return err
	}

	if !h.ledger.Remove(state, cmd.OrderID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = repo.Save(ctx, state); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
