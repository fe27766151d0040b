package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// FinishOrdersResult lists the archived orders and the ids that were not active.
type FinishOrdersResult struct {
	Finished []*order.Archived
	Missing  []kernel.ID
}

// FinishOrdersCommandHandler archives several orders in one transaction.
type FinishOrdersCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.OrderLedger
}

// NewFinishOrdersCommandHandler creates a handler stamping finishedAt with clock.
func NewFinishOrdersCommandHandler(uowFactory UoWFactory, clock kernel.Clock) FinishOrdersCommandHandler {
	return FinishOrdersCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewOrderLedger(clock),
	}
}

// Handle finishes every listed order that is still active. Ids that are not
// active are skipped and reported in Missing.
func (h *FinishOrdersCommandHandler) Handle(ctx context.Context, cmd FinishOrdersCommand) (FinishOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return FinishOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FinishOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return FinishOrdersResult{}, err
	}

	result := FinishOrdersResult{
		Finished: make([]*order.Archived, 0, len(cmd.OrderIDs())),
		Missing:  make([]kernel.ID, 0),
	}
	for _, id := range cmd.OrderIDs() {
		archived, ok := h.ledger.Finish(state, id)
		if !ok {
			result.Missing = append(result.Missing, id)
			continue
		}
		result.Finished = append(result.Finished, archived)
	}

	if len(result.Finished) == 0 {
		return result, nil
	}

	if err = repo.Save(ctx, state); err != nil {
		return FinishOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FinishOrdersResult{}, err
	}

	return result, nil
}
