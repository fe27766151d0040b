package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// Rejection pairs a code with the reason it was not added.
type Rejection struct {
	Code   string
	Reason order.Reason
}

// AddOrdersResult lists what happened to each pasted code.
type AddOrdersResult struct {
	Added    []*order.Order
	Invalid  []string
	Rejected []Rejection
	DayKey   kernel.DayKey
}

// AddOrdersCommandHandler adds a batch of orders in one transaction.
type AddOrdersCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.OrderLedger
	partition  services.DayPartition
}

// NewAddOrdersCommandHandler creates a handler timestamping orders with clock.
func NewAddOrdersCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AddOrdersCommandHandler {
	return AddOrdersCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewOrderLedger(clock),
		partition:  services.NewDayPartition(clock),
	}
}

// Handle files every code under the selected day, or today when no day is
// selected.
//
// The batch fails as a whole with ErrNoCouriers when the registry is empty
// and with order.ErrCourierNotFound when the courier is unknown. Otherwise
// codes that the ledger rejects are reported in Rejected and the rest are
// added; nothing is saved when no code was added.
func (h *AddOrdersCommandHandler) Handle(ctx context.Context, cmd AddOrdersCommand) (AddOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return AddOrdersResult{}, err
	}

	if len(state.Couriers()) == 0 {
		return AddOrdersResult{}, ErrNoCouriers
	}
	if !state.HasCourier(cmd.CourierID()) {
		return AddOrdersResult{}, order.RejectCourierNotFound("")
	}

	dayKey := state.DayFilter()
	if dayKey.IsZero() {
		dayKey = h.partition.Today()
	}

	result := AddOrdersResult{
		Added:    make([]*order.Order, 0, len(cmd.Codes())),
		Invalid:  cmd.InvalidCodes(),
		Rejected: make([]Rejection, 0),
		DayKey:   dayKey,
	}

	for _, code := range cmd.Codes() {
		added, addErr := h.ledger.Add(state, services.Draft{
			Code:      code,
			Pay:       cmd.Pay(),
			CourierID: cmd.CourierID(),
			DayKey:    dayKey,
		})
		if addErr != nil {
			reason, ok := order.ReasonOf(addErr)
			if !ok {
				return AddOrdersResult{}, addErr
			}
			result.Rejected = append(result.Rejected, Rejection{Code: code, Reason: reason})
			continue
		}
		result.Added = append(result.Added, added)
	}

	if len(result.Added) == 0 {
		return result, nil
	}

	if err = repo.Save(ctx, state); err != nil {
		return AddOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddOrdersResult{}, err
	}

	return result, nil
}
