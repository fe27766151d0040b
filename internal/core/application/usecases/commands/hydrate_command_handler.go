package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// HydrateResult describes what hydration changed.
type HydrateResult struct {
	SeededCouriers []*courier.Courier
	Reconcile      services.ReconcileReport
	DayFilter      kernel.DayKey
}

// HydrateCommandHandler runs the startup pass over the stored state.
// It must complete before any other command or query is served.
type HydrateCommandHandler struct {
	uowFactory UoWFactory
	seeder     services.CourierSeeder
	reconciler services.MigrationReconciler
	partition  services.DayPartition
}

// NewHydrateCommandHandler creates a handler resolving "today" with clock.
func NewHydrateCommandHandler(uowFactory UoWFactory, clock kernel.Clock) HydrateCommandHandler {
	return HydrateCommandHandler{
		uowFactory: uowFactory,
		seeder:     services.NewCourierSeeder(services.NewCourierRegistry()),
		reconciler: services.NewMigrationReconciler(),
		partition:  services.NewDayPartition(clock),
	}
}

// Handle seeds, reconciles and defaults the day filter, in that order, in
// one transaction.
func (h *HydrateCommandHandler) Handle(ctx context.Context, cmd HydrateCommand) (HydrateResult, error) {
	if err := cmd.Validate(); err != nil {
		return HydrateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return HydrateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	state, err := repo.GetForUpdate(ctx)
	if err != nil {
		return HydrateResult{}, err
	}

	var result HydrateResult
	if cmd.SeedCouriers() {
		if result.SeededCouriers, err = h.seeder.Seed(state); err != nil {
			return HydrateResult{}, err
		}
	}

	result.Reconcile = h.reconciler.Reconcile(state)

	if state.DayFilter().IsZero() {
		state.SetDayFilter(h.partition.Today())
	}
	result.DayFilter = state.DayFilter()

	if err = repo.Save(ctx, state); err != nil {
		return HydrateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return HydrateResult{}, err
	}

	return result, nil
}
