package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// ImportSnapshotCommandHandler swaps the stored state for an imported one.
type ImportSnapshotCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.MigrationReconciler
}

func NewImportSnapshotCommandHandler(uowFactory UoWFactory) ImportSnapshotCommandHandler {
	return ImportSnapshotCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewMigrationReconciler(),
	}
}

// Handle reconciles the imported state and stores it in place of the current
// one. The current row is locked first so in-flight commands finish before
// the swap.
func (h *ImportSnapshotCommandHandler) Handle(
	ctx context.Context,
	cmd ImportSnapshotCommand,
) (services.ReconcileReport, error) {
	if err := cmd.Validate(); err != nil {
		return services.ReconcileReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReconcileReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StateRepository()
	if _, err := repo.GetForUpdate(ctx); err != nil {
		return services.ReconcileReport{}, err
	}

	imported := cmd.State()
	report := h.reconciler.Reconcile(imported)

	if err := repo.Save(ctx, imported); err != nil {
		return services.ReconcileReport{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return services.ReconcileReport{}, err
	}

	return report, nil
}
