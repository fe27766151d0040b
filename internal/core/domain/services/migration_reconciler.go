package services

import (
	"strings"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ReconcileReport counts what a reconciliation pass changed.
type ReconcileReport struct {
	RemovedActive           int
	ClearedHistory          int
	RemovedSentinelCouriers int
}

// Changed reports whether the pass modified the state.
func (r ReconcileReport) Changed() bool {
	return r.RemovedActive > 0 || r.ClearedHistory > 0 || r.RemovedSentinelCouriers > 0
}

// MigrationReconciler removes the "unassigned" concept from state written by
// older versions.
//
// Older versions kept orders with no courier, or with the "ORPHAN"
// pseudo-courier. After a pass:
//   - the pseudo-courier is gone from the registry
//   - every active order references a registered courier; the rest are deleted
//   - archived orders with a blank or unknown courier have it cleared to ""
//
// Running the pass twice changes nothing the second time.
type MigrationReconciler struct{}

func NewMigrationReconciler() MigrationReconciler {
	return MigrationReconciler{}
}

// Reconcile normalizes state in place.
func (m MigrationReconciler) Reconcile(state *dispatch.State) ReconcileReport {
	var report ReconcileReport

	report.RemovedSentinelCouriers = state.RemoveCouriersWhere(func(c *courier.Courier) bool {
		return isSentinel(c.ID())
	})

	valid := state.CourierIDs()
	dangling := func(id kernel.ID) bool {
		if isSentinel(id) {
			return true
		}
		_, ok := valid[kernel.ID(strings.TrimSpace(string(id)))]
		return !ok
	}

	report.RemovedActive = state.RemoveOrdersWhere(func(o *order.Order) bool {
		return dangling(o.CourierID())
	})
	report.ClearedHistory = state.ClearHistoryCouriers(dangling)

	return report
}

func isSentinel(id kernel.ID) bool {
	trimmed := kernel.ID(strings.TrimSpace(string(id)))
	return trimmed == "" || trimmed == courier.LegacyUnassignedID
}
