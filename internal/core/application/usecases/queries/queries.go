// Package queries contains read operations over the dispatch state.
// Queries never mutate; they load the state through ports.StateReader and
// return read models shaped for the transport adapters.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrLocked is returned by premium queries below kernel.EntitlementPremium.
var ErrLocked = errors.New("feature locked: entitlement level 2 required")

// UnassignedCourierName is displayed for history records without a courier.
const UnassignedCourierName = "—"

// courierNames maps courier ids to display names.
func courierNames(state *dispatch.State) map[kernel.ID]string {
	couriers := state.Couriers()
	names := make(map[kernel.ID]string, len(couriers))
	for _, c := range couriers {
		names[c.ID()] = c.Name()
	}
	return names
}
