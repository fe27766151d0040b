package order

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Archived is a completed order kept in the history.
//
// It carries every field of the active order plus the completion time. The
// courier reference may be empty when the courier no longer exists; it is
// cleared rather than left dangling.
type Archived struct {
	Order
	finishedAt time.Time
}

// RestoreArchived rebuilds a history record from persisted state.
func RestoreArchived(
	id kernel.ID,
	code string,
	platform Platform,
	pay Payment,
	courierID kernel.ID,
	dayKey kernel.DayKey,
	createdAt time.Time,
	finishedAt time.Time,
) (*Archived, error) {
	o, err := RestoreOrder(id, code, platform, pay, courierID, dayKey, createdAt)
	if err != nil {
		return nil, err
	}

	return &Archived{
		Order:      *o,
		finishedAt: finishedAt,
	}, nil
}

func (a *Archived) FinishedAt() time.Time {
	return a.finishedAt
}

// ClearCourier drops the courier reference. It reports whether a reference was present.
func (a *Archived) ClearCourier() bool {
	if a.courierID == "" {
		return false
	}
	a.courierID = ""
	return true
}

// Clone returns an independent copy.
func (a *Archived) Clone() *Archived {
	cp := *a
	return &cp
}
