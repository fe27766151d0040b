package order

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is an active delivery: a code currently assigned to a courier.
//
// Business rules:
//   - code holds only digits and, for new orders, has 3, 4 or 6 of them
//   - platform is derived from the code length and never changes
//   - courierID is never blank; there is no unassigned state
//   - dayKey is fixed at creation and does not follow the clock
//
// An order leaves the active set either by removal, which leaves no trace,
// or by Finish, which turns it into an Archived record.
type Order struct {
	id        kernel.ID
	code      string
	platform  Platform
	pay       Payment
	courierID kernel.ID
	dayKey    kernel.DayKey
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder validates and creates an active order.
//
// rawCode is normalized to its digits first. The checks run in a fixed order
// and the first failing one is returned as a *RejectionError:
// ReasonEmpty, ReasonInvalidLength, ReasonCourierRequired. A blank pay
// becomes DefaultPayment and a zero dayKey becomes the day of createdAt.
//
// Whether courierID names an existing courier is not checked here; the
// ledger owns that rule because only it sees the registry.
func NewOrder(
	id kernel.ID,
	rawCode string,
	pay string,
	courierID kernel.ID,
	dayKey kernel.DayKey,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	digits := NormalizeCode(rawCode)
	if digits == "" {
		return nil, newRejection(ReasonEmpty, "")
	}

	platform, err := DetectPlatform(digits)
	if err != nil {
		return nil, newRejection(ReasonInvalidLength, digits)
	}

	courierID = kernel.ID(strings.TrimSpace(string(courierID)))
	if courierID.IsZero() {
		return nil, newRejection(ReasonCourierRequired, digits)
	}

	if dayKey.IsZero() {
		dayKey = kernel.DayKeyOf(createdAt)
	}

	return &Order{
		id:        id,
		code:      digits,
		platform:  platform,
		pay:       NewPayment(pay),
		courierID: courierID,
		dayKey:    dayKey,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an active order from persisted state without
// re-running the creation rules. Only the id is required. Orders with a
// dangling courier are left for the reconciler to remove.
func RestoreOrder(
	id kernel.ID,
	code string,
	platform Platform,
	pay Payment,
	courierID kernel.ID,
	dayKey kernel.DayKey,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		code:      code,
		platform:  platform,
		pay:       pay,
		courierID: courierID,
		dayKey:    dayKey,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Code() string {
	return o.code
}

func (o *Order) Platform() Platform {
	return o.platform
}

func (o *Order) Pay() Payment {
	return o.pay
}

func (o *Order) CourierID() kernel.ID {
	return o.courierID
}

// DayKey returns the day the order was filed under, which may be empty for
// orders written by old versions.
func (o *Order) DayKey() kernel.DayKey {
	return o.dayKey
}

// EffectiveDayKey returns DayKey, or the day of CreatedAt when the stored key is empty.
func (o *Order) EffectiveDayKey() kernel.DayKey {
	if o.dayKey.IsZero() {
		return kernel.DayKeyOf(o.createdAt)
	}
	return o.dayKey
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Finish archives the order with the given completion time. The receiver is
// left untouched; removing it from the active set is the caller's job.
func (o *Order) Finish(at time.Time) *Archived {
	return &Archived{
		Order:      *o.Clone(),
		finishedAt: at,
	}
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	cp := *o
	return &cp
}
