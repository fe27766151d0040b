package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// DayPartition slices active orders by the local day they were filed under.
type DayPartition struct {
	clock kernel.Clock
}

// NewDayPartition creates a partition that resolves "today" with clock.
func NewDayPartition(clock kernel.Clock) DayPartition {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return DayPartition{clock: clock}
}

// Today returns the day key of the current local date.
func (p DayPartition) Today() kernel.DayKey {
	if p.clock == nil {
		return kernel.DayKeyOf(kernel.SystemClock.Now())
	}
	return kernel.DayKeyOf(p.clock.Now())
}

// FilterActive returns the orders filed under filter, preserving their order.
// A zero filter returns every order. Orders stored without a day key are
// matched on the day they were created.
func (p DayPartition) FilterActive(orders []*order.Order, filter kernel.DayKey) []*order.Order {
	if filter.IsZero() {
		return orders
	}

	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.EffectiveDayKey() == filter {
			out = append(out, o)
		}
	}
	return out
}
