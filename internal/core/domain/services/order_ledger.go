package services

import (
	"sort"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// Draft is the input for adding one active order.
type Draft struct {
	// Code is the raw code as typed or pasted; it is normalized to digits.
	Code string
	// Pay is the payment label; blank means order.DefaultPayment.
	Pay string
	// CourierID must name a registered courier.
	CourierID kernel.ID
	// DayKey files the order under a day; zero means today.
	DayKey kernel.DayKey
}

// Lane groups the active orders of one courier for display.
type Lane struct {
	Courier *courier.Courier
	Orders  []*order.Order
}

// OrderLedger manages the active orders of a dispatch state.
//
// Business rules:
//   - a new order is checked in this order: digits present, valid length,
//     courier given, courier registered
//   - removing an order leaves no trace
//   - finishing moves the order to history in one step
type OrderLedger struct {
	clock kernel.Clock
	newID func() kernel.ID
}

// NewOrderLedger creates a ledger that timestamps orders with clock.
func NewOrderLedger(clock kernel.Clock) OrderLedger {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return OrderLedger{clock: clock, newID: kernel.NewID}
}

// Add validates draft and appends a new active order.
// Rejections are returned as *order.RejectionError.
func (l OrderLedger) Add(state *dispatch.State, draft Draft) (*order.Order, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	now := l.now()
	dayKey := draft.DayKey
	if dayKey.IsZero() {
		dayKey = kernel.DayKeyOf(now)
	}

	o, err := order.NewOrder(l.nextID(), draft.Code, draft.Pay, draft.CourierID, dayKey, now)
	if err != nil {
		return nil, err
	}

	if !state.HasCourier(o.CourierID()) {
		return nil, order.RejectCourierNotFound(o.Code())
	}

	if err := state.AddOrder(o); err != nil {
		return nil, err
	}

	return o, nil
}

// Remove deletes the active order with the given id. Unknown ids are a no-op.
func (l OrderLedger) Remove(state *dispatch.State, id kernel.ID) bool {
	_, ok := state.TakeOrder(id)
	return ok
}

// RemoveByCourier deletes every active order of the courier and returns how many were deleted.
func (l OrderLedger) RemoveByCourier(state *dispatch.State, courierID kernel.ID) int {
	return state.RemoveOrdersWhere(func(o *order.Order) bool {
		return o.CourierID() == courierID
	})
}

// Finish moves the active order with the given id to the history, stamped
// with the current time. It reports false and changes nothing when the order
// is not active.
func (l OrderLedger) Finish(state *dispatch.State, id kernel.ID) (*order.Archived, bool) {
	o, ok := state.TakeOrder(id)
	if !ok {
		return nil, false
	}

	// AppendHistory only rejects nil or unconstructed archives; Order.Finish
	// returns neither.
	archived := o.Finish(l.now())
	_ = state.AppendHistory(archived)

	return archived, true
}

// Lanes returns one lane per courier, in registry order. Each lane lists the
// courier's orders newest first; orders created at the same instant keep
// their relative order. Orders of unknown couriers appear in no lane.
func (l OrderLedger) Lanes(couriers []*courier.Courier, orders []*order.Order) []Lane {
	byCourier := make(map[kernel.ID][]*order.Order, len(couriers))
	for _, o := range orders {
		byCourier[o.CourierID()] = append(byCourier[o.CourierID()], o)
	}

	lanes := make([]Lane, 0, len(couriers))
	for _, c := range couriers {
		laneOrders := byCourier[c.ID()]
		if laneOrders == nil {
			laneOrders = make([]*order.Order, 0)
		}
		sort.SliceStable(laneOrders, func(i, j int) bool {
			return laneOrders[i].CreatedAt().After(laneOrders[j].CreatedAt())
		})
		lanes = append(lanes, Lane{Courier: c, Orders: laneOrders})
	}

	return lanes
}

func (l OrderLedger) now() time.Time {
	if l.clock == nil {
		return time.Now()
	}
	return l.clock.Now()
}

func (l OrderLedger) nextID() kernel.ID {
	if l.newID == nil {
		return kernel.NewID()
	}
	return l.newID()
}
