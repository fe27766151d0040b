package dispatch

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for the dispatch state.
var (
	// ErrStateIsNotConstructed is returned when using an improperly initialized State.
	ErrStateIsNotConstructed = errors.New("State must be created via NewState or RestoreState constructor")
	// ErrDuplicateCourier is returned when a courier id is already registered.
	ErrDuplicateCourier = errors.New("courier id already registered")
	// ErrDuplicateOrder is returned when an active order id is already present.
	ErrDuplicateOrder = errors.New("order id already active")
)

// State is the aggregate holding everything the tracker knows: the courier
// registry in insertion order, the active orders, the history, the selected
// day filter and whether the default couriers were seeded.
//
// State owns its collections. Getters return clones so callers can never
// mutate the aggregate behind its back; changes go through the methods below,
// which the domain services call.
type State struct {
	couriers  []*courier.Courier
	active    []*order.Order
	history   []*order.Archived
	dayFilter kernel.DayKey
	seeded    bool

	guard guard.ConstructorGuard
}

// NewState returns an empty, unseeded state.
func NewState() *State {
	return &State{
		couriers: make([]*courier.Courier, 0),
		active:   make([]*order.Order, 0),
		history:  make([]*order.Archived, 0),
		guard:    guard.NewConstructorGuard(),
	}
}

// RestoreState rebuilds a state from persisted parts. Every element must be a
// constructed entity. Duplicate courier or active order ids are rejected;
// dangling courier references are allowed and left for reconciliation.
func RestoreState(
	couriers []*courier.Courier,
	active []*order.Order,
	history []*order.Archived,
	dayFilter kernel.DayKey,
	seeded bool,
) (*State, error) {
	s := NewState()
	s.dayFilter = dayFilter
	s.seeded = seeded

	var problems []error
	for i, c := range couriers {
		if err := c.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("courier %d: %w", i, err))
			continue
		}
		if err := s.AddCourier(c); err != nil {
			problems = append(problems, fmt.Errorf("courier %d: %w", i, err))
		}
	}
	for i, o := range active {
		if err := o.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("order %d: %w", i, err))
			continue
		}
		if err := s.AddOrder(o); err != nil {
			problems = append(problems, fmt.Errorf("order %d: %w", i, err))
		}
	}
	for i, a := range history {
		if a == nil {
			problems = append(problems, fmt.Errorf("history %d: %w", i, order.ErrOrderIsNotConstructed))
			continue
		}
		if err := a.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("history %d: %w", i, err))
			continue
		}
		s.history = append(s.history, a.Clone())
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the state was created through a constructor.
func (s *State) Validate() error {
	if s == nil {
		return ErrStateIsNotConstructed
	}
	return s.guard.Validate(ErrStateIsNotConstructed)
}

// Couriers returns copies of the registered couriers in insertion order.
func (s *State) Couriers() []*courier.Courier {
	out := make([]*courier.Courier, 0, len(s.couriers))
	for _, c := range s.couriers {
		out = append(out, c.Clone())
	}
	return out
}

// Courier returns a copy of the courier with the given id.
func (s *State) Courier(id kernel.ID) (*courier.Courier, bool) {
	if i := s.courierIndex(id); i >= 0 {
		return s.couriers[i].Clone(), true
	}
	return nil, false
}

// HasCourier reports whether id names a registered courier.
func (s *State) HasCourier(id kernel.ID) bool {
	return s.courierIndex(id) >= 0
}

// CourierIDs returns the set of registered courier ids.
func (s *State) CourierIDs() map[kernel.ID]struct{} {
	ids := make(map[kernel.ID]struct{}, len(s.couriers))
	for _, c := range s.couriers {
		ids[c.ID()] = struct{}{}
	}
	return ids
}

// AddCourier appends a courier to the registry.
func (s *State) AddCourier(c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if s.HasCourier(c.ID()) {
		return fmt.Errorf("%w: %s", ErrDuplicateCourier, c.ID())
	}
	s.couriers = append(s.couriers, c.Clone())
	return nil
}

// UpdateCourier applies patch to the courier with the given id.
// It reports whether the courier exists.
func (s *State) UpdateCourier(id kernel.ID, patch courier.Patch) bool {
	i := s.courierIndex(id)
	if i < 0 {
		return false
	}
	s.couriers[i].Apply(patch)
	return true
}

// RemoveCourier deletes the courier with the given id. Active orders that
// reference it are not touched.
func (s *State) RemoveCourier(id kernel.ID) bool {
	n := s.RemoveCouriersWhere(func(c *courier.Courier) bool { return c.ID() == id })
	return n > 0
}

// RemoveCouriersWhere deletes every courier matching pred and returns how many were removed.
func (s *State) RemoveCouriersWhere(pred func(*courier.Courier) bool) int {
	before := len(s.couriers)
	s.couriers = slices.DeleteFunc(s.couriers, pred)
	return before - len(s.couriers)
}

// ActiveOrders returns copies of the active orders in insertion order.
func (s *State) ActiveOrders() []*order.Order {
	out := make([]*order.Order, 0, len(s.active))
	for _, o := range s.active {
		out = append(out, o.Clone())
	}
	return out
}

// ActiveOrder returns a copy of the active order with the given id.
func (s *State) ActiveOrder(id kernel.ID) (*order.Order, bool) {
	if i := s.orderIndex(id); i >= 0 {
		return s.active[i].Clone(), true
	}
	return nil, false
}

// AddOrder appends an active order.
func (s *State) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if s.orderIndex(o.ID()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, o.ID())
	}
	s.active = append(s.active, o.Clone())
	return nil
}

// TakeOrder removes the active order with the given id and returns it.
func (s *State) TakeOrder(id kernel.ID) (*order.Order, bool) {
	i := s.orderIndex(id)
	if i < 0 {
		return nil, false
	}
	o := s.active[i]
	s.active = slices.Delete(s.active, i, i+1)
	return o, true
}

// RemoveOrdersWhere deletes every active order matching pred and returns how many were removed.
func (s *State) RemoveOrdersWhere(pred func(*order.Order) bool) int {
	before := len(s.active)
	s.active = slices.DeleteFunc(s.active, pred)
	return before - len(s.active)
}

// History returns copies of the archived orders in the order they were finished.
func (s *State) History() []*order.Archived {
	out := make([]*order.Archived, 0, len(s.history))
	for _, a := range s.history {
		out = append(out, a.Clone())
	}
	return out
}

// AppendHistory adds an archived order to the end of the history.
func (s *State) AppendHistory(a *order.Archived) error {
	if a == nil {
		return errs.NewValueIsRequiredError("archived order")
	}
	if err := a.Validate(); err != nil {
		return err
	}
	s.history = append(s.history, a.Clone())
	return nil
}

// ClearHistoryCouriers clears the courier reference of every archived order
// whose courier id matches pred, and returns how many references were cleared.
func (s *State) ClearHistoryCouriers(pred func(kernel.ID) bool) int {
	cleared := 0
	for _, a := range s.history {
		if pred(a.CourierID()) && a.ClearCourier() {
			cleared++
		}
	}
	return cleared
}

// DayFilter returns the selected day, or the zero key when all days are shown.
func (s *State) DayFilter() kernel.DayKey {
	return s.dayFilter
}

func (s *State) SetDayFilter(k kernel.DayKey) {
	s.dayFilter = k
}

// Seeded reports whether the default couriers were created once already.
func (s *State) Seeded() bool {
	return s.seeded
}

func (s *State) MarkSeeded() {
	s.seeded = true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	cp := &State{
		couriers:  s.Couriers(),
		active:    s.ActiveOrders(),
		history:   s.History(),
		dayFilter: s.dayFilter,
		seeded:    s.seeded,
		guard:     s.guard,
	}
	return cp
}

func (s *State) courierIndex(id kernel.ID) int {
	return slices.IndexFunc(s.couriers, func(c *courier.Courier) bool { return c.ID() == id })
}

func (s *State) orderIndex(id kernel.ID) int {
	return slices.IndexFunc(s.active, func(o *order.Order) bool { return o.ID() == id })
}
