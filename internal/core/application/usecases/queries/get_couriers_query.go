package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery lists the registered couriers in registry order.
type GetCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// CourierResponse is the courier read model.
type CourierResponse struct {
	ID    kernel.ID
	Name  string
	Tag   string
	Label string
	// ActiveOrders counts the courier's active orders across all days.
	ActiveOrders int
}
