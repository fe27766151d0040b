package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
)

// DefaultCourierNames are registered on the very first start.
var DefaultCourierNames = []string{"Motoboy 01", "Motoboy 02"}

// CourierSeeder creates the default couriers once per state lifetime. A state
// whose couriers were all deleted by the user is never seeded again.
type CourierSeeder struct {
	registry CourierRegistry
}

func NewCourierSeeder(registry CourierRegistry) CourierSeeder {
	return CourierSeeder{registry: registry}
}

// Seed registers DefaultCourierNames when the state was never seeded and has
// no couriers, then marks it seeded. It returns the created couriers.
func (s CourierSeeder) Seed(state *dispatch.State) ([]*courier.Courier, error) {
	if state.Seeded() || len(state.Couriers()) > 0 {
		return nil, nil
	}

	created := make([]*courier.Courier, 0, len(DefaultCourierNames))
	for _, name := range DefaultCourierNames {
		c, err := s.registry.Add(state, name, "")
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	state.MarkSeeded()

	return created, nil
}
