package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// GetCouriersQueryHandler reads the courier registry.
type GetCouriersQueryHandler struct {
	reader ports.StateReader
}

func NewGetCouriersQueryHandler(reader ports.StateReader) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{reader: reader}
}

// Handle returns couriers in the order they were registered.
func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	state, err := h.reader.Get(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[kernel.ID]int)
	for _, o := range state.ActiveOrders() {
		counts[o.CourierID()]++
	}

	couriers := state.Couriers()
	out := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		out = append(out, CourierResponse{
			ID:           c.ID(),
			Name:         c.Name(),
			Tag:          c.Tag(),
			Label:        c.Label(),
			ActiveOrders: counts[c.ID()],
		})
	}

	return out, nil
}
