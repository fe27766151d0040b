package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetStatsQueryHandler aggregates the history. It is a premium feature.
type GetStatsQueryHandler struct {
	reader      ports.StateReader
	entitlement kernel.Entitlement
	aggregator  services.StatsAggregator
}

func NewGetStatsQueryHandler(reader ports.StateReader, entitlement kernel.Entitlement) GetStatsQueryHandler {
	return GetStatsQueryHandler{
		reader:      reader,
		entitlement: entitlement,
		aggregator:  services.NewStatsAggregator(),
	}
}

// Handle returns ErrLocked below the premium level. Courier ids are resolved
// to names; cleared and unknown couriers are shown as UnassignedCourierName.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (StatsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatsResponse{}, err
	}
	if !h.entitlement.Premium() {
		return StatsResponse{}, ErrLocked
	}

	state, err := h.reader.Get(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	stats := h.aggregator.Aggregate(state.History(), h.entitlement)
	if stats.Locked {
		return StatsResponse{}, ErrLocked
	}

	names := courierNames(state)
	out := StatsResponse{
		Total:     stats.Total,
		ByCourier: make([]CourierStatResponse, 0, len(stats.ByCourier)),
		ByPay:     make([]PayStatResponse, 0, len(stats.ByPay)),
	}
	for _, c := range stats.ByCourier {
		name, ok := names[c.CourierID]
		if !ok || c.CourierID.IsZero() {
			name = UnassignedCourierName
		}
		out.ByCourier = append(out.ByCourier, CourierStatResponse{
			CourierID:   c.CourierID,
			CourierName: name,
			Finished:    c.Count,
		})
	}
	for _, p := range stats.ByPay {
		out.ByPay = append(out.ByPay, PayStatResponse{Pay: p.Pay.String(), Finished: p.Count})
	}

	return out, nil
}
