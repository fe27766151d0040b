package queries

import (
	"context"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// GetHistoryQueryHandler reads the history. It is a premium feature.
type GetHistoryQueryHandler struct {
	reader      ports.StateReader
	entitlement kernel.Entitlement
}

func NewGetHistoryQueryHandler(reader ports.StateReader, entitlement kernel.Entitlement) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{reader: reader, entitlement: entitlement}
}

// Handle returns ErrLocked below the premium level. Otherwise it returns the
// matching finished orders sorted by finishedAt descending.
func (h GetHistoryQueryHandler) Handle(ctx context.Context, query GetHistoryQuery) ([]HistoryItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !h.entitlement.Premium() {
		return nil, ErrLocked
	}

	state, err := h.reader.Get(ctx)
	if err != nil {
		return nil, err
	}

	history := state.History()
	slices.SortStableFunc(history, func(a, b *order.Archived) int {
		return b.FinishedAt().Compare(a.FinishedAt())
	})

	names := courierNames(state)
	out := make([]HistoryItemResponse, 0, len(history))
	for _, a := range history {
		if query.Search() != "" && !strings.Contains(strings.ToLower(a.Code()), query.Search()) {
			continue
		}

		name, ok := names[a.CourierID()]
		if !ok || a.CourierID().IsZero() {
			name = UnassignedCourierName
		}

		out = append(out, HistoryItemResponse{
			ID:          a.ID(),
			Code:        a.Code(),
			Platform:    a.Platform().Display(),
			Pay:         a.Pay().String(),
			CourierID:   a.CourierID(),
			CourierName: name,
			DayKey:      a.DayKey(),
			DayLabel:    a.DayKey().Display(),
			CreatedAt:   a.CreatedAt(),
			FinishedAt:  a.FinishedAt(),
		})
	}

	return out, nil
}
