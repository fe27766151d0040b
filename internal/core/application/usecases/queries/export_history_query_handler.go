package queries

import (
	"context"

	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// ExportHistoryQueryHandler flattens the history for export. It is a premium feature.
type ExportHistoryQueryHandler struct {
	reader      ports.StateReader
	entitlement kernel.Entitlement
}

func NewExportHistoryQueryHandler(reader ports.StateReader, entitlement kernel.Entitlement) ExportHistoryQueryHandler {
	return ExportHistoryQueryHandler{reader: reader, entitlement: entitlement}
}

// Handle returns ErrLocked below the premium level.
func (h ExportHistoryQueryHandler) Handle(ctx context.Context, query ExportHistoryQuery) ([]ExportRow, error) {
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

	return ExportRows(state), nil
}

// ExportRows flattens the history of state without any entitlement check.
// Offline tooling working on backup files uses it directly.
func ExportRows(state *dispatch.State) []ExportRow {
	names := courierNames(state)
	history := state.History()

	rows := make([]ExportRow, 0, len(history))
	for _, a := range history {
		rows = append(rows, ExportRow{
			Code:       a.Code(),
			Platform:   a.Platform().Display(),
			Pay:        a.Pay().String(),
			Courier:    names[a.CourierID()],
			DayKey:     a.DayKey().String(),
			CreatedAt:  a.CreatedAt(),
			FinishedAt: a.FinishedAt(),
		})
	}
	return rows
}
