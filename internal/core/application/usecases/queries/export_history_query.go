package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrExportHistoryQueryIsNotConstructed = errors.New(
	"ExportHistoryQuery must be created via NewExportHistoryQuery constructor",
)

// ExportHistoryQuery returns the history as flat rows for CSV export, in the
// order orders were finished.
type ExportHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewExportHistoryQuery() ExportHistoryQuery {
	return ExportHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportHistoryQuery) Validate() error {
	return q.guard.Validate(ErrExportHistoryQueryIsNotConstructed)
}

// ExportRow is one exported history record.
type ExportRow struct {
	Code     string
	Platform string
	Pay      string
	// Courier is the courier name, empty when the courier is gone.
	Courier    string
	DayKey     string
	CreatedAt  time.Time
	FinishedAt time.Time
}
