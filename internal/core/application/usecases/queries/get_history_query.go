package queries

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

// GetHistoryQuery lists finished orders, most recent first, optionally
// narrowed to codes containing a search term.
type GetHistoryQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery trims and lower-cases search. An empty term matches everything.
func NewGetHistoryQuery(search string) GetHistoryQuery {
	return GetHistoryQuery{
		search: strings.ToLower(strings.TrimSpace(search)),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

func (q GetHistoryQuery) Search() string {
	return q.search
}

// HistoryItemResponse is the finished order read model.
type HistoryItemResponse struct {
	ID          kernel.ID
	Code        string
	Platform    string
	Pay         string
	CourierID   kernel.ID
	CourierName string
	DayKey      kernel.DayKey
	DayLabel    string
	CreatedAt   time.Time
	FinishedAt  time.Time
}
