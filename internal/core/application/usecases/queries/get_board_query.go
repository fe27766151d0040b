package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery returns the operation board: one lane per courier with the
// active orders of the selected day.
type GetBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBoardQuery() GetBoardQuery {
	return GetBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

// OrderResponse is the active order read model.
type OrderResponse struct {
	ID        kernel.ID
	Code      string
	Platform  string
	Pay       string
	CourierID kernel.ID
	DayKey    kernel.DayKey
	CreatedAt time.Time
}

// LaneResponse is one courier column of the board.
type LaneResponse struct {
	Courier CourierResponse
	Orders  []OrderResponse
}

// BoardResponse is the board read model.
type BoardResponse struct {
	// DayFilter is the selected day; zero means every day.
	DayFilter kernel.DayKey
	// DayLabel is DayFilter as "DD/MM/YYYY", or a placeholder.
	DayLabel string
	Lanes    []LaneResponse
	// Total counts the orders shown on the board.
	Total int
}
