package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery counts finished orders per courier and per payment method.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// CourierStatResponse is one row of the per-courier stats.
type CourierStatResponse struct {
	CourierID   kernel.ID
	CourierName string
	Finished    int
}

// PayStatResponse is one row of the per-payment stats.
type PayStatResponse struct {
	Pay      string
	Finished int
}

// StatsResponse is the stats read model.
type StatsResponse struct {
	Total     int
	ByCourier []CourierStatResponse
	ByPay     []PayStatResponse
}
