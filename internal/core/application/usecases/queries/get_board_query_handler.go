package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetBoardQueryHandler builds the board from the stored state.
type GetBoardQueryHandler struct {
	reader    ports.StateReader
	ledger    services.OrderLedger
	partition services.DayPartition
}

func NewGetBoardQueryHandler(reader ports.StateReader) GetBoardQueryHandler {
	return GetBoardQueryHandler{
		reader:    reader,
		ledger:    services.NewOrderLedger(nil),
		partition: services.NewDayPartition(nil),
	}
}

// Handle filters active orders by the stored day filter and lays them out in
// courier lanes, newest first.
func (h GetBoardQueryHandler) Handle(ctx context.Context, query GetBoardQuery) (BoardResponse, error) {
	if err := query.Validate(); err != nil {
		return BoardResponse{}, err
	}

	state, err := h.reader.Get(ctx)
	if err != nil {
		return BoardResponse{}, err
	}

	filter := state.DayFilter()
	visible := h.partition.FilterActive(state.ActiveOrders(), filter)
	lanes := h.ledger.Lanes(state.Couriers(), visible)

	board := BoardResponse{
		DayFilter: filter,
		DayLabel:  filter.Display(),
		Lanes:     make([]LaneResponse, 0, len(lanes)),
	}
	for _, lane := range lanes {
		orders := make([]OrderResponse, 0, len(lane.Orders))
		for _, o := range lane.Orders {
			orders = append(orders, toOrderResponse(o))
		}
		board.Total += len(orders)
		board.Lanes = append(board.Lanes, LaneResponse{
			Courier: CourierResponse{
				ID:           lane.Courier.ID(),
				Name:         lane.Courier.Name(),
				Tag:          lane.Courier.Tag(),
				Label:        lane.Courier.Label(),
				ActiveOrders: len(orders),
			},
			Orders: orders,
		})
	}

	return board, nil
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID(),
		Code:      o.Code(),
		Platform:  o.Platform().Display(),
		Pay:       o.Pay().String(),
		CourierID: o.CourierID(),
		DayKey:    o.DayKey(),
		CreatedAt: o.CreatedAt(),
	}
}
