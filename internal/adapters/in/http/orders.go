package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetBoard handles GET /api/v1/board.
func (s *Server) GetBoard(c echo.Context) error {
	board, err := s.h.GetBoard.Handle(c.Request().Context(), queries.NewGetBoardQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromBoard(board))
}

// SetDayFilter handles PUT /api/v1/day-filter.
func (s *Server) SetDayFilter(c echo.Context) error {
	var body DayFilter
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewSetDayFilterCommand(body.DayKey)
	if err != nil {
		return err
	}

	key, err := s.h.SetDayFilter.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fromDayKey(key))
}

// AddOrders handles POST /api/v1/orders/batch. It answers 201 when at least
// one order was added and 200 when every code was rejected.
func (s *Server) AddOrders(c echo.Context) error {
	var body NewOrders
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewAddOrdersCommand(body.Text, body.Pay, body.CourierID)
	if err != nil {
		return err
	}

	result, err := s.h.AddOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if len(result.Added) == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, fromAddOrdersResult(result))
}

// RemoveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) RemoveOrder(c echo.Context) error {
	cmd, err := commands.NewRemoveOrderCommand(c.Param("id"))
	if err != nil {
		return err
	}

	if err := s.h.RemoveOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// FinishOrders handles POST /api/v1/orders/finish.
func (s *Server) FinishOrders(c echo.Context) error {
	var body FinishOrders
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewFinishOrdersCommand(body.IDs)
	if err != nil {
		return err
	}

	result, err := s.h.FinishOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fromFinishOrdersResult(result))
}
