package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	couriers, err := s.h.GetCouriers.Handle(c.Request().Context(), queries.NewGetCouriersQuery())
	if err != nil {
		return err
	}

	response := make([]Courier, 0, len(couriers))
	for _, cr := range couriers {
		response = append(response, fromCourierResponse(cr))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var body NewCourier
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.Tag)
	if err != nil {
		return err
	}

	created, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fromCourier(created))
}

// UpdateCourier handles PATCH /api/v1/couriers/:id.
func (s *Server) UpdateCourier(c echo.Context) error {
	var body CourierPatch
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewUpdateCourierCommand(c.Param("id"), body.Name, body.Tag)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fromCourier(updated))
}

// RemoveCourier handles DELETE /api/v1/couriers/:id. Active orders of the
// courier are removed with it.
func (s *Server) RemoveCourier(c echo.Context) error {
	cmd, err := commands.NewRemoveCourierCommand(c.Param("id"))
	if err != nil {
		return err
	}

	result, err := s.h.RemoveCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RemoveCourierResult{RemovedOrders: result.RemovedOrders})
}
