package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/v1/deliveries. Any authenticated caller
// may register a delivery; the order id links it to the ledger.
func (s *Server) CreateDelivery(c echo.Context) error {
	var body NewDelivery
	if err := bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}
	buyer, err := kernel.NewParty(body.Buyer)
	if err != nil {
		return s.fail(c, err)
	}
	seller, err := kernel.NewParty(body.Seller)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(kernel.OrderID(body.OrderID), buyer, seller)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Delivery.CreateDelivery(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) GetDelivery(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.Deliveries.GetDelivery(c.Request().Context(), queries.NewDeliveryQuery(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Delivery{
		Found:   view.Found,
		OrderID: view.OrderID.Int64(),
		Buyer:   view.Buyer.String(),
		Seller:  view.Seller.String(),
		Courier: view.Courier.String(),
		Status:  view.Status.String(),
	})
}

func (s *Server) GetDeliveryStatus(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	status, err := s.handlers.Deliveries.GetDeliveryStatus(c.Request().Context(), queries.NewDeliveryQuery(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, DeliveryStatus{Status: status.String()})
}

func (s *Server) SetCourier(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body SetCourier
	if err = bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}
	courier, err := kernel.NewParty(body.Courier)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetCourierCommand(id, callerFrom(c), courier)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Delivery.SetCourier(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ConfirmShipped(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfirmShippedCommand(id, callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return s.advance(c, cmd)
}

func (s *Server) ConfirmDelivery(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(id, callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return s.advance(c, cmd)
}

func (s *Server) advance(c echo.Context, cmd commands.DeliveryStepCommand) error {
	if err := s.handlers.Delivery.Advance(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
