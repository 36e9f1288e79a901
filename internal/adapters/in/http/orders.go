package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"

	"github.com/labstack/echo/v4"
)

func parseNewOrder(c echo.Context) (seller kernel.Party, amount, value kernel.Amount, err error) {
	var body NewOrder
	if err = bindBody(c, &body); err != nil {
		return
	}
	if seller, err = kernel.NewParty(body.Seller); err != nil {
		return
	}
	if amount, err = kernel.AmountFromString(body.Amount); err != nil {
		return
	}
	value, err = kernel.AmountFromString(body.Value)
	return
}

// CreateOrder handles POST /api/v1/orders. The caller is the buyer and the
// declared value is the deposit accompanying the call.
func (s *Server) CreateOrder(c echo.Context) error {
	seller, amount, value, err := parseNewOrder(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(callerFrom(c), seller, amount, value)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreated{OrderID: id.Int64()})
}

// PreviewCreateOrder handles POST /api/v1/orders/preview.
func (s *Server) PreviewCreateOrder(c echo.Context) error {
	seller, amount, value, err := parseNewOrder(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewPreviewCreateOrderQuery(callerFrom(c), seller, amount, value)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.PreviewOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreated{OrderID: id.Int64()})
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.Orders.GetOrder(c.Request().Context(), queries.NewOrderQuery(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Order{
		ID:     view.ID.Int64(),
		Buyer:  view.Buyer.String(),
		Seller: view.Seller.String(),
		Amount: view.Amount.String(),
		Status: view.Status.String(),
	})
}

func (s *Server) GetEscrow(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.Orders.GetEscrow(c.Request().Context(), queries.NewOrderQuery(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Escrow{
		OrderID: view.OrderID.Int64(),
		Buyer:   view.Buyer.String(),
		Seller:  view.Seller.String(),
		Amount:  view.Amount.String(),
		Status:  view.Status.String(),
	})
}

func (s *Server) GetDispute(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.Orders.GetDispute(c.Request().Context(), queries.NewOrderQuery(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Dispute{
		OrderID:  view.OrderID.Int64(),
		Exists:   view.Exists,
		OpenedBy: view.OpenedBy.String(),
		Reason:   view.Reason,
		Outcome:  view.Outcome.String(),
	})
}

func (s *Server) CanRaiseDispute(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	party, err := bindQueryParty(c, "party")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewCanRaiseDisputeQuery(id, party)
	if err != nil {
		return s.fail(c, err)
	}

	ok, err := s.handlers.Orders.CanRaiseDispute(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, CanRaiseDispute{CanRaiseDispute: ok})
}

func (s *Server) RaiseDispute(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body RaiseDispute
	if c.Request().ContentLength != 0 {
		if err = bindBody(c, &body); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewRaiseDisputeCommand(id, callerFrom(c), body.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.RaiseDispute.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ResolveDispute handles POST /api/v1/orders/{id}/resolve. The outcome code
// is passed through unchecked so that an outsider learns nothing about
// valid codes before the arbitrator check.
func (s *Server) ResolveDispute(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body ResolveDispute
	if err = bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewResolveDisputeCommand(id, callerFrom(c), ledger.Outcome(body.Outcome))
	if err != nil {
		return s.fail(c, err)
	}

	return s.resolve(c, cmd)
}

func (s *Server) ApproveRefund(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewApproveRefundCommand(id, callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	return s.resolve(c, cmd)
}

func (s *Server) RejectRefund(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRejectRefundCommand(id, callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	return s.resolve(c, cmd)
}

func (s *Server) resolve(c echo.Context, cmd commands.ResolveDisputeCommand) error {
	if err := s.handlers.ResolveDispute.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) CompleteOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id, callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
