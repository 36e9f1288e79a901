package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetPlatform(c echo.Context) error {
	view, err := s.handlers.PlatformQuery.Handle(c.Request().Context(), queries.NewGetPlatformQuery())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Platform{
		Owner:          view.Owner.String(),
		Arbitrator:     view.Arbitrator.String(),
		FeeBasisPoints: view.FeeBasisPoints.Int(),
		Balance:        view.Balance.String(),
		Custody:        view.Custody.String(),
		Tracker:        view.Tracker.String(),
		TrackerBound:   view.TrackerBound,
	})
}

func (s *Server) SetOrderTracking(c echo.Context) error {
	var body SetTracking
	if err := bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}
	tracker, err := kernel.NewParty(body.Tracker)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetOrderTrackingCommand(callerFrom(c), tracker)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Platform.SetOrderTracking(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ChangeArbitrator(c echo.Context) error {
	var body SetArbitrator
	if err := bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}
	arbitrator, err := kernel.NewParty(body.Arbitrator)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeArbitratorCommand(callerFrom(c), arbitrator)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Platform.ChangeArbitrator(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) SetPlatformFee(c echo.Context) error {
	var body SetFee
	if err := bindBody(c, &body); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetPlatformFeeCommand(callerFrom(c), body.BasisPoints)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Platform.SetPlatformFee(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) WithdrawPlatformFees(c echo.Context) error {
	cmd, err := commands.NewWithdrawPlatformFeesCommand(callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	amount, err := s.handlers.Platform.WithdrawPlatformFees(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Withdrawal{Amount: amount.String()})
}
