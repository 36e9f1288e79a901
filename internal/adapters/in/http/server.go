// Package http exposes the marketplace over a JSON API served by echo. Every
// request under /api/v1 is validated against the embedded OpenAPI document
// before it reaches a handler; mutating routes also require a bearer token
// whose subject becomes the caller.
package http

import (
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	RaiseDispute   commands.RaiseDisputeCommandHandler
	ResolveDispute commands.ResolveDisputeCommandHandler
	CompleteOrder  commands.CompleteOrderCommandHandler
	Platform       commands.PlatformCommandHandler
	Delivery       commands.DeliveryCommandHandler

	Orders        queries.OrderQueryHandler
	PreviewOrder  queries.PreviewCreateOrderQueryHandler
	PlatformQuery queries.GetPlatformQueryHandler
	Deliveries    queries.DeliveryQueryHandler
}

// Server implements the HTTP endpoints and coordinates between HTTP
// handlers and application use cases.
type Server struct {
	handlers Handlers
	auth     Authenticator
	logger   *slog.Logger
}

func NewServer(handlers Handlers, auth Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		auth:     auth,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with middleware, documentation and routes.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.RegisterRoutes(e.Group("/api/v1", validator))
	return e, nil
}

// RegisterRoutes mounts every API endpoint on g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	authed := s.auth.RequireCaller

	g.POST("/orders", s.CreateOrder, authed)
	g.POST("/orders/preview", s.PreviewCreateOrder, authed)
	g.GET("/orders/:id", s.GetOrder)
	g.GET("/orders/:id/escrow", s.GetEscrow)
	g.GET("/orders/:id/dispute", s.GetDispute)
	g.POST("/orders/:id/dispute", s.RaiseDispute, authed)
	g.GET("/orders/:id/can-dispute", s.CanRaiseDispute)
	g.POST("/orders/:id/resolve", s.ResolveDispute, authed)
	g.POST("/orders/:id/approve-refund", s.ApproveRefund, authed)
	g.POST("/orders/:id/reject-refund", s.RejectRefund, authed)
	g.POST("/orders/:id/complete", s.CompleteOrder, authed)

	g.GET("/platform", s.GetPlatform)
	g.PUT("/platform/tracking", s.SetOrderTracking, authed)
	g.PUT("/platform/arbitrator", s.ChangeArbitrator, authed)
	g.PUT("/platform/fee", s.SetPlatformFee, authed)
	g.POST("/platform/withdrawals", s.WithdrawPlatformFees, authed)

	g.POST("/deliveries", s.CreateDelivery, authed)
	g.GET("/deliveries/:id", s.GetDelivery)
	g.GET("/deliveries/:id/status", s.GetDeliveryStatus)
	g.PUT("/deliveries/:id/courier", s.SetCourier, authed)
	g.POST("/deliveries/:id/shipped", s.ConfirmShipped, authed)
	g.POST("/deliveries/:id/delivered", s.ConfirmDelivery, authed)
}
