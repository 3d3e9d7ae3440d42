// Package worker hosts the push worker's HTTP surface.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"wastetrack/config"
	"wastetrack/internal/delivery"
	"wastetrack/internal/delivery/middleware"
	"wastetrack/internal/delivery/worker/handler"
	"wastetrack/internal/domain/lifecycle"
	"wastetrack/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// pushBodyLimit caps a Pub/Sub envelope; events are a few hundred bytes.
const pushBodyLimit = "64KB"

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server that receives Pub/Sub push deliveries.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)
	registerRoutes(e, params.PushHandler)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func registerRoutes(e *echo.Echo, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", s.addr))

	err := s.echo.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
