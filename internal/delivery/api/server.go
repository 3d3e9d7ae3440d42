package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"wastetrack/config"
	"wastetrack/internal/delivery"
	apimiddleware "wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/router"
	"wastetrack/internal/delivery/api/validator"
	"wastetrack/internal/delivery/middleware"
	"wastetrack/internal/domain/lifecycle"
	"wastetrack/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// apiServer serves the tracker REST API over h2c.
type apiServer struct {
	addr        string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API delivery and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := newEcho(params.Cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:        net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho configures timeouts, the middleware chain, error rendering and validation.
// Request IDs are assigned before the logger runs so every log line carries one.
func newEcho(cfg *config.Config, logger *slog.Logger) (*echo.Echo, error) {
	if cfg.HTTP.Port <= 0 {
		return nil, errors.Errorf("invalid http port %d", cfg.HTTP.Port)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
		echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{MinLength: 1024}),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.addr))

	h2s := &http2.Server{IdleTimeout: s.idleTimeout}
	err := s.echo.StartH2CServer(s.addr, h2s)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
