// Package server assembles a Fiber application with the middleware stack
// shared by both services and runs it until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/swaggo/swag"

	"stubapi/internal/config"
	handlers "stubapi/internal/http/handler"
	"stubapi/internal/http/middleware"
)

// ErrNoRoutes is returned by New when Options.Routes is nil.
var ErrNoRoutes = errors.New("server: no routes registered")

// Options configures New.
type Options struct {
	Config *config.AppConfig
	Logger *logrus.Logger
	// Registry receives the request metrics. A fresh registry with Go and
	// process collectors is created when nil.
	Registry *prometheus.Registry
	// Swagger is the generated doc served under /swagger/*. Optional.
	Swagger *swag.Spec
	// Routes attaches the service's own routes.
	Routes func(fiber.Router)
}

// Server is one running service.
type Server struct {
	app      *fiber.App
	cfg      *config.AppConfig
	logger   *logrus.Logger
	registry *prometheus.Registry
}

// New builds the Fiber app: request id, tracing, request log, metrics and
// recover middleware, then the ambient routes, then the service routes.
// Routing is case sensitive and strict about trailing slashes.
func New(opts Options) (*Server, error) {
	if opts.Routes == nil {
		return nil, ErrNoRoutes
	}
	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimitBytes,
		ReadTimeout:           time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:           time.Duration(cfg.IdleTimeoutSec) * time.Second,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	if cfg.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithNext(func(c *fiber.Ctx) bool {
				return c.Path() == middleware.MetricsPath
			}),
		))
	}
	app.Use(middleware.LoggerWithLogrus(opts.Logger))

	var prom *middleware.PrometheusMiddleware
	if cfg.MetricsEnabled {
		var err error
		prom, err = middleware.NewPrometheusMiddleware(reg, cfg.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		app.Use(prom.Handler())
	}

	// Innermost, so panics still reach the request log and metrics as 500s.
	app.Use(recover.New())

	if prom != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	if cfg.SwaggerEnabled && opts.Swagger != nil {
		app.Get("/swagger/*", swaggerHandler(opts.Swagger))
	}

	opts.Routes(app)

	return &Server{app: app, cfg: cfg, logger: opts.Logger, registry: reg}, nil
}

// swaggerHandler serves the Swagger UI with the host and scheme the
// caller used, honouring X-Forwarded-Proto.
func swaggerHandler(spec *swag.Spec) fiber.Handler {
	ui := swagger.New(swagger.Config{InstanceName: spec.InstanceName()})
	var mu sync.Mutex

	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		mu.Lock()
		defer mu.Unlock()
		spec.Host = c.Get(fiber.HeaderHost)
		spec.Schemes = []string{scheme}
		return ui(c)
	}
}

// App exposes the Fiber app for in-process tests.
func (s *Server) App() *fiber.App { return s.app }

// Registry returns the registry backing /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

// Run binds the configured address and serves until ctx is cancelled.
// A bind failure is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.logger.WithFields(logrus.Fields{
		"service": s.cfg.ServiceName,
		"addr":    ln.Addr().String(),
	}).Info("server_starting")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.WithField("service", s.cfg.ServiceName).Info("server_stopped")
	return nil
}
