package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"stubapi/docs/statusprobe"
	"stubapi/internal/config"
	handlers "stubapi/internal/http/handler"
	"stubapi/internal/logging"
	"stubapi/internal/otel"
	"stubapi/internal/server"
)

// @title Status Probe API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.LoadStatusProbe()
	logger := logging.New(os.Stdout, cfg.Location())

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server_failed")
	}
}

func run(cfg *config.AppConfig, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, cfg.TracingEnabled, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.WithError(err).Error("tracing_shutdown_failed")
		}
	}()

	srv, err := server.New(server.Options{
		Config:  cfg,
		Logger:  logger,
		Swagger: statusprobe.SwaggerInfo,
		Routes:  handlers.RegisterStatusRoutes,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
