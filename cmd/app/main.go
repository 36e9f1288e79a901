package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"

	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.InitializePlatform(ctx); err != nil {
		log.Fatalf("Error initializing platform: %v", err)
	}

	if len(configs.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(configs.KafkaBrokers, kafka.Topics{
			Events:  configs.KafkaEventsTopic,
			Payouts: configs.KafkaPayoutsTopic,
		})
		defer publisher.Close()

		jobManager := app.CreateJobManager(publisher)
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	} else {
		logger.Warn("KAFKA_BROKERS not set, outbox messages will not be dispatched")
	}

	startWebServer(ctx, app.CreateHTTPServer(), configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, server *httpin.Server, port string, logger *slog.Logger) {
	e, err := httpin.NewEcho(server)
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
