package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"skyblock-market/gateway/discord"
	"skyblock-market/hypixel"
	"skyblock-market/internal"
	"skyblock-market/observability"
	"skyblock-market/repositories"
	"skyblock-market/runtime"
	"skyblock-market/runtime/workers"
	"skyblock-market/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Deferred cleanups execute before the error reaches main, and keeping
// the wiring out of main makes it reusable from tests.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Core components
	stats := observability.NewMarketStats(log)
	listings := repositories.NewListingRepository(log)
	profiles := hypixel.NewClient(log, config.HypixelAPIKey, config.MojangBaseURL, config.HypixelBaseURL, config.LookupTimeout)
	restClient := discord.NewClient(log, config.DiscordBotToken, config.DiscordAppID, config.DiscordAPIBase, config.LookupTimeout)
	notifier := services.NewNotificationDispatcher(log, restClient, stats, config.NotifyTimeout)
	market := services.NewMarketService(log, listings, profiles, notifier, stats)

	// 3. Supervision & Orchestration
	sup := workers.NewSupervisor(log)
	router := runtime.NewRouter(log, market, stats)
	orchestrator := runtime.NewOrchestrator(log, sup, router, config.NumberOfWorkers, config.BufferSize)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the Engine
	orchestrator.Start(ctx)

	// 6. Command registration & HTTP endpoint
	if err := restClient.RegisterCommands(ctx); err != nil {
		return fmt.Errorf("command registration failed: %w", err)
	}

	webhook, err := discord.NewWebhook(log, config.DiscordPublicKey, orchestrator, restClient)
	if err != nil {
		return fmt.Errorf("webhook setup failed: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/interactions", webhook.Handler())
	mux.Handle("/debug/market", internal.DebugHandler(log, listings, stats.Snapshot))

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	// Use an error channel to capture ListenAndServe issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting interactions server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
