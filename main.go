package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/purchasing/config"
	"github.com/purchasing/integration"
	"github.com/purchasing/logger"
	"github.com/purchasing/notify"
	"github.com/purchasing/store"
	"github.com/purchasing/web"
	"github.com/purchasing/web/handlers"
)

func main() {
	var (
		noSeed = flag.Bool("no-seed", false, "Start with an empty supplier register")
		help   = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init("purchasing", cfg.App.IsDevelopment())
	logger.SetLevel(cfg.App.LogLevel)

	// Initialize stores and simulated modules
	suppliers := store.NewSupplierStore()
	finance := integration.NewFinanceSim(cfg.Finance.Budget)
	inventory := integration.NewInventorySim()
	production := integration.NewProductionSim()
	orders := store.NewOrderStore(suppliers, finance)
	center := notify.NewCenter(cfg.Notify.DismissAfter, cfg.Notify.ExitAfter)

	if !*noSeed {
		log.Info().Msg("Loading sample suppliers...")
		if err := store.SeedSuppliers(suppliers); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed suppliers")
		}
		log.Info().Int("suppliers", suppliers.Count()).Msg("Sample suppliers loaded")
	}

	// Create and start web server
	h := handlers.New(suppliers, orders, center, finance, inventory, production)
	server := web.NewServer(cfg, h, "./web/templates")

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Info().Msg("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

func showHelp() {
	fmt.Print(`
Purchasing Management System Server

Usage:
  go run main.go [options]

Options:
  -no-seed  Start with an empty supplier register
  -help     Show this help message

Environment:
  APP_PORT          Listen port (default 8080)
  APP_ENV           development or production (default development)
  LOG_LEVEL         debug, info, warn or error (default info)
  FINANCE_BUDGET    Budget of the simulated finance module (default 500000)
  NOTIFY_DISMISS_MS Notification visible time in ms (default 3000)
  NOTIFY_EXIT_MS    Notification exit animation time in ms (default 300)
`)
}
