package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"

	"github.com/mm01rahman/LandlordBD/internal/adapter/http/routes"
	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/tracing"
)

// @title           Rental Billing API
// @version         1.0
// @description     Rental agreement lifecycle, rent ledger and dashboard aggregates.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	version = "dev"
	cli     struct {
		Version kong.VersionFlag `help:"Print the version and exit."`
		Config  config.Config    `embed:""`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("landlord-billing"),
		kong.Description("Rental agreement lifecycle, payments ledger and dashboard API."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(cli.Config.Validate())

	log, err := logger.New(cli.Config.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("service stopped", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log, cli.Config.Tracing, version)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	return routes.Run(ctx, cli.Config, log)
}
