package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/config"
	"cocktail-manager/storage"
)

var rootCmd = &cobra.Command{
	Use:           "cocktailctl",
	Short:         "Administrative tasks for the cocktail manager database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig lädt Konfiguration und Logger für einen Subcommand.
func loadConfig() (*config.Config, *zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logger, nil
}

// openDB öffnet die Datenbank und migriert das Schema.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := storage.OpenPostgres(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
