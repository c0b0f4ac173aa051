package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/api"
	"cocktail-manager/config"
	"cocktail-manager/data"
	"cocktail-manager/metrics"
	"cocktail-manager/services"
	"cocktail-manager/storage"
)

func newLogger() (*zap.Logger, error) {
	if gin.Mode() == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	logging, err := newLogger()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := storage.OpenPostgres(cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to cocktails database.")

	logging.Info("Running database auto-migration...")
	if err := storage.Migrate(db); err != nil {
		logging.Fatal("Database migration failed", zap.Error(err))
	}

	// Seeding
	if cfg.SeedOnStartup {
		seedCocktails(db, logging)
	}

	// Setup Cron
	if cfg.ExportSchedule != "" {
		cronScheduler, err := setupExportCron(cfg, db, logging)
		if err != nil {
			logging.Fatal("Export scheduler setup failed", zap.Error(err))
		}
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	router := api.NewRouter(db, logging)

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func seedCocktails(db *gorm.DB, logger *zap.Logger) {
	seeder := services.NewSeeder(db, logger, data.Cocktails)
	added, err := seeder.SeedIfEmpty(context.Background())
	if err != nil {
		logger.Warn("Failed to seed default cocktails", zap.Error(err))
		return
	}
	metrics.CocktailsSeeded.Add(float64(added))
}

func setupExportCron(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*cron.Cron, error) {
	if !cfg.ExportEnabled() {
		logger.Warn("EXPORT_SCHEDULE set but S3 export is not configured, export disabled")
		return cron.New(), nil
	}
	s3Client, err := storage.NewS3Client(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	exporter := services.NewExporter(db, s3Client, logger, cfg.ExportS3Bucket, cfg.ExportPrefix, cfg.ExportKeep)

	cronScheduler := cron.New()
	_, err = cronScheduler.AddFunc(cfg.ExportSchedule, func() {
		logger.Info("Running scheduled catalog export...")
		key, err := exporter.Export(context.Background())
		if err != nil {
			logger.Error("Catalog export failed", zap.Error(err))
			metrics.CatalogExports.WithLabelValues("error").Inc()
			return
		}
		logger.Info("Catalog export completed", zap.String("key", key))
		metrics.CatalogExports.WithLabelValues("success").Inc()
	})
	if err != nil {
		return nil, err
	}
	return cronScheduler, nil
}
