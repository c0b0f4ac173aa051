package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cocktail-manager/config"
	"cocktail-manager/models"
)

// OpenPostgres öffnet den Connection-Pool. Er wird einmal beim Start erzeugt
// und explizit an Handler, Seeder und Exporter weitergereicht.
func OpenPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}

// Migrate legt die Tabellen an bzw. ergänzt fehlende Spalten und Indizes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Cocktail{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
