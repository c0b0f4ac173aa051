package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/models"
)

// Seeder befüllt die Tabelle mit dem Startkatalog.
type Seeder struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Catalog []models.CocktailInput
}

// NewSeeder erstellt einen Seeder für den gegebenen Katalog.
func NewSeeder(db *gorm.DB, logger *zap.Logger, catalog []models.CocktailInput) *Seeder {
	return &Seeder{DB: db, Logger: logger, Catalog: catalog}
}

// SeedIfEmpty fügt den Katalog nur ein, wenn die Tabelle leer ist. Die Prüfung ist nicht
// transaktional gegen parallele Seeder, gedacht für den Start einer einzelnen Instanz.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := NewCocktailService(s.DB.WithContext(ctx)).Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.Logger.Info("Cocktail table not empty, skipping seed", zap.Int64("existing", count))
		return 0, nil
	}
	return s.SeedAll(ctx), nil
}

// SeedAll fügt jeden Katalogeintrag einzeln ein. Fehler pro Eintrag werden geloggt
// und übersprungen. Liefert die Anzahl neu angelegter Cocktails.
func (s *Seeder) SeedAll(ctx context.Context) int {
	added := 0
	for _, in := range s.Catalog {
		svc := NewCocktailService(s.DB.WithContext(ctx))
		if _, err := svc.Create(in); err != nil {
			var conflict *ConflictError
			if errors.As(err, &conflict) && conflict.Err != nil {
				err = conflict.Err
			}
			s.Logger.Warn("Failed to seed cocktail", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		added++
		s.Logger.Debug("Seeded cocktail", zap.String("name", in.Name))
	}
	s.Logger.Info("Cocktail seeding completed", zap.Int("added", added), zap.Int("catalog", len(s.Catalog)))
	return added
}
