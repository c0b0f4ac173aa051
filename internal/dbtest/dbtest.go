// Package dbtest stellt GORM-Handles über sqlmock für Unit-Tests bereit.
package dbtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CocktailColumns sind die Spalten der Tabelle "cocktails" in Modellreihenfolge.
var CocktailColumns = []string{"id", "name", "description", "ingredients", "instructions"}

// New öffnet ein GORM-Handle mit Postgres-Dialekt über einer sqlmock-Verbindung.
// Am Testende wird geprüft, dass alle Erwartungen erfüllt wurden.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}
