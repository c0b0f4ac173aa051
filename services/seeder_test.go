package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cocktail-manager/data"
	"cocktail-manager/internal/dbtest"
	"cocktail-manager/models"
)

var testCatalog = []models.CocktailInput{
	{Name: "Mojito", Description: "Cuban highball", Ingredients: "White rum, Mint", Instructions: "Muddle."},
	{Name: "Negroni", Description: "Italian aperitif", Ingredients: "Gin, Campari, Sweet vermouth", Instructions: "Stir."},
	{Name: "Daiquiri", Description: "Cuban rum cocktail", Ingredients: "White rum, Lime juice", Instructions: "Shake."},
}

func expectCount(mock sqlmock.Sqlmock, n int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cocktails"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
}

func expectInsert(mock sqlmock.Sqlmock, in models.CocktailInput, id int) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cocktails"`).
		WithArgs(in.Name, in.Description, in.Ingredients, in.Instructions).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectCommit()
}

func TestSeedIfEmptySkipsPopulatedTable(t *testing.T) {
	db, mock := dbtest.New(t)
	expectCount(mock, 1)

	added, err := NewSeeder(db, zap.NewNop(), testCatalog).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSeedIfEmptyInsertsCatalogInOrder(t *testing.T) {
	db, mock := dbtest.New(t)
	expectCount(mock, 0)
	for i, in := range testCatalog {
		expectInsert(mock, in, i+1)
	}

	added, err := NewSeeder(db, zap.NewNop(), testCatalog).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(testCatalog), added)
}

func TestSeedAllContinuesAfterFailure(t *testing.T) {
	db, mock := dbtest.New(t)
	core, logs := observer.New(zap.WarnLevel)

	expectInsert(mock, testCatalog[0], 1)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cocktails"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()
	expectInsert(mock, testCatalog[2], 2)

	added := NewSeeder(db, zap.New(core), testCatalog).SeedAll(context.Background())
	assert.Equal(t, 2, added)

	warnings := logs.FilterMessage("Failed to seed cocktail").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Negroni", warnings[0].ContextMap()["name"])
}

func TestSeedIfEmptyCountError(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cocktails"`).WillReturnError(assert.AnError)

	_, err := NewSeeder(db, zap.NewNop(), testCatalog).SeedIfEmpty(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDefaultCatalogHasUniqueNames(t *testing.T) {
	seen := make(map[string]bool, len(data.Cocktails))
	for _, c := range data.Cocktails {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Ingredients, c.Name)
		assert.False(t, seen[c.Name], "duplicate catalog entry %q", c.Name)
		seen[c.Name] = true
	}
	assert.Equal(t, "Mojito", data.Cocktails[0].Name)
}
