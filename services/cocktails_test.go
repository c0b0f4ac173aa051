package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cocktail-manager/internal/dbtest"
	"cocktail-manager/models"
)

var mojito = models.CocktailInput{
	Name:         "Mojito",
	Description:  "A refreshing Cuban highball",
	Ingredients:  "White rum, Sugar, Lime juice, Soda water, Mint",
	Instructions: "Muddle mint leaves with sugar and lime juice. Add rum and top with soda water.",
}

func TestGetAll(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT \* FROM "cocktails"`).
		WillReturnRows(sqlmock.NewRows(dbtest.CocktailColumns).
			AddRow(1, "Mojito", "A refreshing Cuban highball", "White rum, Sugar", "Muddle.").
			AddRow(2, "Old Fashioned", "A classic cocktail with bourbon", "Bourbon, Sugar cube", "Stir."))

	cocktails, err := NewCocktailService(db).GetAll()
	require.NoError(t, err)
	require.Len(t, cocktails, 2)
	assert.Equal(t, "Mojito", cocktails[0].Name)
	assert.Equal(t, uint(2), cocktails[1].ID)
	assert.Equal(t, "Old Fashioned", cocktails[1].Name)
}

func TestGetAllEmpty(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT \* FROM "cocktails"`).
		WillReturnRows(sqlmock.NewRows(dbtest.CocktailColumns))

	cocktails, err := NewCocktailService(db).GetAll()
	require.NoError(t, err)
	assert.Empty(t, cocktails)
}

func TestGetAllDatabaseError(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT \* FROM "cocktails"`).WillReturnError(errors.New("connection reset"))

	_, err := NewCocktailService(db).GetAll()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetByName(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT \* FROM "cocktails" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows(dbtest.CocktailColumns).
			AddRow(1, mojito.Name, mojito.Description, mojito.Ingredients, mojito.Instructions))

	cocktail, err := NewCocktailService(db).GetByName("Mojito")
	require.NoError(t, err)
	assert.Equal(t, uint(1), cocktail.ID)
	assert.Equal(t, mojito.Name, cocktail.Name)
	assert.Equal(t, mojito.Ingredients, cocktail.Ingredients)
}

func TestGetByNameNotFound(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT \* FROM "cocktails" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows(dbtest.CocktailColumns))

	_, err := NewCocktailService(db).GetByName("NonexistentCocktail")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NonexistentCocktail", notFound.Name)
	assert.Equal(t, "Cocktail 'NonexistentCocktail' not found", err.Error())
}

func TestCreate(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cocktails"`).
		WithArgs(mojito.Name, mojito.Description, mojito.Ingredients, mojito.Instructions).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	cocktail, err := NewCocktailService(db).Create(mojito)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cocktail.ID)
	assert.Equal(t, mojito.Name, cocktail.Name)
	assert.Equal(t, mojito.Instructions, cocktail.Instructions)
}

func TestCreateDuplicateRollsBack(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cocktails"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	_, err := NewCocktailService(db).Create(models.CocktailInput{
		Name:         "Existing Cocktail",
		Description:  "A duplicate cocktail",
		Ingredients:  "Ingredient 1, Ingredient 2",
		Instructions: "Mix ingredients.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, "Cocktail with name 'Existing Cocktail' already exists", err.Error())
}

func TestCreateOtherFailureIsConflict(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cocktails"`).WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	_, err := NewCocktailService(db).Create(mojito)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Mojito", conflict.Name)
	assert.EqualError(t, conflict.Err, "value too long")
}

func TestCount(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cocktails"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(55))

	count, err := NewCocktailService(db).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(55), count)
}
