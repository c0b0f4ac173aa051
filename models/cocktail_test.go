package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCocktail(t *testing.T) {
	c := NewCocktail(CocktailInput{
		Name:         "Negroni",
		Description:  "Italian aperitif",
		Ingredients:  "Gin, Campari, Sweet vermouth, Orange peel",
		Instructions: "Stir all ingredients with ice.",
	})

	assert.Zero(t, c.ID)
	assert.Equal(t, "Negroni", c.Name)
	assert.Equal(t, "Italian aperitif", c.Description)
	assert.Equal(t, "Gin, Campari, Sweet vermouth, Orange peel", c.Ingredients)
	assert.Equal(t, "Stir all ingredients with ice.", c.Instructions)
	assert.Equal(t, "cocktails", c.TableName())
}

func TestCocktailJSONShape(t *testing.T) {
	raw, err := json.Marshal(Cocktail{ID: 5, Name: "Gimlet"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"name":"Gimlet","description":"","ingredients":"","instructions":""}`, string(raw))
}
