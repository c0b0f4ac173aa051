package models

// Cocktail repräsentiert ein gespeichertes Cocktail-Rezept.
type Cocktail struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"` // z.B. "Mojito"
	Description string `json:"description" gorm:"type:text"`
	// Zutaten als kommaseparierte Liste in einem String
	Ingredients  string `json:"ingredients" gorm:"type:text"`
	Instructions string `json:"instructions" gorm:"type:text"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Cocktail) TableName() string {
	return "cocktails"
}

// CocktailInput enthält die Felder zum Anlegen eines Cocktails (ohne ID).
type CocktailInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// NewCocktail baut aus einem validierten Input eine neue Zeile. Die ID vergibt die Datenbank.
func NewCocktail(in CocktailInput) Cocktail {
	return Cocktail{
		Name:         in.Name,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	}
}
