package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cocktail-manager/models"
)

var (
	// ErrNotFound wird zurückgegeben, wenn kein Cocktail mit dem Namen existiert.
	ErrNotFound = errors.New("cocktail not found")
	// ErrConflict wird zurückgegeben, wenn das Einfügen fehlschlägt (meist doppelter Name).
	ErrConflict = errors.New("cocktail already exists")
)

// NotFoundError trägt den gesuchten Namen.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Cocktail '%s' not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError trägt den Namen des abgelehnten Inputs und den Datenbankfehler.
type ConflictError struct {
	Name string
	Err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Cocktail with name '%s' already exists", e.Name)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func (e *ConflictError) Unwrap() error { return e.Err }

// CocktailService kapselt alle Lese- und Schreibzugriffe auf die Tabelle "cocktails".
// Das DB-Handle wird vom Aufrufer geliefert, im HTTP-Pfad eines pro Request.
type CocktailService struct {
	DB *gorm.DB
}

// NewCocktailService erstellt einen Service über dem gegebenen Handle.
func NewCocktailService(db *gorm.DB) *CocktailService {
	return &CocktailService{DB: db}
}

// GetAll liefert alle Cocktails, ohne garantierte Reihenfolge.
func (s *CocktailService) GetAll() ([]models.Cocktail, error) {
	var cocktails []models.Cocktail
	if err := s.DB.Find(&cocktails).Error; err != nil {
		return nil, fmt.Errorf("list cocktails: %w", err)
	}
	return cocktails, nil
}

// GetByName sucht exakt nach dem eindeutigen Namen.
func (s *CocktailService) GetByName(name string) (*models.Cocktail, error) {
	var cocktail models.Cocktail
	if err := s.DB.Where("name = ?", name).First(&cocktail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, fmt.Errorf("get cocktail %q: %w", name, err)
	}
	return &cocktail, nil
}

// Create legt einen neuen Cocktail in einer Transaktion an. Schlägt das Insert fehl,
// wird zurückgerollt und ein ConflictError geliefert.
func (s *CocktailService) Create(in models.CocktailInput) (*models.Cocktail, error) {
	cocktail := models.NewCocktail(in)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cocktail).Error
	})
	if err != nil {
		return nil, &ConflictError{Name: in.Name, Err: err}
	}
	return &cocktail, nil
}

// Count zählt die gespeicherten Cocktails.
func (s *CocktailService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Cocktail{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count cocktails: %w", err)
	}
	return count, nil
}
