package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/metrics"
	"cocktail-manager/models"
	"cocktail-manager/services"
)

// CocktailHandler übersetzt HTTP-Requests in Aufrufe des CocktailService.
type CocktailHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewCocktailHandler erstellt den Handler über dem gemeinsamen Connection-Pool.
func NewCocktailHandler(db *gorm.DB, log *zap.Logger) *CocktailHandler {
	return &CocktailHandler{db: db, log: log}
}

// service liefert einen an den Request gebundenen Service.
func (h *CocktailHandler) service(c *gin.Context) *services.CocktailService {
	return services.NewCocktailService(h.db.WithContext(c.Request.Context()))
}

// createCocktailRequest prüft nur die Struktur: alle vier Felder müssen als String vorhanden sein.
type createCocktailRequest struct {
	Name         *string `json:"name" binding:"required"`
	Description  *string `json:"description" binding:"required"`
	Ingredients  *string `json:"ingredients" binding:"required"`
	Instructions *string `json:"instructions" binding:"required"`
}

func (r createCocktailRequest) input() models.CocktailInput {
	return models.CocktailInput{
		Name:         *r.Name,
		Description:  *r.Description,
		Ingredients:  *r.Ingredients,
		Instructions: *r.Instructions,
	}
}

// List gibt alle Cocktails zurück.
func (h *CocktailHandler) List(c *gin.Context) {
	cocktails, err := h.service(c).GetAll()
	if err != nil {
		h.internalError(c, "Database query for all cocktails failed", err)
		return
	}
	if cocktails == nil {
		cocktails = []models.Cocktail{}
	}
	c.JSON(http.StatusOK, cocktails)
}

// Get gibt einen Cocktail anhand seines Namens zurück.
func (h *CocktailHandler) Get(c *gin.Context) {
	name := c.Param("name")

	cocktail, err := h.service(c).GetByName(name)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Error()})
			return
		}
		h.internalError(c, "Database lookup for cocktail failed", err, zap.String("name", name))
		return
	}
	c.JSON(http.StatusOK, cocktail)
}

// Create legt einen neuen Cocktail an.
func (h *CocktailHandler) Create(c *gin.Context) {
	var req createCocktailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	in := req.input()

	cocktail, err := h.service(c).Create(in)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			h.log.Info("Cocktail insert rejected", zap.String("name", in.Name), zap.NamedError("cause", conflict.Err))
			c.JSON(http.StatusBadRequest, gin.H{"detail": conflict.Error()})
			return
		}
		h.internalError(c, "Database insert for cocktail failed", err, zap.String("name", in.Name))
		return
	}

	metrics.CocktailsCreated.Inc()
	c.JSON(http.StatusOK, cocktail)
}

func (h *CocktailHandler) internalError(c *gin.Context, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err), zap.String("request_id", c.GetString("request_id")))
	h.log.Error(msg, fields...)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
