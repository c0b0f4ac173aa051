package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/services"
)

// NewRouter baut die Gin-Engine mit allen Routen.
func NewRouter(db *gorm.DB, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(log))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Cocktail Manager API"})
	})
	router.GET("/healthz", healthHandler(db, log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupCocktailRoutes(router, NewCocktailHandler(db, log))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	return router
}

func setupCocktailRoutes(router *gin.Engine, h *CocktailHandler) {
	rg := router.Group("/api/cocktails")
	rg.GET("", h.List)
	rg.GET("/:name", h.Get)
	rg.POST("/add", h.Create)
}

func healthHandler(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Warn("Health check ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		count, err := services.NewCocktailService(db.WithContext(c.Request.Context())).Count()
		if err != nil {
			log.Warn("Health check count failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cocktails": count})
	}
}
