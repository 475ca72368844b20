package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinique-navette-core/internal/app/config"
	"clinique-navette-core/internal/infrastructure/logger"
	"clinique-navette-core/internal/shared/middleware/core"
	"clinique-navette-core/internal/shared/middleware/security"
)

// NewRouter assemble le moteur Gin avec les middlewares transverses.
// Les routes métier sont enregistrées par chaque module via fx.Invoke.
func NewRouter(
	cfg *config.Config,
	loggerMiddleware *logger.LoggerMiddleware,
	recoveryHandler core.RecoveryHandler,
	corsHandler security.CORSHandler,
) *gin.Engine {
	configureGinMode(cfg.Environment)

	r := gin.New()

	// Ordre: log d'accès, capture des panics, CORS
	r.Use(loggerMiddleware.GinLogger())
	r.Use(gin.HandlerFunc(recoveryHandler))
	r.Use(gin.HandlerFunc(corsHandler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
