package security

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinique-navette-core/internal/app/config"
)

// CORSHandler type spécifique pour Fx
type CORSHandler gin.HandlerFunc

// CORSMiddleware configure les règles CORS pour le front de la clinique
func CORSMiddleware(appConfig *config.Config) CORSHandler {
	corsConfig := appConfig.GetCORS()

	return CORSHandler(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}
			return false
		},

		AllowMethods: corsConfig.AllowedMethods,
		AllowHeaders: corsConfig.AllowedHeaders,

		ExposeHeaders: []string{
			"Content-Length",
			"Content-Disposition",
		},

		AllowCredentials: corsConfig.AllowCredentials,

		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	}))
}
