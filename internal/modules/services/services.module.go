package services

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/services/controllers"
	servicesSvc "clinique-navette-core/internal/modules/services/services"
)

// Module regroupe les providers du domaine Services médicaux
var Module = fx.Options(
	fx.Provide(servicesSvc.NewServiceService),
	fx.Provide(controllers.NewServiceController),
	fx.Invoke(RegisterServiceRoutes),
)

// RegisterServiceRoutes configure les routes Gin du domaine Services
func RegisterServiceRoutes(r *gin.Engine, ctrl *controllers.ServiceController) {
	api := r.Group("/api/v1/services")
	{
		// GET /api/v1/services - Liste paginée (ou complète avec ?all=true)
		api.GET("", ctrl.List)

		// POST /api/v1/services - Créer un service
		api.POST("", ctrl.Create)

		// GET /api/v1/services/:id - Détail d'un service
		api.GET("/:id", ctrl.Get)

		// PUT /api/v1/services/:id - Mettre à jour un service
		api.PUT("/:id", ctrl.Update)

		// DELETE /api/v1/services/:id - Supprimer un service
		api.DELETE("/:id", ctrl.Delete)
	}
}
