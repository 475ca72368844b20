package conventions

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/conventions/controllers"
	"clinique-navette-core/internal/modules/conventions/services"
)

// Module regroupe les providers du domaine Conventions
var Module = fx.Options(
	fx.Provide(services.NewConventionService),
	fx.Provide(services.NewImportService),
	fx.Provide(controllers.NewConventionController),
	fx.Invoke(RegisterConventionRoutes),
)

// RegisterConventionRoutes configure les routes Gin du domaine Conventions
func RegisterConventionRoutes(r *gin.Engine, ctrl *controllers.ConventionController) {
	api := r.Group("/api/v1/conventions")
	{
		// GET /api/v1/conventions - Liste paginée avec filtres
		api.GET("", ctrl.List)

		// POST /api/v1/conventions - Créer une convention
		api.POST("", ctrl.Create)

		// POST /api/v1/conventions/import - Import xlsx/xls/csv
		api.POST("/import", ctrl.Import)

		// GET /api/v1/conventions/:id - Détail d'une convention
		api.GET("/:id", ctrl.Get)

		// PUT /api/v1/conventions/:id - Mettre à jour une convention
		api.PUT("/:id", ctrl.Update)

		// DELETE /api/v1/conventions/:id - Supprimer une convention
		api.DELETE("/:id", ctrl.Delete)
	}
}
