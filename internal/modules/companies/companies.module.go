package companies

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/companies/controllers"
	"clinique-navette-core/internal/modules/companies/services"
)

// Module regroupe les providers du domaine Organismes
var Module = fx.Options(
	fx.Provide(services.NewCompanyService),
	fx.Provide(controllers.NewCompanyController),
	fx.Invoke(RegisterCompanyRoutes),
)

// RegisterCompanyRoutes configure les routes Gin du domaine Organismes
func RegisterCompanyRoutes(r *gin.Engine, ctrl *controllers.CompanyController) {
	api := r.Group("/api/v1/companies")
	{
		// GET /api/v1/companies - Liste paginée (ou complète avec ?all=true)
		api.GET("", ctrl.List)

		// POST /api/v1/companies - Créer un organisme
		api.POST("", ctrl.Create)

		// GET /api/v1/companies/:id - Détail d'un organisme
		api.GET("/:id", ctrl.Get)

		// PUT /api/v1/companies/:id - Mettre à jour un organisme
		api.PUT("/:id", ctrl.Update)

		// DELETE /api/v1/companies/:id - Supprimer un organisme
		api.DELETE("/:id", ctrl.Delete)
	}
}
