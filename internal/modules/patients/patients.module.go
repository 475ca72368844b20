package patients

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/patients/controllers"
	"clinique-navette-core/internal/modules/patients/services"
)

// Module regroupe les providers du domaine Patients
var Module = fx.Options(
	fx.Provide(services.NewPatientService),
	fx.Provide(controllers.NewPatientController),
	fx.Invoke(RegisterPatientRoutes),
)

// RegisterPatientRoutes configure les routes Gin du domaine Patients
func RegisterPatientRoutes(r *gin.Engine, ctrl *controllers.PatientController) {
	api := r.Group("/api/v1/patients")
	{
		// GET /api/v1/patients - Liste paginée avec recherche
		api.GET("", ctrl.List)

		// POST /api/v1/patients - Créer un patient
		api.POST("", ctrl.Create)

		// GET /api/v1/patients/:id - Détail d'un patient
		api.GET("/:id", ctrl.Get)

		// PUT /api/v1/patients/:id - Mettre à jour un patient
		api.PUT("/:id", ctrl.Update)

		// DELETE /api/v1/patients/:id - Supprimer un patient
		api.DELETE("/:id", ctrl.Delete)
	}
}
