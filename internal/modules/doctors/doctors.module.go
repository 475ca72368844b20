package doctors

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/doctors/controllers"
	"clinique-navette-core/internal/modules/doctors/services"
)

// Module regroupe les providers du domaine Médecins (lecture seule)
var Module = fx.Options(
	fx.Provide(services.NewDoctorService),
	fx.Provide(controllers.NewDoctorController),
	fx.Invoke(RegisterDoctorRoutes),
)

// RegisterDoctorRoutes configure les routes Gin du domaine Médecins
func RegisterDoctorRoutes(r *gin.Engine, ctrl *controllers.DoctorController) {
	api := r.Group("/api/v1/doctors")
	{
		// GET /api/v1/doctors - Liste des médecins du store médical
		api.GET("", ctrl.List)
	}
}
