package dashboard

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/dashboard/controllers"
	"clinique-navette-core/internal/modules/dashboard/services"
)

// Module regroupe les providers du tableau de bord
var Module = fx.Options(
	fx.Provide(services.NewDashboardService),
	fx.Provide(controllers.NewDashboardController),
	fx.Invoke(RegisterDashboardRoutes),
)

// RegisterDashboardRoutes configure la route du tableau de bord
func RegisterDashboardRoutes(r *gin.Engine, ctrl *controllers.DashboardController) {
	// GET /api/v1/dashboard - Indicateurs et dernières activités
	r.GET("/api/v1/dashboard", ctrl.Get)
}
