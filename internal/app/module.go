package app

import (
	"go.uber.org/fx"

	"clinique-navette-core/internal/app/config"
	"clinique-navette-core/internal/infrastructure/database"
	"clinique-navette-core/internal/infrastructure/logger"
	"clinique-navette-core/internal/modules/companies"
	"clinique-navette-core/internal/modules/conventions"
	"clinique-navette-core/internal/modules/dashboard"
	"clinique-navette-core/internal/modules/doctors"
	fichenavette "clinique-navette-core/internal/modules/fiche-navette"
	"clinique-navette-core/internal/modules/patients"
	"clinique-navette-core/internal/modules/services"
	"clinique-navette-core/internal/shared/middleware/core"
	"clinique-navette-core/internal/shared/middleware/security"
)

var AppModule = fx.Options(
	// Configuration (fournie en premier)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewPatientsPostgresConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewMongoConfig),

	// Infrastructure
	database.Module,
	logger.Module,

	// Middlewares partagés
	fx.Provide(core.RecoveryMiddleware),
	fx.Provide(security.CORSMiddleware),

	// Router
	fx.Provide(NewRouter),

	// Modules métier
	patients.Module,
	companies.Module,
	services.Module,
	conventions.Module,
	fichenavette.Module,
	doctors.Module,
	dashboard.Module,

	// Application
	fx.Provide(NewApplication),
	fx.Invoke((*Application).Start),
)
