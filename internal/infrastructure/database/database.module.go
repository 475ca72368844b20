package database

import (
	"go.uber.org/fx"

	"clinique-navette-core/internal/infrastructure/database/bootstrap"
	"clinique-navette-core/internal/infrastructure/database/mongodb"
	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(
	postgres.Module,
	redis.Module,
	mongodb.Module,
	bootstrap.Module,
)
