package bootstrap

import (
	"studio-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	AMQPModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
