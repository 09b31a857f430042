package components

import (
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSettingsCommands,
		commands.NewPushCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewClientQueries,
		queries.NewLedgerQueries,
		queries.NewSettingsQueries,
		queries.NewFileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
