package components

import (
	"pricing-admin-api/internal/pkg/clock"
	"pricing-admin-api/internal/usecase"
	"pricing-admin-api/internal/usecase/commands"
	"pricing-admin-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthCommands,
		commands.NewPriceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPriceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
