package components

import (
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/keylock"
	"keyvend/internal/usecase/commands"
	"keyvend/internal/usecase/queries"
	"keyvend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keylock.New,
	shared.NewPendingQuotes,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewCatalogQueries,
	),
)
