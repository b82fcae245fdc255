package components

import (
	"keyvend/internal/infra/notify"
	repo_impl "keyvend/internal/infra/repository"
	"keyvend/internal/pkg/config"
	"keyvend/internal/usecase/commands"
	"keyvend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewStorageConfig,
		fx.Annotate(
			repo_impl.NewLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.LedgerReader)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.CatalogReader)),
		),
		fx.Annotate(
			repo_impl.NewStockRepository,
			fx.As(new(commands.StockRepository)),
			fx.As(new(queries.StockReader)),
		),
		fx.Annotate(
			repo_impl.NewHistoryRepository,
			fx.As(new(commands.HistoryRepository)),
			fx.As(new(queries.HistoryReader)),
		),
		fx.Annotate(
			notify.NewWebhookNotifier,
			fx.As(new(commands.AdminNotifier)),
		),
	),
)

func NewStorageConfig(cfg config.Config) config.StorageConfig {
	return cfg.Storage
}
