package components

import (
	"studio-booking/internal/infra/blobstore"
	"studio-booking/internal/infra/repository"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// Transactional repositories are built lazily by the unit of work; only the
// pieces used outside a request transaction are provided here.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Push subscriptions, pruned by the notifier
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PushSubscriptionWriteQueries)),
		),
		repository.NewPushSubscriptionRepository,
		// Blob store
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(blobstore.BlobQueries)),
		),
		fx.Annotate(
			NewBlobStore,
			fx.As(new(shared.BlobStore)),
		),
	),
)

func NewBlobStore(q blobstore.BlobQueries, db sqlc.DBTX, cfg config.Config) *blobstore.PostgresStore {
	return blobstore.NewPostgresStore(q, db, cfg.Storage)
}
