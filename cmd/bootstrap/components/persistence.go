package components

import (
	"studio-booking/internal/infra/readstore"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Client
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClientReadQueries)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingsReadQueries)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
		// Blob
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlobReadQueries)),
		),
		fx.Annotate(
			readstore.NewBlobReadStore,
			fx.As(new(queries.FileReadStore)),
		),
		// Push subscriptions
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PushSubscriptionReadQueries)),
		),
		readstore.NewPushSubscriptionReadStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
