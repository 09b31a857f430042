package shared

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/ledger"
	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/pricing"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Clients() ClientRepository
	Transactions() TransactionRepository
	Activity() ActivityRepository
	Idempotency() IdempotencyRepository
	Settings() SettingsRepository
	Users() UserRepository
	PushSubscriptions() PushSubscriptionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads write-side state. Missing rows are reported as
// infra.KindNotFound repository errors.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	SubPackageByID(ctx context.Context, id uuid.UUID) (*CatalogSnapshot, error)
	AddOnsByIDs(ctx context.Context, ids []uuid.UUID) ([]CatalogAddOn, error)
	PromoByCode(ctx context.Context, code string) (*pricing.Promo, error)
	// LoyaltySettings falls back to loyalty.DefaultConfig when nothing is stored.
	LoyaltySettings(ctx context.Context) (loyalty.Config, error)
	ClientByEmailForUpdate(ctx context.Context, email string) (*client.Client, error)
	ClientByReferralCode(ctx context.Context, code string) (*client.Client, error)
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingByCodeForUpdate(ctx context.Context, code string) (*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	// Create inserts the booking and its add-on rows.
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *client.Client) error
	SaveProfile(ctx context.Context, tx sqlc.DBTX, c *client.Client) error
	ApplySettlement(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, d loyalty.ClientDelta) error
	// CreditReferrer reports false when no client owns the code.
	CreditReferrer(ctx context.Context, tx sqlc.DBTX, referralCode string, points int64, at time.Time) (bool, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, t *ledger.Transaction) error
}

type ActivityRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entry ActivityEntry) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was newly claimed.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, resultHash string, bookingID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) error
}

type SettingsRepository interface {
	SaveLoyalty(ctx context.Context, tx sqlc.DBTX, cfg loyalty.Config) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}

type PushSubscriptionRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, sub PushSubscription) error
	DeleteByEndpoint(ctx context.Context, tx sqlc.DBTX, endpoint string) (bool, error)
}
