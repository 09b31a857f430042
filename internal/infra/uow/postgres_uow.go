package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/infra/readstore"
	"studio-booking/internal/infra/repository"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Serializable so concurrent settlements of the same booking cannot both apply;
// the loser is retried and observes the committed state.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo     shared.BookingRepository
	clientRepo      shared.ClientRepository
	transactionRepo shared.TransactionRepository
	activityRepo    shared.ActivityRepository
	idempotencyRepo shared.IdempotencyRepository
	settingsRepo    shared.SettingsRepository
	userRepo        shared.UserRepository
	pushRepo        shared.PushSubscriptionRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.q, t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) Activity() shared.ActivityRepository {
	if t.activityRepo == nil {
		t.activityRepo = repository.NewActivityRepository(t.uow.q, t.dbtx)
	}
	return t.activityRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settingsRepo == nil {
		t.settingsRepo = repository.NewSettingsRepository(t.uow.q, t.dbtx)
	}
	return t.settingsRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) PushSubscriptions() shared.PushSubscriptionRepository {
	if t.pushRepo == nil {
		t.pushRepo = repository.NewPushSubscriptionRepository(t.uow.q, t.dbtx)
	}
	return t.pushRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore        *readstore.UserReadStore
	catalogStore     *readstore.CatalogReadStore
	settingsStore    *readstore.SettingsReadStore
	clientStore      *readstore.ClientReadStore
	bookingStore     *readstore.BookingReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) clients() *readstore.ClientReadStore {
	if r.clientStore == nil {
		r.clientStore = readstore.NewClientReadStore(r.uow.q, r.dbtx)
	}
	return r.clientStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	u, hash, err := r.users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		PasswordHash: hash,
		IsActive:     u.IsActive,
	}, nil
}

func (r *commandReads) SubPackageByID(ctx context.Context, id uuid.UUID) (*shared.CatalogSnapshot, error) {
	pkg, sub, err := r.catalog().SubPackageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.CatalogSnapshot{Package: pkg, SubPackage: sub}, nil
}

func (r *commandReads) AddOnsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.CatalogAddOn, error) {
	return r.catalog().AddOnsByIDs(ctx, ids)
}

func (r *commandReads) PromoByCode(ctx context.Context, code string) (*pricing.Promo, error) {
	return r.catalog().PromoByCode(ctx, code)
}

func (r *commandReads) LoyaltySettings(ctx context.Context) (loyalty.Config, error) {
	if r.settingsStore == nil {
		r.settingsStore = readstore.NewSettingsReadStore(r.uow.q, r.dbtx)
	}
	return r.settingsStore.LoyaltyConfig(ctx)
}

func (r *commandReads) ClientByEmailForUpdate(ctx context.Context, email string) (*client.Client, error) {
	return r.clients().LoadByEmailForUpdate(ctx, email)
}

func (r *commandReads) ClientByReferralCode(ctx context.Context, code string) (*client.Client, error) {
	return r.clients().LoadByReferralCode(ctx, code)
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().LoadForUpdate(ctx, id)
}

func (r *commandReads) BookingByCodeForUpdate(ctx context.Context, code string) (*booking.Booking, error) {
	return r.bookings().LoadByCodeForUpdate(ctx, code)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, endpoint)
}
