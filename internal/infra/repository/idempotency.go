package repository

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	DeleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted > 0, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	claimed, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}

	return claimed > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, responseBodyHash string, bookingID uuid.UUID) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:              key,
		Endpoint:         endpoint,
		ResponseBodyHash: pgconv.StringToPgtype(responseBodyHash),
		ResultBookingID:  pgconv.UUIDToPgtype(bookingID),
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// Release drops a key still in processing so the client can retry after a failure.
func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) error {
	params := sqlc.DeleteIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	}

	if err := r.queries.DeleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
