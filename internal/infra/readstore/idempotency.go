package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when expired; callers decide whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		Endpoint:        row.Endpoint,
		Status:          shared.IdempotencyStatus(row.Status),
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
