package repository

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/shared"
)

type PushSubscriptionWriteQueries interface {
	UpsertPushSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPushSubscriptionParams) error
	DeletePushSubscriptionByEndpoint(ctx context.Context, db sqlc.DBTX, endpoint string) (int64, error)
}

type PushSubscriptionRepository struct {
	queries PushSubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewPushSubscriptionRepository(queries PushSubscriptionWriteQueries, db sqlc.DBTX) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PushSubscriptionRepository) Upsert(ctx context.Context, tx sqlc.DBTX, sub shared.PushSubscription) error {
	params := sqlc.UpsertPushSubscriptionParams{
		UserID:   sub.UserID,
		Role:     sub.Role,
		Endpoint: sub.Endpoint,
		P256dh:   sub.P256dh,
		Auth:     sub.Auth,
	}

	if err := r.queries.UpsertPushSubscription(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save push subscription", err)
	}
	return nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, tx sqlc.DBTX, endpoint string) (bool, error) {
	deleted, err := r.queries.DeletePushSubscriptionByEndpoint(ctx, tx, endpoint)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete push subscription", err)
	}
	return deleted > 0, nil
}
