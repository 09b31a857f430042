package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/shared"
)

type PushSubscriptionReadQueries interface {
	ListPushSubscriptionsByRoles(ctx context.Context, db sqlc.DBTX, roles []string) ([]sqlc.PushSubscriptions, error)
}

type PushSubscriptionReadStore struct {
	queries PushSubscriptionReadQueries
	db      sqlc.DBTX
}

func NewPushSubscriptionReadStore(queries PushSubscriptionReadQueries, db sqlc.DBTX) *PushSubscriptionReadStore {
	return &PushSubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PushSubscriptionReadStore) ListByRoles(ctx context.Context, roles ...string) ([]shared.PushSubscription, error) {
	rows, err := r.queries.ListPushSubscriptionsByRoles(ctx, r.db, roles)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list push subscriptions", err)
	}

	result := make([]shared.PushSubscription, len(rows))
	for i, row := range rows {
		result[i] = shared.PushSubscription{
			UserID:   row.UserID,
			Role:     row.Role,
			Endpoint: row.Endpoint,
			P256dh:   row.P256dh,
			Auth:     row.Auth,
		}
	}
	return result, nil
}
