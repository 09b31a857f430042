package notify

import (
	"context"

	sqlc "studio-booking/internal/infra/sqlc/generated"
)

type subscriptionDeleter interface {
	DeleteByEndpoint(ctx context.Context, tx sqlc.DBTX, endpoint string) (bool, error)
}

// PoolRemover deletes subscriptions outside any request transaction.
type PoolRemover struct {
	repo subscriptionDeleter
	db   sqlc.DBTX
}

func NewPoolRemover(repo subscriptionDeleter, db sqlc.DBTX) *PoolRemover {
	return &PoolRemover{repo: repo, db: db}
}

func (r *PoolRemover) RemoveByEndpoint(ctx context.Context, endpoint string) (bool, error) {
	return r.repo.DeleteByEndpoint(ctx, r.db, endpoint)
}
