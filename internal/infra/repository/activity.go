package repository

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/shared"
)

type ActivityWriteQueries interface {
	CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error
}

type ActivityRepository struct {
	queries ActivityWriteQueries
	db      sqlc.DBTX
}

func NewActivityRepository(queries ActivityWriteQueries, db sqlc.DBTX) *ActivityRepository {
	return &ActivityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityRepository) Append(ctx context.Context, tx sqlc.DBTX, entry shared.ActivityEntry) error {
	payload := []byte(entry.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	params := sqlc.CreateActivityLogParams{
		ActorID:    pgconv.UUIDPtrToPgtype(entry.ActorID),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Payload:    payload,
		CreatedAt:  pgconv.TimeToPgtype(entry.At),
	}

	if err := r.queries.CreateActivityLog(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append activity log", err)
	}
	return nil
}
