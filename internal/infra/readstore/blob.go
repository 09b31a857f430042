package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlobReadQueries interface {
	GetBlob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Blobs, error)
}

type BlobReadStore struct {
	queries BlobReadQueries
	db      sqlc.DBTX
}

func NewBlobReadStore(queries BlobReadQueries, db sqlc.DBTX) *BlobReadStore {
	return &BlobReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FileView, error) {
	row, err := r.queries.GetBlob(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blob not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blob", err)
	}

	return &queries.FileView{
		ID:          row.ID,
		FileName:    row.FileName,
		ContentType: row.ContentType,
		Data:        row.Data,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
