package blobstore

import (
	"context"
	"strings"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlobQueries interface {
	CreateBlob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlobParams) error
	DeleteBlob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// PostgresStore keeps uploads in the blobs table. Writes use their own
// implicit transaction so a stored file survives a rolled back booking
// until the caller deletes it.
type PostgresStore struct {
	queries BlobQueries
	db      sqlc.DBTX
	baseURL string
}

func NewPostgresStore(queries BlobQueries, db sqlc.DBTX, cfg config.StorageConfig) *PostgresStore {
	return &PostgresStore{
		queries: queries,
		db:      db,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *PostgresStore) Put(ctx context.Context, name, contentType string, data []byte) (shared.StoredBlob, error) {
	id := uuid.New()
	params := sqlc.CreateBlobParams{
		ID:          id,
		FileName:    name,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		Data:        data,
	}
	if err := s.queries.CreateBlob(ctx, s.db, params); err != nil {
		return shared.StoredBlob{}, infra.WrapRepoErr("failed to store blob", err)
	}
	return shared.StoredBlob{ID: id, URL: s.URLFor(id)}, nil
}

// Delete is idempotent: removing a missing blob is not an error.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.queries.DeleteBlob(ctx, s.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete blob", err)
	}
	return nil
}

func (s *PostgresStore) URLFor(id uuid.UUID) string {
	return s.baseURL + "/files/" + id.String()
}
