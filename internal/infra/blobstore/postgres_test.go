//go:build unit

package blobstore_test

import (
	"context"
	"errors"
	"testing"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/blobstore"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlobQueries struct {
	created   []sqlc.CreateBlobParams
	deleted   []uuid.UUID
	createErr error
}

func (f *fakeBlobQueries) CreateBlob(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBlobParams) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, arg)
	return nil
}

func (f *fakeBlobQueries) DeleteBlob(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 0, nil
}

func TestPostgresStore(t *testing.T) {
	cfg := config.StorageConfig{PublicBaseURL: "https://studio.example.com/"}

	t.Run("put returns public url", func(t *testing.T) {
		q := &fakeBlobQueries{}
		store := blobstore.NewPostgresStore(q, nil, cfg)

		stored, err := store.Put(context.Background(), "proof.png", "image/png", []byte("png-bytes"))

		require.NoError(t, err)
		require.Len(t, q.created, 1)
		assert.Equal(t, stored.ID, q.created[0].ID)
		assert.Equal(t, int64(9), q.created[0].SizeBytes)
		assert.Equal(t, "https://studio.example.com/files/"+stored.ID.String(), stored.URL)
	})

	t.Run("put failure is a repository error", func(t *testing.T) {
		q := &fakeBlobQueries{createErr: errors.New("disk full")}
		store := blobstore.NewPostgresStore(q, nil, cfg)

		_, err := store.Put(context.Background(), "proof.png", "image/png", []byte("x"))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("delete of missing blob succeeds", func(t *testing.T) {
		q := &fakeBlobQueries{}
		store := blobstore.NewPostgresStore(q, nil, cfg)
		id := uuid.New()

		require.NoError(t, store.Delete(context.Background(), id))
		assert.Equal(t, []uuid.UUID{id}, q.deleted)
	})
}
