package queries

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFileNotFound = errs.New("file not found")

type FileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FileView, error)
}

type FileQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*FileView, error)
}

type fileQueriesImpl struct {
	repo FileReadStore
}

func NewFileQueries(repo FileReadStore) FileQueries {
	return &fileQueriesImpl{repo: repo}
}

func (q *fileQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*FileView, error) {
	fv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return fv, nil
}
