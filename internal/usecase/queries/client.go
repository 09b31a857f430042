package queries

import (
	"context"

	"studio-booking/internal/domain/client"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
)

type ClientReadStore interface {
	FindByEmail(ctx context.Context, email string) (*ClientView, error)
}

type ClientQueries interface {
	GetByEmail(ctx context.Context, email string) (*ClientView, error)
}

type clientQueriesImpl struct {
	repo ClientReadStore
}

func NewClientQueries(repo ClientReadStore) ClientQueries {
	return &clientQueriesImpl{repo: repo}
}

func (q *clientQueriesImpl) GetByEmail(ctx context.Context, email string) (*ClientView, error) {
	normalized, err := client.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrClientNotFound
	}

	cv, err := q.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}
	return cv, nil
}
