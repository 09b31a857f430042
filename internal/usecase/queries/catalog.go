package queries

import (
	"context"
)

type CatalogReadStore interface {
	ListActive(ctx context.Context) (*CatalogView, error)
}

type CatalogQueries interface {
	GetCatalog(ctx context.Context) (*CatalogView, error)
}

type catalogQueriesImpl struct {
	repo CatalogReadStore
}

func NewCatalogQueries(repo CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) GetCatalog(ctx context.Context) (*CatalogView, error) {
	return q.repo.ListActive(ctx)
}
