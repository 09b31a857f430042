package queries

import (
	"context"

	"studio-booking/internal/domain/loyalty"
)

type SettingsReadStore interface {
	// LoyaltyConfig falls back to loyalty.DefaultConfig when nothing is stored.
	LoyaltyConfig(ctx context.Context) (loyalty.Config, error)
}

type SettingsQueries interface {
	GetLoyalty(ctx context.Context) (loyalty.Config, error)
}

type settingsQueriesImpl struct {
	repo SettingsReadStore
}

func NewSettingsQueries(repo SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{repo: repo}
}

func (q *settingsQueriesImpl) GetLoyalty(ctx context.Context) (loyalty.Config, error) {
	return q.repo.LoyaltyConfig(ctx)
}
