package readstore

import (
	"context"
	"encoding/json"

	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	GetSetting(ctx context.Context, db sqlc.DBTX, key string) (sqlc.Settings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) LoyaltyConfig(ctx context.Context) (loyalty.Config, error) {
	row, err := r.queries.GetSetting(ctx, r.db, repository.LoyaltySettingsKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return loyalty.DefaultConfig(), nil
		}
		return loyalty.Config{}, infra.WrapRepoErr("failed to load loyalty settings", err)
	}

	var cfg loyalty.Config
	if err := json.Unmarshal(row.Value, &cfg); err != nil {
		return loyalty.Config{}, infra.WrapRepoErr("failed to decode loyalty settings", err)
	}
	return cfg, nil
}
