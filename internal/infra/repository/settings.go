package repository

import (
	"context"
	"encoding/json"

	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
)

const LoyaltySettingsKey = "loyalty"

type SettingsWriteQueries interface {
	UpsertSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSettingParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) SaveLoyalty(ctx context.Context, tx sqlc.DBTX, cfg loyalty.Config) error {
	value, err := json.Marshal(cfg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode loyalty settings", err)
	}

	params := sqlc.UpsertSettingParams{
		Key:   LoyaltySettingsKey,
		Value: value,
	}
	if err := r.queries.UpsertSetting(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save loyalty settings", err)
	}
	return nil
}
