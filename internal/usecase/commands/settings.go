package commands

import (
	"context"
	"encoding/json"

	"studio-booking/internal/domain/loyalty"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettingsCommands interface {
	UpdateLoyalty(ctx context.Context, req reqdto.UpdateLoyaltySettingsRequest, actorID uuid.UUID) (loyalty.Config, error)
}

type settingsCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingsCommands(uow shared.UnitOfWork, clk clock.Clock) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, clock: clk}
}

// UpdateLoyalty replaces the loyalty configuration. Bookings already priced
// keep their breakdown; only later pricing and settlements see the change.
func (u *settingsCommandsImpl) UpdateLoyalty(ctx context.Context, req reqdto.UpdateLoyaltySettingsRequest, actorID uuid.UUID) (loyalty.Config, error) {
	cfg, err := req.ToDomain()
	if err != nil {
		return loyalty.Config{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().SaveLoyalty(ctx, tx.DB(), cfg); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(cfg)
		if err != nil {
			return errs.Wrap(err, "encode loyalty settings")
		}
		entry := shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     shared.ActivitySettingsUpdated,
			EntityType: shared.EntitySettings,
			Payload:    payload,
			At:         u.clock.Now(),
		}
		if err := tx.Activity().Append(ctx, tx.DB(), entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return loyalty.Config{}, err
	}
	return cfg, nil
}
