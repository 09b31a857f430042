package commands

import (
	"context"
	"strings"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPushSubscriptionNotFound = errs.New("push subscription not found")

type PushSubscriptionInput struct {
	Endpoint string
	P256dh   string
	Auth     string
}

type PushCommands interface {
	Subscribe(ctx context.Context, userID uuid.UUID, role string, in PushSubscriptionInput) error
	Unsubscribe(ctx context.Context, endpoint string) error
}

type pushCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPushCommands(uow shared.UnitOfWork) PushCommands {
	return &pushCommandsImpl{uow: uow}
}

// Subscribe registers a browser endpoint for the signed-in staff member.
// Re-subscribing the same endpoint refreshes its keys and owner.
func (u *pushCommandsImpl) Subscribe(ctx context.Context, userID uuid.UUID, role string, in PushSubscriptionInput) error {
	sub := shared.PushSubscription{
		UserID:   userID,
		Role:     role,
		Endpoint: strings.TrimSpace(in.Endpoint),
		P256dh:   strings.TrimSpace(in.P256dh),
		Auth:     strings.TrimSpace(in.Auth),
	}
	if sub.Endpoint == "" || sub.P256dh == "" || sub.Auth == "" {
		return errs.Mark(errs.New("push subscription keys are required"), errs.ErrDomainValidation)
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PushSubscriptions().Upsert(ctx, tx.DB(), sub); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *pushCommandsImpl) Unsubscribe(ctx context.Context, endpoint string) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.PushSubscriptions().DeleteByEndpoint(ctx, tx.DB(), strings.TrimSpace(endpoint))
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !removed {
			return ErrPushSubscriptionNotFound
		}
		return nil
	})
}
