package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/ledger"
	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/user"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidDeliveryLink = errs.New("delivery link must be an absolute http(s) URL")

// CompleteBooking settles a confirmed booking. The booking transition, the
// client and referrer loyalty updates and the income entry commit together.
// Completing an already completed booking changes nothing.
func (u *bookingCommandsImpl) CompleteBooking(ctx context.Context, id uuid.UUID, deliveryLink string, actorID uuid.UUID) (*queries.BookingView, error) {
	link, err := validateDeliveryLink(deliveryLink)
	if err != nil {
		return nil, err
	}

	var completed *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completed = nil
		now := u.clock.Now()

		if err := authorizeSettlement(ctx, tx, actorID); err != nil {
			return err
		}

		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCompleted {
			return nil
		}
		if b.Status() != booking.StatusConfirmed {
			return booking.ErrInvalidTransition
		}

		cfg, err := tx.Reads().LoyaltySettings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		c, err := tx.Reads().ClientByEmailForUpdate(ctx, b.Client().Email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(loyalty.ErrClientMismatch, errs.ErrClientNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if c.ID() != b.ClientID() {
			return errs.Mark(loyalty.ErrClientMismatch, errs.ErrDomainValidation)
		}

		settlement, err := loyalty.ApplySettlement(b.SettlementInput(), c.Account(), cfg, now)
		if err != nil {
			if errors.Is(err, loyalty.ErrAlreadySettled) {
				return nil
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := b.Complete(link, now); err != nil {
			return classifyDomainErr(err)
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Clients().ApplySettlement(ctx, tx.DB(), c.ID(), settlement.Client); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if ref := settlement.Referrer; ref != nil {
			if err := creditReferrer(ctx, tx, b, ref, actorID, now); err != nil {
				return err
			}
		}

		if entry := settlement.Ledger; entry != nil {
			bookingID := b.ID()
			t, err := ledger.New(ledger.TypeIncome, entry.Amount, entry.Description, &bookingID, &actorID, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Transactions().Append(ctx, tx.DB(), t); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		payload := map[string]any{
			"deliveryLink":  link,
			"pointsEarned":  settlement.Client.PointsEarned,
			"referralBonus": settlement.Client.ReferralBonus,
			"tier":          settlement.Client.NewTier,
		}
		if err := appendActivity(ctx, tx, &actorID, shared.ActivityBookingCompleted, b.ID(), payload, now); err != nil {
			return err
		}

		completed = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed != nil {
		slog.Info("booking settled",
			"booking_id", completed.ID().String(),
			"code", completed.Code().String(),
			"final_price", completed.Price().FinalPrice)
		u.notify(ctx, shared.EventBookingCompleted, completed)
	}

	return u.bookingQueries.GetByID(ctx, id)
}

func authorizeSettlement(ctx context.Context, tx shared.Tx, actorID uuid.UUID) error {
	actor, err := tx.Reads().UserByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrForbidden
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !actor.IsActive {
		return errs.ErrForbidden
	}
	role, err := user.NewRole(actor.Role)
	if err != nil || !role.CanSettleBookings() {
		return errs.ErrForbidden
	}
	return nil
}

// creditReferrer applies the referrer's bonus. A referral code whose owner no
// longer exists is recorded and skipped so settlement still succeeds.
func creditReferrer(ctx context.Context, tx shared.Tx, b *booking.Booking, ref *loyalty.ReferrerDelta, actorID uuid.UUID, now time.Time) error {
	credited, err := tx.Clients().CreditReferrer(ctx, tx.DB(), ref.ReferralCode, ref.BonusPoints, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if credited {
		return nil
	}

	slog.Warn("referrer not found, skipping referral bonus",
		"booking_id", b.ID().String(),
		"referral_code", ref.ReferralCode)
	payload := map[string]any{"referralCode": ref.ReferralCode, "bonusPoints": ref.BonusPoints}
	return appendActivity(ctx, tx, &actorID, shared.ActivityReferrerMissing, b.ID(), payload, now)
}

func validateDeliveryLink(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", errs.Mark(booking.ErrDeliveryLinkRequired, errs.ErrDomainValidation)
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", errs.Mark(ErrInvalidDeliveryLink, errs.ErrDomainValidation)
	}
	return link, nil
}
