package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/pricing"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour
)

var ErrScheduleInPast = errs.New("scheduled time must be in the future")

// ProofUpload is a decoded payment proof file.
type ProofUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, proof *ProofUpload, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID, amountPaid int64, actorID uuid.UUID) (*queries.BookingView, error)
	RequestReschedule(ctx context.Context, code string, newDate time.Time, reason string) (*queries.BookingStatusView, error)
	ResolveReschedule(ctx context.Context, id uuid.UUID, approve bool, actorID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, id uuid.UUID, deliveryLink string, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	blobs          shared.BlobStore
	notifier       shared.Notifier
	calculator     pricing.Calculator
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	blobs shared.BlobStore,
	notifier shared.Notifier,
	calculator pricing.Calculator,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		blobs:          blobs,
		notifier:       notifier,
		calculator:     calculator,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (u *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	proof *ProofUpload,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	now := u.clock.Now()
	email, err := client.NormalizeEmail(req.ClientEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !req.ScheduledAt.After(now) {
		return nil, errs.Mark(ErrScheduleInPast, errs.ErrDomainValidation)
	}

	var requestHash string
	if idempotencyKey != nil {
		requestHash = calculateRequestHash(req)
		replayID, err := u.claimIdempotencyKey(ctx, *idempotencyKey, requestHash, now)
		if err != nil {
			return nil, err
		}
		if replayID != nil {
			view, err := u.bookingQueries.GetByID(ctx, *replayID)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
			}
			return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
		}
	}

	stored, err := u.storeProof(ctx, proof)
	if err != nil {
		u.releaseIdempotencyKey(ctx, idempotencyKey)
		return nil, err
	}

	var created *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.placeBooking(ctx, tx, req, email, stored, now)
		if err != nil {
			return err
		}
		if idempotencyKey != nil {
			resultHash := calculateIDHash(b.ID())
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, createBookingEndpoint, resultHash, b.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		created = b
		return nil
	})
	if err != nil {
		u.discardProof(ctx, stored)
		u.releaseIdempotencyKey(ctx, idempotencyKey)
		return nil, err
	}

	u.notify(ctx, shared.EventBookingCreated, created)

	view, err := u.bookingQueries.GetByID(ctx, created.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view}, nil
}

// placeBooking runs inside the transaction: resolve the catalog, price the
// selection, upsert the client and insert the pending booking.
func (u *bookingCommandsImpl) placeBooking(
	ctx context.Context,
	tx shared.Tx,
	req reqdto.CreateBookingRequest,
	email string,
	stored *shared.StoredBlob,
	now time.Time,
) (*booking.Booking, error) {
	choice, err := u.resolveChoice(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	cfg, err := tx.Reads().LoyaltySettings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c, isNew, err := u.loadOrCreateClient(ctx, tx, req, email, now)
	if err != nil {
		return nil, err
	}

	inputs, err := u.discountInputs(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	price := u.calculator.Compute(choice.Selection(), inputs, c.History(), cfg)

	if price.ReferralApplied {
		if err := c.MarkReferredBy(price.ReferralCode, now); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if price.PointsRedeemed > 0 {
		if err := c.RedeemPoints(price.PointsRedeemed, now); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if isNew {
		err = tx.Clients().Create(ctx, tx.DB(), c)
	} else {
		err = tx.Clients().SaveProfile(ctx, tx.DB(), c)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	draft := booking.Draft{
		ClientID: c.ID(),
		Client: booking.ClientInfo{
			Name:  strings.TrimSpace(req.ClientName),
			Email: email,
			Phone: req.Phone(),
		},
		ScheduledAt:    req.ScheduledAt,
		PackageID:      choice.Package.ID,
		PackageName:    choice.Package.Name,
		SubPackageID:   choice.SubPackage.ID,
		SubPackageName: choice.SubPackage.Name,
		AddOns:         toBookingAddOns(choice.AddOns),
		Participants:   choice.Participants,
		Price:          price,
		Notes:          req.NoteText(),
	}
	if stored != nil {
		id := stored.ID
		draft.ProofBlobID = &id
		draft.ProofURL = stored.URL
	}

	b, err := booking.New(draft, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	payload := map[string]any{
		"code":           b.Code().String(),
		"finalPrice":     price.FinalPrice,
		"discountReason": price.DiscountReason,
		"pointsRedeemed": price.PointsRedeemed,
	}
	if err := appendActivity(ctx, tx, nil, shared.ActivityBookingCreated, b.ID(), payload, now); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *bookingCommandsImpl) resolveChoice(ctx context.Context, tx shared.Tx, req reqdto.CreateBookingRequest) (catalog.Choice, error) {
	snap, err := tx.Reads().SubPackageByID(ctx, req.SubPackageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.Choice{}, errs.Mark(catalog.ErrSubPackageUnavailable, errs.ErrCatalogItemUnavailable)
		}
		return catalog.Choice{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.Package.ID != req.PackageID {
		return catalog.Choice{}, errs.Mark(catalog.ErrSubPackageMismatch, errs.ErrCatalogItemUnavailable)
	}

	addOns, err := tx.Reads().AddOnsByIDs(ctx, req.AddOnIDs)
	if err != nil {
		return catalog.Choice{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	choice, err := catalog.Resolve(snap.Package, snap.SubPackage, req.AddOnIDs, addOns, req.Participants)
	if err != nil {
		return catalog.Choice{}, errs.Mark(err, errs.ErrCatalogItemUnavailable)
	}
	return choice, nil
}

func (u *bookingCommandsImpl) loadOrCreateClient(
	ctx context.Context,
	tx shared.Tx,
	req reqdto.CreateBookingRequest,
	email string,
	now time.Time,
) (*client.Client, bool, error) {
	c, err := tx.Reads().ClientByEmailForUpdate(ctx, email)
	if err == nil {
		c.UpdateContact(req.ClientName, req.Phone(), now)
		return c, false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c, err = client.New(email, req.ClientName, req.Phone(), now)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c, true, nil
}

// discountInputs resolves codes against the store. Unknown codes are dropped
// so pricing falls through to the next discount.
func (u *bookingCommandsImpl) discountInputs(ctx context.Context, tx shared.Tx, req reqdto.CreateBookingRequest) (pricing.DiscountInputs, error) {
	in := pricing.DiscountInputs{
		ReferralCode:   req.Referral(),
		RedeemPoints:   req.RedeemPoints,
		PointsToRedeem: req.PointsCap(),
	}

	if code := req.Promo(); code != "" {
		promo, err := tx.Reads().PromoByCode(ctx, code)
		switch {
		case err == nil:
			in.Promo = promo
		case !infra.IsKind(err, infra.KindNotFound):
			return pricing.DiscountInputs{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if in.ReferralCode != "" {
		referrer, err := tx.Reads().ClientByReferralCode(ctx, in.ReferralCode)
		switch {
		case err == nil:
			in.Referrer = &pricing.Referrer{
				ClientEmail:  referrer.Email(),
				ReferralCode: referrer.ReferralCode(),
			}
		case !infra.IsKind(err, infra.KindNotFound):
			return pricing.DiscountInputs{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return in, nil
}

func (u *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID, amountPaid int64, actorID uuid.UUID) (*queries.BookingView, error) {
	payload := map[string]any{"amountPaid": amountPaid}
	return u.transition(ctx, id, actorID, shared.ActivityBookingConfirmed, shared.EventBookingConfirmed, payload,
		func(b *booking.Booking, now time.Time) error {
			return b.Confirm(amountPaid, now)
		})
}

func (u *bookingCommandsImpl) ResolveReschedule(ctx context.Context, id uuid.UUID, approve bool, actorID uuid.UUID) (*queries.BookingView, error) {
	payload := map[string]any{"approved": approve}
	return u.transition(ctx, id, actorID, shared.ActivityBookingRescheduleResolved, shared.EventRescheduleResolved, payload,
		func(b *booking.Booking, now time.Time) error {
			return b.ResolveReschedule(approve, now)
		})
}

func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID) (*queries.BookingView, error) {
	payload := map[string]any{"reason": strings.TrimSpace(reason)}
	return u.transition(ctx, id, actorID, shared.ActivityBookingCancelled, shared.EventBookingCancelled, payload,
		func(b *booking.Booking, now time.Time) error {
			return b.Cancel(reason, now)
		})
}

func (u *bookingCommandsImpl) transition(
	ctx context.Context,
	id, actorID uuid.UUID,
	action string,
	event shared.EventType,
	payload map[string]any,
	apply func(b *booking.Booking, now time.Time) error,
) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := u.clock.Now()
		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(b, now); err != nil {
			return classifyDomainErr(err)
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := appendActivity(ctx, tx, &actorID, action, b.ID(), payload, now); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, event, updated)
	return u.bookingQueries.GetByID(ctx, id)
}

func (u *bookingCommandsImpl) RequestReschedule(ctx context.Context, code string, newDate time.Time, reason string) (*queries.BookingStatusView, error) {
	parsed, err := booking.ParseCode(code)
	if err != nil {
		return nil, errs.ErrBookingNotFound
	}
	if !newDate.After(u.clock.Now()) {
		return nil, errs.Mark(ErrScheduleInPast, errs.ErrDomainValidation)
	}

	var updated *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := u.clock.Now()
		b, err := tx.Reads().BookingByCodeForUpdate(ctx, parsed.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.RequestReschedule(newDate, reason, now); err != nil {
			return classifyDomainErr(err)
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		payload := map[string]any{"requestedAt": newDate, "reason": strings.TrimSpace(reason)}
		if err := appendActivity(ctx, tx, nil, shared.ActivityBookingRescheduleRequest, b.ID(), payload, now); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notify(ctx, shared.EventRescheduleRequested, updated)
	return u.bookingQueries.GetStatusByCode(ctx, parsed.String())
}

func (u *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, requestHash string, now time.Time) (*uuid.UUID, error) {
	var replayID *uuid.UUID
	expiresAt := now.Add(idempotencyTTL)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayID = nil
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, createBookingEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, createBookingEndpoint)
		if err != nil {
			return err
		}

		if existing.Expired(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, createBookingEndpoint, requestHash, expiresAt)
			if err != nil {
				return err
			}
			if !claimed {
				return errs.ErrIdempotencyInProgress
			}
			return nil
		}

		if existing.RequestHash != requestHash {
			return errs.ErrIdempotencyConflict
		}

		switch existing.Status {
		case shared.IdempotencyCompleted:
			if existing.ResultBookingID == nil {
				return errs.New("completed request missing result booking ID")
			}
			replayID = existing.ResultBookingID
			return nil
		case shared.IdempotencyProcessing:
			return errs.ErrIdempotencyInProgress
		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		if errs.Is(err, errs.ErrIdempotencyInProgress) || errs.Is(err, errs.ErrIdempotencyConflict) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	return replayID, nil
}

// releaseIdempotencyKey drops a processing key so the client can retry.
func (u *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key *uuid.UUID) {
	if key == nil {
		return
	}
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), *key, createBookingEndpoint)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

func (u *bookingCommandsImpl) storeProof(ctx context.Context, proof *ProofUpload) (*shared.StoredBlob, error) {
	if proof == nil || len(proof.Data) == 0 {
		return nil, nil
	}
	stored, err := u.blobs.Put(ctx, proof.FileName, proof.ContentType, proof.Data)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBlobStoreFailed)
	}
	return &stored, nil
}

// discardProof is the compensating step for a failed booking transaction.
// A failed delete leaves an orphaned blob and is only logged.
func (u *bookingCommandsImpl) discardProof(ctx context.Context, stored *shared.StoredBlob) {
	if stored == nil {
		return
	}
	if err := u.blobs.Delete(context.WithoutCancel(ctx), stored.ID); err != nil {
		slog.Error("failed to delete orphaned payment proof",
			"blob_id", stored.ID.String(),
			"error", err.Error())
	}
}

func (u *bookingCommandsImpl) notify(ctx context.Context, t shared.EventType, b *booking.Booking) {
	u.notifier.Notify(ctx, shared.BookingEvent{
		Type:        t,
		BookingID:   b.ID(),
		BookingCode: b.Code().String(),
		ClientName:  b.Client().Name,
		Status:      b.Status().String(),
		ScheduledAt: b.ScheduledAt(),
		OccurredAt:  u.clock.Now(),
	})
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func appendActivity(ctx context.Context, tx shared.Tx, actorID *uuid.UUID, action string, bookingID uuid.UUID, payload map[string]any, now time.Time) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "encode activity payload")
	}
	entry := shared.ActivityEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: shared.EntityBooking,
		EntityID:   bookingID,
		Payload:    raw,
		At:         now,
	}
	if err := tx.Activity().Append(ctx, tx.DB(), entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// classifyDomainErr keeps invalid transitions distinct from input validation.
func classifyDomainErr(err error) error {
	if errors.Is(err, booking.ErrInvalidTransition) {
		return err
	}
	return errs.Mark(err, errs.ErrDomainValidation)
}

func toBookingAddOns(addOns []catalog.AddOn) []booking.AddOn {
	result := make([]booking.AddOn, len(addOns))
	for i, a := range addOns {
		result[i] = booking.AddOn{ID: a.ID, Name: a.Name, Price: a.Price}
	}
	return result
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
