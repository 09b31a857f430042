//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/ledger"
	"studio-booking/internal/domain/pricing"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const deliveryLink = "https://drive.example.com/albums/42"

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	store    *memStore
	blobs    *memBlobs
	notifier *recordingNotifier
	cmds     commands.BookingCommands

	packageID    uuid.UUID
	subPackageID uuid.UUID
	addOnID      uuid.UUID
	staffID      uuid.UUID
	internID     uuid.UUID
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.store = newMemStore()
	s.blobs = newMemBlobs()
	s.notifier = &recordingNotifier{}

	s.packageID = uuid.New()
	s.subPackageID = uuid.New()
	s.addOnID = uuid.New()
	s.staffID = uuid.New()
	s.internID = uuid.New()

	s.store.seed(func(st *memState) {
		st.subPackages[s.subPackageID] = shared.CatalogSnapshot{
			Package: catalog.Package{
				ID: s.packageID, Name: "Family Session", IsGroup: true, PerPersonRate: 50000, Active: true,
			},
			SubPackage: catalog.SubPackage{
				ID: s.subPackageID, PackageID: s.packageID, Name: "Classic", Price: 500000, Active: true,
			},
		}
		st.addOns[s.addOnID] = catalog.AddOn{ID: s.addOnID, Name: "Printed album", Price: 100000, Active: true}
		st.users[s.staffID] = shared.UserSnapshot{ID: s.staffID, Email: "staff@studio.test", Role: "staff", IsActive: true}
		st.users[s.internID] = shared.UserSnapshot{ID: s.internID, Email: "intern@studio.test", Role: "intern", IsActive: true}
	})

	bookingQueries := queries.NewBookingQueries(s.store)
	s.cmds = commands.NewBookingCommands(
		s.store, s.blobs, s.notifier, pricing.NewDefaultCalculator(), bookingQueries, clock.NewMockClock(s.now),
	)
}

func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

// Four participants on a group package: 500000 + 2 extra × 50000 + 100000 add-on.
const expectedSubtotal = 700000

func (s *BookingCommandsTestSuite) createRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ClientName:   "Dewi Lestari",
		ClientEmail:  "Dewi@Example.com",
		ScheduledAt:  s.now.Add(7 * 24 * time.Hour),
		PackageID:    s.packageID,
		SubPackageID: s.subPackageID,
		AddOnIDs:     []uuid.UUID{s.addOnID},
		Participants: 4,
	}
}

func (s *BookingCommandsTestSuite) seedClient(name, email string, mutate func(r *client.Record)) client.Record {
	c, err := client.New(email, name, "", s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	rec := clientRecord(c)
	if mutate != nil {
		mutate(&rec)
	}
	s.store.seed(func(st *memState) { st.clients[rec.ID] = rec })
	return rec
}

func (s *BookingCommandsTestSuite) clientByEmail(email string) client.Record {
	for _, c := range s.store.snapshot().clients {
		if c.Email == email {
			return c
		}
	}
	s.FailNow("client not found", email)
	return client.Record{}
}

func (s *BookingCommandsTestSuite) create(req reqdto.CreateBookingRequest) *queries.BookingView {
	res, err := s.cmds.CreateBooking(s.ctx, req, nil, nil)
	s.Require().NoError(err)
	return res.Booking
}

func (s *BookingCommandsTestSuite) createConfirmed(req reqdto.CreateBookingRequest, paid int64) *queries.BookingView {
	created := s.create(req)
	view, err := s.cmds.ConfirmBooking(s.ctx, created.ID, paid, s.staffID)
	s.Require().NoError(err)
	return view
}

func countEvents(types []shared.EventType, t shared.EventType) int {
	n := 0
	for _, got := range types {
		if got == t {
			n++
		}
	}
	return n
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: prices a first booking and creates the client", func() {
		view := s.create(s.createRequest())

		s.Equal(booking.StatusPending.String(), view.Status)
		s.Equal(int64(expectedSubtotal), view.Price.Subtotal)
		s.Equal(int64(expectedSubtotal), view.Price.FinalPrice)
		s.Equal(int64(expectedSubtotal), view.RemainingBalance)
		s.True(booking.IsValidCode(view.Code))

		c := s.clientByEmail("dewi@example.com")
		s.Equal("Dewi Lestari", c.Name)
		s.Zero(c.TotalBookings)
		s.NotEmpty(c.ReferralCode)

		st := s.store.snapshot()
		s.Require().Len(st.activity, 1)
		s.Equal(shared.ActivityBookingCreated, st.activity[0].Action)
		s.Nil(st.activity[0].ActorID)
		s.Equal([]shared.EventType{shared.EventBookingCreated}, s.notifier.types())
	})

	s.Run("success: stores the payment proof", func() {
		proof := &commands.ProofUpload{FileName: "receipt.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

		res, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), proof, nil)

		s.Require().NoError(err)
		s.Equal(1, s.blobs.count())
		s.Contains(res.Booking.PaymentProofURL, "/files/")
	})

	s.Run("success: referral code discounts a first booking", func() {
		referrer := s.seedClient("Rina Putri", "rina@example.com", nil)
		req := s.createRequest()
		code := referrer.ReferralCode
		req.ReferralCode = &code

		view := s.create(req)

		s.Equal(string(pricing.DiscountReferral), view.Price.DiscountReason)
		s.Equal(int64(expectedSubtotal-25000), view.Price.FinalPrice)
		s.True(view.Price.ReferralApplied)
		s.Equal(referrer.ReferralCode, s.clientByEmail("dewi@example.com").ReferredBy)
	})

	s.Run("referral is not reapplied while the first booking is pending", func() {
		rina := s.seedClient("Rina Putri", "rina@example.com", nil)
		budi := s.seedClient("Budi Santoso", "budi@example.com", nil)

		first := s.createRequest()
		rinaCode := rina.ReferralCode
		first.ReferralCode = &rinaCode
		s.Require().True(s.create(first).Price.ReferralApplied)

		second := s.createRequest()
		budiCode := budi.ReferralCode
		second.ReferralCode = &budiCode
		view := s.create(second)

		s.False(view.Price.ReferralApplied)
		s.Zero(view.Price.DiscountAmount)
		s.Equal(int64(expectedSubtotal), view.Price.FinalPrice)
		s.Equal(rina.ReferralCode, s.clientByEmail("dewi@example.com").ReferredBy)

		again := s.createRequest()
		again.ReferralCode = &rinaCode
		s.False(s.create(again).Price.ReferralApplied)
	})

	s.Run("success: promo takes precedence over referral", func() {
		referrer := s.seedClient("Rina Putri", "rina@example.com", nil)
		s.store.seed(func(st *memState) {
			st.promos["SPRING10"] = pricing.Promo{Code: "SPRING10", Percentage: decimal.NewFromInt(10), Active: true}
		})
		req := s.createRequest()
		promo, code := "spring10", referrer.ReferralCode
		req.PromoCode, req.ReferralCode = &promo, &code

		view := s.create(req)

		s.Equal(string(pricing.DiscountPromo), view.Price.DiscountReason)
		s.Equal(int64(70000), view.Price.DiscountAmount)
		s.False(view.Price.ReferralApplied)
		s.Empty(s.clientByEmail("dewi@example.com").ReferredBy)
	})

	s.Run("success: unknown codes fall through to no discount", func() {
		req := s.createRequest()
		promo, code := "NOPE99", "GHOST123"
		req.PromoCode, req.ReferralCode = &promo, &code

		view := s.create(req)

		s.Empty(view.Price.DiscountReason)
		s.Equal(int64(expectedSubtotal), view.Price.FinalPrice)
	})

	s.Run("success: redeems points from a returning client", func() {
		s.seedClient("Dewi Lestari", "dewi@example.com", func(r *client.Record) {
			r.TotalBookings = 1
			r.Points = 1000
		})
		req := s.createRequest()
		req.RedeemPoints = true

		view := s.create(req)

		s.Equal(int64(1000), view.Price.PointsRedeemed)
		s.Equal(int64(expectedSubtotal-100000), view.Price.FinalPrice)
		s.Zero(s.clientByEmail("dewi@example.com").Points)
	})

	s.Run("error: schedule in the past", func() {
		req := s.createRequest()
		req.ScheduledAt = s.now.Add(-time.Hour)

		_, err := s.cmds.CreateBooking(s.ctx, req, nil, nil)

		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.Empty(s.store.snapshot().bookings)
	})

	s.Run("error: inactive sub-package", func() {
		s.store.seed(func(st *memState) {
			snap := st.subPackages[s.subPackageID]
			snap.SubPackage.Active = false
			st.subPackages[s.subPackageID] = snap
		})

		_, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, nil)

		s.True(errs.Is(err, errs.ErrCatalogItemUnavailable))
		st := s.store.snapshot()
		s.Empty(st.bookings)
		s.Empty(st.clients)
		s.Empty(s.notifier.types())
	})

	s.Run("error: sub-package from another package", func() {
		req := s.createRequest()
		req.PackageID = uuid.New()

		_, err := s.cmds.CreateBooking(s.ctx, req, nil, nil)

		s.True(errs.Is(err, errs.ErrCatalogItemUnavailable))
	})

	s.Run("error: unknown add-on", func() {
		req := s.createRequest()
		req.AddOnIDs = append(req.AddOnIDs, uuid.New())

		_, err := s.cmds.CreateBooking(s.ctx, req, nil, nil)

		s.True(errs.Is(err, errs.ErrCatalogItemUnavailable))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingIdempotency() {
	s.Run("success: replays the first result for the same key", func() {
		key := uuid.New()

		first, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, &key)
		s.Require().NoError(err)
		second, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, &key)
		s.Require().NoError(err)

		s.False(first.IsReplayed)
		s.True(second.IsReplayed)
		s.Equal(first.Booking.ID, second.Booking.ID)
		s.Len(s.store.snapshot().bookings, 1)
		s.Equal(1, countEvents(s.notifier.types(), shared.EventBookingCreated))
	})

	s.Run("error: same key with a different body", func() {
		key := uuid.New()
		_, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, &key)
		s.Require().NoError(err)

		req := s.createRequest()
		req.Participants = 2
		_, err = s.cmds.CreateBooking(s.ctx, req, nil, &key)

		s.True(errs.Is(err, errs.ErrIdempotencyConflict))
		s.Len(s.store.snapshot().bookings, 1)
	})

	s.Run("error: key held by another request", func() {
		key := uuid.New()
		s.store.seed(func(st *memState) {
			st.idempotency[key] = shared.IdempotencyRecord{
				Key:         key,
				Status:      shared.IdempotencyProcessing,
				RequestHash: "other",
				ExpiresAt:   s.now.Add(time.Hour),
			}
		})

		_, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, &key)

		s.True(errs.Is(err, errs.ErrIdempotencyConflict))
		s.Empty(s.store.snapshot().bookings)
	})

	s.Run("success: expired key is claimed again", func() {
		key := uuid.New()
		s.store.seed(func(st *memState) {
			st.idempotency[key] = shared.IdempotencyRecord{
				Key:         key,
				Status:      shared.IdempotencyProcessing,
				RequestHash: "stale",
				ExpiresAt:   s.now.Add(-time.Minute),
			}
		})

		res, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), nil, &key)

		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.Equal(shared.IdempotencyCompleted, s.store.snapshot().idempotency[key].Status)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingCompensation() {
	s.Run("failed insert deletes the stored proof and releases the key", func() {
		key := uuid.New()
		proof := &commands.ProofUpload{FileName: "receipt.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
		s.store.failBookingCreate = errors.New("insert failed")

		_, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), proof, &key)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.Zero(s.blobs.count())
		s.Len(s.blobs.deleted, 1)
		st := s.store.snapshot()
		s.Empty(st.bookings)
		s.Empty(st.clients)
		s.Empty(st.idempotency)
		s.Empty(s.notifier.types())

		s.store.failBookingCreate = nil
		res, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), proof, &key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.Equal(1, s.blobs.count())
	})

	s.Run("blob store failure releases the key", func() {
		key := uuid.New()
		s.blobs.putErr = errors.New("disk full")
		proof := &commands.ProofUpload{FileName: "receipt.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}

		_, err := s.cmds.CreateBooking(s.ctx, s.createRequest(), proof, &key)

		s.True(errs.Is(err, errs.ErrBlobStoreFailed))
		st := s.store.snapshot()
		s.Empty(st.idempotency)
		s.Empty(st.bookings)
	})
}

func (s *BookingCommandsTestSuite) TestCompleteBooking() {
	s.Run("success: settles the balance and credits the client", func() {
		confirmed := s.createConfirmed(s.createRequest(), 200000)
		s.Equal(booking.PaymentPartial.String(), confirmed.PaymentStatus)

		view, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted.String(), view.Status)
		s.Equal(booking.PaymentPaid.String(), view.PaymentStatus)
		s.Equal(int64(expectedSubtotal), view.AmountPaid)
		s.Zero(view.RemainingBalance)
		s.Equal(deliveryLink, view.DeliveryLink)

		c := s.clientByEmail("dewi@example.com")
		s.Equal(1, c.TotalBookings)
		s.Equal(int64(expectedSubtotal), c.TotalSpent)
		s.Equal(int64(700), c.Points)
		s.NotNil(c.LastBookingAt)

		st := s.store.snapshot()
		s.Require().Len(st.ledger, 1)
		s.Equal(ledger.TypeIncome, st.ledger[0].Type())
		s.Equal(int64(500000), st.ledger[0].Amount())
		s.Equal(confirmed.ID, *st.ledger[0].BookingID())
		s.Equal(1, countEvents(s.notifier.types(), shared.EventBookingCompleted))
	})

	s.Run("success: fully paid booking writes no income entry", func() {
		confirmed := s.createConfirmed(s.createRequest(), expectedSubtotal)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.Require().NoError(err)
		s.Empty(s.store.snapshot().ledger)
		s.Equal(int64(700), s.clientByEmail("dewi@example.com").Points)
	})

	s.Run("success: completing twice changes nothing", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)
		s.Require().NoError(err)
		view, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, "https://other.example.com/x", s.staffID)
		s.Require().NoError(err)

		s.Equal(deliveryLink, view.DeliveryLink)
		c := s.clientByEmail("dewi@example.com")
		s.Equal(1, c.TotalBookings)
		s.Equal(int64(700), c.Points)
		s.Len(s.store.snapshot().ledger, 1)
		s.Equal(1, countEvents(s.notifier.types(), shared.EventBookingCompleted))
	})

	s.Run("success: concurrent completions settle exactly once", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)

		const workers = 8
		var wg sync.WaitGroup
		errCh := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			s.NoError(err)
		}
		c := s.clientByEmail("dewi@example.com")
		s.Equal(1, c.TotalBookings)
		s.Equal(int64(expectedSubtotal), c.TotalSpent)
		s.Equal(int64(700), c.Points)
		s.Len(s.store.snapshot().ledger, 1)
		s.Equal(1, countEvents(s.notifier.types(), shared.EventBookingCompleted))
	})

	s.Run("success: referral bonus goes to both clients", func() {
		referrer := s.seedClient("Rina Putri", "rina@example.com", nil)
		req := s.createRequest()
		code := referrer.ReferralCode
		req.ReferralCode = &code
		confirmed := s.createConfirmed(req, 0)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.Require().NoError(err)
		// 675000 × 0.001 earned plus the 50 point bonus
		s.Equal(int64(725), s.clientByEmail("dewi@example.com").Points)
		s.Equal(int64(50), s.clientByEmail("rina@example.com").Points)
	})

	s.Run("second booking with another code credits nobody", func() {
		rina := s.seedClient("Rina Putri", "rina@example.com", nil)
		budi := s.seedClient("Budi Santoso", "budi@example.com", nil)

		first := s.createRequest()
		rinaCode := rina.ReferralCode
		first.ReferralCode = &rinaCode
		s.create(first)

		second := s.createRequest()
		budiCode := budi.ReferralCode
		second.ReferralCode = &budiCode
		confirmed := s.createConfirmed(second, 0)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.Require().NoError(err)
		s.Equal(int64(700), s.clientByEmail("dewi@example.com").Points)
		s.Zero(s.clientByEmail("budi@example.com").Points)
		s.Zero(s.clientByEmail("rina@example.com").Points)
		s.Equal(rina.ReferralCode, s.clientByEmail("dewi@example.com").ReferredBy)
	})

	s.Run("success: missing referrer is recorded and skipped", func() {
		referrer := s.seedClient("Rina Putri", "rina@example.com", nil)
		req := s.createRequest()
		code := referrer.ReferralCode
		req.ReferralCode = &code
		confirmed := s.createConfirmed(req, 0)
		s.store.seed(func(st *memState) { delete(st.clients, referrer.ID) })

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.Require().NoError(err)
		s.Equal(int64(725), s.clientByEmail("dewi@example.com").Points)
		var actions []string
		for _, a := range s.store.snapshot().activity {
			actions = append(actions, a.Action)
		}
		s.Contains(actions, shared.ActivityReferrerMissing)
		s.Contains(actions, shared.ActivityBookingCompleted)
	})

	s.Run("error: pending booking cannot be completed", func() {
		created := s.create(s.createRequest())

		_, err := s.cmds.CompleteBooking(s.ctx, created.ID, deliveryLink, s.staffID)

		s.ErrorIs(err, booking.ErrInvalidTransition)
		s.Zero(s.clientByEmail("dewi@example.com").Points)
	})

	s.Run("error: intern may not settle", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.internID)

		s.True(errs.Is(err, errs.ErrForbidden))
		s.Equal(booking.StatusConfirmed, s.store.snapshot().bookings[confirmed.ID].Status)
	})

	s.Run("error: deactivated staff may not settle", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)
		s.store.seed(func(st *memState) {
			u := st.users[s.staffID]
			u.IsActive = false
			st.users[s.staffID] = u
		})

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: delivery link must be an http url", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)

		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, "ftp://files.example.com/a", s.staffID)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: unknown booking", func() {
		_, err := s.cmds.CompleteBooking(s.ctx, uuid.New(), deliveryLink, s.staffID)

		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestReschedule() {
	newDate := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success: approved request moves the session", func() {
		confirmed := s.createConfirmed(s.createRequest(), 100000)

		status, err := s.cmds.RequestReschedule(s.ctx, confirmed.Code, newDate, "rain forecast")
		s.Require().NoError(err)
		s.Equal(booking.StatusRescheduleRequested.String(), status.Status)
		s.Require().NotNil(status.RequestedAt)

		view, err := s.cmds.ResolveReschedule(s.ctx, confirmed.ID, true, s.staffID)
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed.String(), view.Status)
		s.True(newDate.Equal(view.ScheduledAt))
		s.Nil(view.RequestedAt)
	})

	s.Run("success: rejected request keeps the schedule", func() {
		confirmed := s.createConfirmed(s.createRequest(), 100000)
		_, err := s.cmds.RequestReschedule(s.ctx, confirmed.Code, newDate, "")
		s.Require().NoError(err)

		view, err := s.cmds.ResolveReschedule(s.ctx, confirmed.ID, false, s.staffID)

		s.Require().NoError(err)
		s.True(confirmed.ScheduledAt.Equal(view.ScheduledAt))
	})

	s.Run("error: pending booking cannot request a reschedule", func() {
		created := s.create(s.createRequest())

		_, err := s.cmds.RequestReschedule(s.ctx, created.Code, newDate, "")

		s.ErrorIs(err, booking.ErrInvalidTransition)
	})

	s.Run("error: malformed code reads as not found", func() {
		_, err := s.cmds.RequestReschedule(s.ctx, "not-a-code", newDate, "")

		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})

	s.Run("error: new date in the past", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)

		_, err := s.cmds.RequestReschedule(s.ctx, confirmed.Code, s.now.Add(-time.Hour), "")

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("success: redeemed points are not returned", func() {
		s.seedClient("Dewi Lestari", "dewi@example.com", func(r *client.Record) {
			r.TotalBookings = 1
			r.Points = 1000
		})
		req := s.createRequest()
		req.RedeemPoints = true
		created := s.create(req)

		view, err := s.cmds.CancelBooking(s.ctx, created.ID, " client request ", s.staffID)

		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled.String(), view.Status)
		s.Zero(s.clientByEmail("dewi@example.com").Points)
		s.Equal("client request", s.store.snapshot().bookings[created.ID].CancelReason)
		s.Equal(1, countEvents(s.notifier.types(), shared.EventBookingCancelled))
	})

	s.Run("error: completed booking cannot be cancelled", func() {
		confirmed := s.createConfirmed(s.createRequest(), 0)
		_, err := s.cmds.CompleteBooking(s.ctx, confirmed.ID, deliveryLink, s.staffID)
		s.Require().NoError(err)

		_, err = s.cmds.CancelBooking(s.ctx, confirmed.ID, "", s.staffID)

		s.ErrorIs(err, booking.ErrInvalidTransition)
	})

	s.Run("error: negative amount paid on confirm", func() {
		created := s.create(s.createRequest())

		_, err := s.cmds.ConfirmBooking(s.ctx, created.ID, -1, s.staffID)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}
