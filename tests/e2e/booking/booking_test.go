//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/domain/user"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/tests/common/authtest"
	"studio-booking/tests/common/dbtest"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	adminURL    = "/api/admin"

	participants     = 4
	expectedSubtotal = int64(700000)
	deliveryLink     = "https://drive.example.com/gallery/abc"
)

type bookingSuite struct {
	e2e.SharedSuite
	catalog    dbtest.CatalogFixture
	staffToken string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.catalog = dbtest.CreateTestCatalog(t, s.DB)
	s.staffToken = authtest.CreateAndLogin(t, s.DB, s.Router, "staff@studio.test", string(user.RoleStaff))
}

func (s *bookingSuite) createRequest(email string, mutate ...func(*reqdto.CreateBookingRequest)) reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ClientName:   "Dewi Lestari",
		ClientEmail:  email,
		ScheduledAt:  time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second),
		PackageID:    s.catalog.PackageID,
		SubPackageID: s.catalog.SubPackageID,
		AddOnIDs:     []uuid.UUID{s.catalog.AddOnID},
		Participants: participants,
	}
	for _, m := range mutate {
		m(&req)
	}
	return req
}

func (s *bookingSuite) create(t *testing.T, req reqdto.CreateBookingRequest, key uuid.UUID) (*resdto.CreateBookingResponse, int) {
	t.Helper()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, req,
		map[string]string{"Idempotency-Key": key.String()})
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, w.Body.String())

	var res resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, w.Code, &res)
	return &res, w.Code
}

func (s *bookingSuite) bookingID(t *testing.T, code string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := s.DB.QueryRow(t.Context(), "SELECT id FROM bookings WHERE code = $1", code).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *bookingSuite) admin(t *testing.T, path string, body any) *resdto.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+path, body, s.staffToken)
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *bookingSuite) confirm(t *testing.T, id uuid.UUID, amount int64) *resdto.BookingResponse {
	t.Helper()
	return s.admin(t, "/bookings/"+id.String()+"/confirm", reqdto.ConfirmBookingRequest{AmountPaid: &amount})
}

func (s *bookingSuite) client(t *testing.T, email string) *resdto.ClientResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/clients/"+email, nil, s.staffToken)
	var res resdto.ClientResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *bookingSuite) incomeFor(t *testing.T, id uuid.UUID) (count int, total int64) {
	t.Helper()
	err := s.DB.QueryRow(t.Context(),
		"SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM transactions WHERE booking_id = $1 AND type = 'income'", id).
		Scan(&count, &total)
	require.NoError(t, err)
	return count, total
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("create confirm complete settles once", func() {
		t := s.T()
		email := "dewi@example.com"
		key := uuid.New()

		created, status := s.create(t, s.createRequest(email), key)
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, expectedSubtotal, created.Price.Subtotal)
		require.Equal(t, expectedSubtotal, created.Price.FinalPrice)

		replayed, status := s.create(t, s.createRequest(email), key)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, created.BookingCode, replayed.BookingCode)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/code/"+created.BookingCode, nil, "")
		var lookup resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &lookup)
		require.Equal(t, "pending", lookup.Status)

		id := s.bookingID(t, created.BookingCode)
		confirmed := s.confirm(t, id, 200000)
		require.Equal(t, "confirmed", confirmed.Status)
		require.Equal(t, "partial", confirmed.PaymentStatus)
		require.Equal(t, int64(500000), confirmed.RemainingBalance)

		completed := s.admin(t, "/bookings/"+id.String()+"/complete", reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink})
		require.Equal(t, "completed", completed.Status)
		require.Equal(t, "paid", completed.PaymentStatus)
		require.Zero(t, completed.RemainingBalance)
		require.Equal(t, deliveryLink, completed.DeliveryLink)

		again := s.admin(t, "/bookings/"+id.String()+"/complete", reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink})
		require.Equal(t, "completed", again.Status)

		count, total := s.incomeFor(t, id)
		require.Equal(t, 1, count)
		require.Equal(t, int64(500000), total)

		c := s.client(t, email)
		require.Equal(t, 1, c.TotalBookings)
		require.Equal(t, expectedSubtotal, c.TotalSpent)
		require.Equal(t, int64(700), c.LoyaltyPoints)
	})

	s.Run("pending booking cannot be completed", func() {
		t := s.T()
		created, _ := s.create(t, s.createRequest("pending@example.com"), uuid.New())
		id := s.bookingID(t, created.BookingCode)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/bookings/"+id.String()+"/complete",
			reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink}, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Booking status does not allow this action")
	})

	s.Run("intern cannot complete", func() {
		t := s.T()
		created, _ := s.create(t, s.createRequest("intern-case@example.com"), uuid.New())
		id := s.bookingID(t, created.BookingCode)
		s.confirm(t, id, 0)

		internToken := authtest.CreateAndLogin(t, s.DB, s.Router, "intern@studio.test", string(user.RoleIntern))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/bookings/"+id.String()+"/complete",
			reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink}, internToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		count, _ := s.incomeFor(t, id)
		require.Zero(t, count)
	})
}

func (s *bookingSuite) TestReferral() {
	s.Run("both clients earn the bonus", func() {
		t := s.T()
		referrerEmail := "referrer@example.com"
		referredEmail := "referred@example.com"

		first, _ := s.create(t, s.createRequest(referrerEmail), uuid.New())
		firstID := s.bookingID(t, first.BookingCode)
		s.confirm(t, firstID, expectedSubtotal)
		s.admin(t, "/bookings/"+firstID.String()+"/complete", reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink})
		referralCode := s.client(t, referrerEmail).ReferralCode
		require.NotEmpty(t, referralCode)

		second, _ := s.create(t, s.createRequest(referredEmail, func(r *reqdto.CreateBookingRequest) {
			r.ReferralCode = &referralCode
		}), uuid.New())
		require.Equal(t, referralCode, second.Price.ReferralCode)
		require.Equal(t, int64(25000), second.Price.DiscountAmount)
		require.Equal(t, expectedSubtotal-25000, second.Price.FinalPrice)

		secondID := s.bookingID(t, second.BookingCode)
		s.confirm(t, secondID, 0)
		s.admin(t, "/bookings/"+secondID.String()+"/complete", reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink})

		require.Equal(t, int64(725), s.client(t, referredEmail).LoyaltyPoints)
		require.Equal(t, int64(750), s.client(t, referrerEmail).LoyaltyPoints)
	})
}

func (s *bookingSuite) TestConcurrentCompletion() {
	s.Run("only one settlement is applied", func() {
		t := s.T()
		email := "race@example.com"
		created, _ := s.create(t, s.createRequest(email), uuid.New())
		id := s.bookingID(t, created.BookingCode)
		s.confirm(t, id, 0)

		const workers = 4
		statuses := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/bookings/"+id.String()+"/complete",
					reqdto.CompleteBookingRequest{DeliveryLink: deliveryLink}, s.staffToken)
				statuses[i] = w.Code
			}()
		}
		wg.Wait()

		for _, code := range statuses {
			require.Equal(t, http.StatusOK, code)
		}

		count, total := s.incomeFor(t, id)
		require.Equal(t, 1, count)
		require.Equal(t, expectedSubtotal, total)

		c := s.client(t, email)
		require.Equal(t, 1, c.TotalBookings)
		require.Equal(t, int64(700), c.LoyaltyPoints)
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("cancelled booking has no settlement", func() {
		t := s.T()
		created, _ := s.create(t, s.createRequest("cancel@example.com"), uuid.New())
		id := s.bookingID(t, created.BookingCode)

		cancelled := s.admin(t, "/bookings/"+id.String()+"/cancel", reqdto.CancelBookingRequest{Reason: "client request"})
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, "client request", cancelled.CancelReason)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/bookings/"+id.String()+"/confirm",
			map[string]any{"amount_paid": 0}, s.staffToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
