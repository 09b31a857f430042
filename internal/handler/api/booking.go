package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyHeader = "Idempotency-Key"
	// room for the non-proof fields of a create request
	bookingBodyOverhead = 64 << 10
)

var (
	errInvalidIdempotencyKey = errs.New("invalid idempotency key format")
	errProofTooLarge         = errs.New("payment proof exceeds size limit")
	errMissingActor          = errs.New("user id missing from context")
)

type BookingHandler struct {
	cmds          commands.BookingCommands
	q             queries.BookingQueries
	ledger        queries.LedgerQueries
	maxProofBytes int
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, ledger queries.LedgerQueries, maxProofBytes int) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, ledger: ledger, maxProofBytes: maxProofBytes}
}

// @Summary Create booking
// @Description Submit a booking. The price is computed server side. Repeating a request with the same Idempotency-Key replays the first result.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes())

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		var tooLarge *http.MaxBytesError
		if errs.As(bindErr, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, bindErr, "Request body too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", bindErr.Error())
		return
	}

	proof, err := h.decodeProof(req.PaymentProof)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment proof", err.Error())
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req, proof, key)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.JSON(status, resdto.FromCreatedBooking(result.Booking))
}

// @Summary Booking status by code
// @Description Public status lookup by booking code
// @Tags bookings
// @Produce json
// @Param code path string true "Booking code"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/code/{code} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	var uri reqdto.BookingCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking code", nil)
		return
	}

	view, err := h.q.GetStatusByCode(c.Request.Context(), uri.Code)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatusView(view))
}

// @Summary Request reschedule
// @Description Public reschedule request for a confirmed booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param code path string true "Booking code"
// @Param request body reqdto.RequestRescheduleRequest true "New date"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/code/{code}/reschedule [post]
func (h *BookingHandler) RequestReschedule(c *gin.Context) {
	var uri reqdto.BookingCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking code", nil)
		return
	}
	var req reqdto.RequestRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.cmds.RequestReschedule(c.Request.Context(), uri.Code, req.NewDate, req.Reason)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatusView(view))
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	items, next, err := h.q.List(c.Request.Context(), query.Status, &queries.Cursor{After: query.Cursor}, query.Limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor), errs.Is(err, queries.ErrInvalidStatusFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		default:
			httperr.AbortWithUsecaseError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	txs, err := h.ledger.ListByBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingDetail(view, txs))
}

// @Summary Confirm booking
// @Description Record the verified deposit and confirm a pending booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmBookingRequest true "Amount paid"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.cmds.ConfirmBooking(c.Request.Context(), id, *req.AmountPaid, actorID)
	h.respondView(c, view, err)
}

// @Summary Cancel booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
			return
		}
	}

	view, err := h.cmds.CancelBooking(c.Request.Context(), id, req.Reason, actorID)
	h.respondView(c, view, err)
}

// @Summary Resolve reschedule request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ResolveRescheduleRequest true "Decision"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/reschedule [post]
func (h *BookingHandler) ResolveReschedule(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.ResolveRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.cmds.ResolveReschedule(c.Request.Context(), id, *req.Approve, actorID)
	h.respondView(c, view, err)
}

// @Summary Complete booking
// @Description Settle the remaining balance, credit loyalty points and attach the delivery link. Completing twice is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CompleteBookingRequest true "Delivery link"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.cmds.CompleteBooking(c.Request.Context(), id, req.DeliveryLink, actorID)
	h.respondView(c, view, err)
}

func (h *BookingHandler) respondView(c *gin.Context, view *queries.BookingView, err error) {
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) maxBodyBytes() int64 {
	return int64(base64.StdEncoding.EncodedLen(h.maxProofBytes)) + bookingBodyOverhead
}

func (h *BookingHandler) decodeProof(p *reqdto.PaymentProofUpload) (*commands.ProofUpload, error) {
	if p == nil {
		return nil, nil
	}
	if base64.StdEncoding.DecodedLen(len(p.Data)) > h.maxProofBytes+2 {
		return nil, errProofTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, errs.Wrap(err, "decode payment proof")
	}
	if len(data) > h.maxProofBytes {
		return nil, errProofTooLarge
	}
	return &commands.ProofUpload{
		FileName:    strings.TrimSpace(p.FileName),
		ContentType: p.ContentType,
		Data:        data,
	}, nil
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(idempotencyHeader))
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Mark(err, errInvalidIdempotencyKey)
	}
	return &key, nil
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	var uri reqdto.BookingIDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return uuid.MustParse(uri.ID), true
}

func actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
