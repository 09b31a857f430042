package httperr

import (
	"net/http"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the response and keeps err on the gin context so the
// logging middleware records the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
	detail bool
}

// Order matters: a validation mark on a not-found error must still be 404.
var mappings = []mapping{
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found", false},
	{errs.ErrClientNotFound, http.StatusNotFound, "Client not found", false},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden", false},
	{booking.ErrInvalidTransition, http.StatusConflict, "Booking status does not allow this action", false},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is still processing", false},
	{errs.ErrIdempotencyConflict, http.StatusConflict, "Idempotency key was used with a different request", false},
	{errs.ErrCatalogItemUnavailable, http.StatusUnprocessableEntity, "Selected package or add-on is unavailable", true},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed", true},
	{errs.ErrBlobStoreFailed, http.StatusInternalServerError, "Failed to store payment proof", false},
}

// Classify maps a usecase error to a status and public message. Unknown
// errors are 500 with a generic message.
func Classify(err error) (int, string, any) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.detail {
				detail = err.Error()
			}
			return m.status, m.msg, detail
		}
	}
	return http.StatusInternalServerError, "Internal server error", nil
}

func AbortWithUsecaseError(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}
