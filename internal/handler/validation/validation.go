// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"regexp"
	"strings"
	"sync"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{2,31}$`)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the tags on gin's validator. It is safe to call more
// than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("booking_code", validateBookingCode); err != nil {
		return errs.Wrap(err, "register booking_code")
	}
	if err := v.RegisterValidation("promo_code", validatePromoCode); err != nil {
		return errs.Wrap(err, "register promo_code")
	}
	return nil
}

// Codes are matched case-insensitively.
func validateBookingCode(fl validator.FieldLevel) bool {
	_, err := booking.ParseCode(fl.Field().String())
	return err == nil
}

func validatePromoCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	if code == "" {
		return true
	}
	return promoCodeRegex.MatchString(code)
}
