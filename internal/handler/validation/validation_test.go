//go:build unit

package validation_test

import (
	"testing"

	"studio-booking/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeInput struct {
	Code  string `validate:"booking_code"`
	Promo string `validate:"promo_code"`
}

func TestCustomValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.RegisterOn(v))

	tests := []struct {
		name  string
		input codeInput
		valid bool
	}{
		{"valid codes", codeInput{Code: "SB-ABCD2345", Promo: "WEDDING10"}, true},
		{"lower case booking code", codeInput{Code: "sb-abcd2345", Promo: ""}, true},
		{"ambiguous characters rejected", codeInput{Code: "SB-ABCD0OI1", Promo: ""}, false},
		{"wrong prefix", codeInput{Code: "XX-ABCD2345", Promo: ""}, false},
		{"promo with spaces", codeInput{Code: "SB-ABCD2345", Promo: "NEW YEAR"}, false},
		{"promo too short", codeInput{Code: "SB-ABCD2345", Promo: "AB"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
