package request

import (
	"strings"
	"time"

	"studio-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientName     string              `json:"client_name" binding:"required,max=120"`
	ClientEmail    string              `json:"client_email" binding:"required,email"`
	ClientPhone    *string             `json:"client_phone,omitempty" binding:"omitempty,max=32"`
	ScheduledAt    time.Time           `json:"scheduled_at" binding:"required"`
	PackageID      uuid.UUID           `json:"package_id" binding:"required"`
	SubPackageID   uuid.UUID           `json:"sub_package_id" binding:"required"`
	AddOnIDs       []uuid.UUID         `json:"add_on_ids,omitempty" binding:"omitempty,max=20,dive,required"`
	Participants   int                 `json:"participants" binding:"required,min=1,max=100"`
	PromoCode      *string             `json:"promo_code,omitempty" binding:"omitempty,promo_code"`
	ReferralCode   *string             `json:"referral_code,omitempty" binding:"omitempty,max=16"`
	RedeemPoints   bool                `json:"redeem_points"`
	PointsToRedeem *int64              `json:"points_to_redeem,omitempty" binding:"omitempty,min=0"`
	Notes          *string             `json:"notes,omitempty" binding:"omitempty,max=1000"`
	PaymentProof   *PaymentProofUpload `json:"payment_proof,omitempty"`
}

// PaymentProofUpload carries the proof file as standard base64.
type PaymentProofUpload struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp application/pdf"`
	Data        string `json:"data" binding:"required,base64"`
}

func (r CreateBookingRequest) Phone() string {
	return strings.TrimSpace(patch.Coalesce(r.ClientPhone, ""))
}

func (r CreateBookingRequest) Promo() string {
	return strings.ToUpper(strings.TrimSpace(patch.Coalesce(r.PromoCode, "")))
}

func (r CreateBookingRequest) Referral() string {
	return strings.ToUpper(strings.TrimSpace(patch.Coalesce(r.ReferralCode, "")))
}

func (r CreateBookingRequest) PointsCap() int64 {
	return patch.Coalesce(r.PointsToRedeem, 0)
}

func (r CreateBookingRequest) NoteText() string {
	return strings.TrimSpace(patch.Coalesce(r.Notes, ""))
}

type BookingCodeURI struct {
	Code string `uri:"code" binding:"required,booking_code"`
}

type BookingIDURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type RequestRescheduleRequest struct {
	NewDate time.Time `json:"new_date" binding:"required"`
	Reason  string    `json:"reason" binding:"max=500"`
}

type ConfirmBookingRequest struct {
	AmountPaid *int64 `json:"amount_paid" binding:"required,min=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ResolveRescheduleRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type CompleteBookingRequest struct {
	DeliveryLink string `json:"delivery_link" binding:"required,url,max=2048"`
}

type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed reschedule_requested completed cancelled"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type ListTransactionsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
