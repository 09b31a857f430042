package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleIntern = "intern"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// PriceBreakdownView mirrors the stored pricing columns of a booking
type PriceBreakdownView struct {
	BasePrice         int64  `json:"base_price"`
	AddOnTotal        int64  `json:"add_on_total"`
	ExtraPersonCharge int64  `json:"extra_person_charge"`
	Subtotal          int64  `json:"subtotal"`
	DiscountAmount    int64  `json:"discount_amount"`
	DiscountReason    string `json:"discount_reason,omitempty"`
	PromoCode         string `json:"promo_code,omitempty"`
	ReferralCode      string `json:"referral_code,omitempty"`
	ReferralApplied   bool   `json:"referral_applied"`
	TierName          string `json:"tier_name,omitempty"`
	PointsRedeemed    int64  `json:"points_redeemed"`
	PointsValue       int64  `json:"points_value"`
	FinalPrice        int64  `json:"final_price"`
}

type BookingAddOnView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type BookingView struct {
	ID               uuid.UUID          `json:"id"`
	Code             string             `json:"code"`
	ClientID         uuid.UUID          `json:"client_id"`
	ClientName       string             `json:"client_name"`
	ClientEmail      string             `json:"client_email"`
	ClientPhone      string             `json:"client_phone,omitempty"`
	ScheduledAt      time.Time          `json:"scheduled_at"`
	PackageID        uuid.UUID          `json:"package_id"`
	PackageName      string             `json:"package_name"`
	SubPackageID     uuid.UUID          `json:"sub_package_id"`
	SubPackageName   string             `json:"sub_package_name"`
	Participants     int                `json:"participants"`
	AddOns           []BookingAddOnView `json:"add_ons"`
	Price            PriceBreakdownView `json:"price"`
	Status           string             `json:"status"`
	PaymentStatus    string             `json:"payment_status"`
	AmountPaid       int64              `json:"amount_paid"`
	RemainingBalance int64              `json:"remaining_balance"`
	PaymentProofURL  string             `json:"payment_proof_url,omitempty"`
	DeliveryLink     string             `json:"delivery_link,omitempty"`
	RequestedAt      *time.Time         `json:"requested_at,omitempty"`
	RescheduleNote   string             `json:"reschedule_note,omitempty"`
	CancelReason     string             `json:"cancel_reason,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// BookingStatusView is what the public code lookup exposes
type BookingStatusView struct {
	Code             string     `json:"code"`
	ClientName       string     `json:"client_name"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	PackageName      string     `json:"package_name"`
	SubPackageName   string     `json:"sub_package_name"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	FinalPrice       int64      `json:"final_price"`
	RemainingBalance int64      `json:"remaining_balance"`
	RequestedAt      *time.Time `json:"requested_at,omitempty"`
	DeliveryLink     string     `json:"delivery_link,omitempty"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	PackageName   string    `json:"package_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	FinalPrice    int64     `json:"final_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type ClientView struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	TotalBookings int        `json:"total_bookings"`
	TotalSpent    int64      `json:"total_spent"`
	LoyaltyPoints int64      `json:"loyalty_points"`
	TierName      string     `json:"tier_name,omitempty"`
	ReferralCode  string     `json:"referral_code"`
	ReferredBy    string     `json:"referred_by,omitempty"`
	LastBookingAt *time.Time `json:"last_booking_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type TransactionView struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SubPackageView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
}

type PackageView struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	IsGroup       bool             `json:"is_group"`
	PerPersonRate int64            `json:"per_person_rate"`
	SubPackages   []SubPackageView `json:"sub_packages"`
}

type AddOnView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type CatalogView struct {
	Packages []PackageView `json:"packages"`
	AddOns   []AddOnView   `json:"add_ons"`
}

type FileView struct {
	ID          uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}
