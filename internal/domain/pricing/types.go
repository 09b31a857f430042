package pricing

import (
	"github.com/shopspring/decimal"
)

// DiscountReason names which of the mutually exclusive discounts applied.
type DiscountReason string

const (
	DiscountNone     DiscountReason = ""
	DiscountPromo    DiscountReason = "promo"
	DiscountReferral DiscountReason = "referral"
	DiscountTier     DiscountReason = "tier"
)

// Package is the priced part of a catalog selection.
type Package struct {
	IsGroup         bool
	PerPersonRate   int64
	SubPackagePrice int64
}

type Selection struct {
	Package      Package
	AddOnPrices  []int64
	Participants int
}

// Promo is a promo code resolved by the caller. Nil means no code matched.
type Promo struct {
	Code       string
	Percentage decimal.Decimal
	Active     bool
}

// Referrer is the client owning a supplied referral code.
type Referrer struct {
	ClientEmail  string
	ReferralCode string
}

type DiscountInputs struct {
	Promo        *Promo
	ReferralCode string
	Referrer     *Referrer
	RedeemPoints bool
	// PointsToRedeem caps redemption when positive; zero means the whole balance.
	PointsToRedeem int64
}

type ClientHistory struct {
	Email        string
	BookingCount int
	PointBalance int64
	OwnReferral  string
	// ReferredBy is set once a referral code has been accepted on any booking.
	ReferredBy string
}

func (h ClientHistory) IsFirstBooking() bool {
	return h.BookingCount == 0
}

type Breakdown struct {
	BasePrice         int64
	AddOnTotal        int64
	ExtraPersonCharge int64
	Subtotal          int64
	DiscountAmount    int64
	DiscountReason    DiscountReason
	PromoCode         string
	ReferralCode      string
	ReferralApplied   bool
	TierName          string
	PointsRedeemed    int64
	PointsValue       int64
	FinalPrice        int64
}
