package pricing

import (
	"strings"

	"studio-booking/internal/domain/loyalty"

	"github.com/shopspring/decimal"
)

// Participants included in a group package price before surcharges apply.
const baselineParticipants = 2

type Calculator interface {
	Compute(sel Selection, in DiscountInputs, hist ClientHistory, cfg loyalty.Config) Breakdown
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Compute(sel Selection, in DiscountInputs, hist ClientHistory, cfg loyalty.Config) Breakdown {
	return Compute(sel, in, hist, cfg)
}

// Compute prices a selection. It is deterministic and performs no I/O.
// The final price is not clamped at zero.
func Compute(sel Selection, in DiscountInputs, hist ClientHistory, cfg loyalty.Config) Breakdown {
	b := Breakdown{
		BasePrice:         sel.Package.SubPackagePrice,
		AddOnTotal:        sum(sel.AddOnPrices),
		ExtraPersonCharge: extraPersonCharge(sel),
	}
	b.Subtotal = b.BasePrice + b.AddOnTotal + b.ExtraPersonCharge

	applyDiscount(&b, in, hist, cfg)
	applyRedemption(&b, in, hist, cfg)

	b.FinalPrice = b.Subtotal - b.DiscountAmount - b.PointsValue
	return b
}

func extraPersonCharge(sel Selection) int64 {
	if !sel.Package.IsGroup {
		return 0
	}
	extra := sel.Participants - baselineParticipants
	if extra <= 0 {
		return 0
	}
	return int64(extra) * sel.Package.PerPersonRate
}

// applyDiscount resolves promo > referral > tier. Unmatched codes fall through.
func applyDiscount(b *Breakdown, in DiscountInputs, hist ClientHistory, cfg loyalty.Config) {
	if p := in.Promo; p != nil && p.Active && p.Code != "" {
		b.DiscountAmount = percentOf(b.Subtotal, p.Percentage)
		b.DiscountReason = DiscountPromo
		b.PromoCode = p.Code
		return
	}

	if hist.IsFirstBooking() && hist.ReferredBy == "" && referralMatches(in, hist) {
		b.DiscountAmount = cfg.ReferralDiscount
		b.DiscountReason = DiscountReferral
		b.ReferralCode = in.Referrer.ReferralCode
		b.ReferralApplied = true
		return
	}

	if hist.BookingCount > 0 {
		if t, ok := loyalty.SelectTier(cfg.Tiers, hist.BookingCount); ok {
			b.DiscountAmount = percentOf(b.Subtotal, t.DiscountPercent)
			b.DiscountReason = DiscountTier
			b.TierName = t.Name
		}
	}
}

func referralMatches(in DiscountInputs, hist ClientHistory) bool {
	code := strings.TrimSpace(in.ReferralCode)
	if code == "" || in.Referrer == nil {
		return false
	}
	if !strings.EqualFold(in.Referrer.ReferralCode, code) {
		return false
	}
	if hist.OwnReferral != "" && strings.EqualFold(hist.OwnReferral, code) {
		return false
	}
	return !strings.EqualFold(in.Referrer.ClientEmail, hist.Email)
}

func applyRedemption(b *Breakdown, in DiscountInputs, hist ClientHistory, cfg loyalty.Config) {
	if !in.RedeemPoints || hist.PointBalance <= 0 || cfg.RupiahPerPoint <= 0 {
		return
	}

	usable := hist.PointBalance
	if in.PointsToRedeem > 0 && in.PointsToRedeem < usable {
		usable = in.PointsToRedeem
	}

	value := min(b.Subtotal-b.DiscountAmount, usable*cfg.RupiahPerPoint)
	if value <= 0 {
		return
	}

	b.PointsValue = value
	b.PointsRedeemed = decimal.NewFromInt(value).
		Div(decimal.NewFromInt(cfg.RupiahPerPoint)).
		Round(0).
		IntPart()
}

func percentOf(amount int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).
		Mul(pct).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func sum(xs []int64) int64 {
	var total int64
	for _, x := range xs {
		total += x
	}
	return total
}
