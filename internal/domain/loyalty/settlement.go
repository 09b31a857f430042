package loyalty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementInput is the part of a booking the ledger updater needs.
type SettlementInput struct {
	BookingID        uuid.UUID
	BookingCode      string
	FinalPrice       int64
	RemainingBalance int64
	ReferralApplied  bool
	ReferralCode     string
	Completed        bool
}

// Account is the loyalty state of a client before settlement.
type Account struct {
	TotalBookings int
	TotalSpent    int64
	Points        int64
	TierName      string
}

type ClientDelta struct {
	PointsEarned  int64
	ReferralBonus int64
	TotalBookings int
	TotalSpent    int64
	NewTier       string
	TierChanged   bool
	LastBookingAt time.Time
}

// PointsAdded is everything credited to the client by this settlement.
func (d ClientDelta) PointsAdded() int64 {
	return d.PointsEarned + d.ReferralBonus
}

type ReferrerDelta struct {
	ReferralCode string
	BonusPoints  int64
}

type LedgerEntry struct {
	BookingID   uuid.UUID
	Amount      int64
	Description string
}

type Settlement struct {
	Client   ClientDelta
	Referrer *ReferrerDelta
	Ledger   *LedgerEntry
}

// ApplySettlement computes the effects of completing a booking. It performs no
// I/O; the caller persists every part of the result or none of it.
func ApplySettlement(in SettlementInput, acct Account, cfg Config, now time.Time) (Settlement, error) {
	if in.Completed {
		return Settlement{}, ErrAlreadySettled
	}

	earned := PointsFor(in.FinalPrice, cfg)

	var (
		bonus    int64
		referrer *ReferrerDelta
	)
	if in.ReferralApplied && in.ReferralCode != "" && acct.TotalBookings == 0 && cfg.ReferralBonusPoints > 0 {
		// Both the referrer and the referred client receive the bonus.
		bonus = cfg.ReferralBonusPoints
		referrer = &ReferrerDelta{ReferralCode: in.ReferralCode, BonusPoints: cfg.ReferralBonusPoints}
	}

	newTotal := acct.TotalBookings + 1
	newTier := ""
	if t, ok := SelectTier(cfg.Tiers, newTotal); ok {
		newTier = t.Name
	}

	s := Settlement{
		Client: ClientDelta{
			PointsEarned:  earned,
			ReferralBonus: bonus,
			TotalBookings: newTotal,
			TotalSpent:    acct.TotalSpent + in.FinalPrice,
			NewTier:       newTier,
			TierChanged:   newTier != acct.TierName,
			LastBookingAt: now,
		},
		Referrer: referrer,
	}

	if in.RemainingBalance > 0 {
		s.Ledger = &LedgerEntry{
			BookingID:   in.BookingID,
			Amount:      in.RemainingBalance,
			Description: "Settlement for booking " + in.BookingCode,
		}
	}
	return s, nil
}

// PointsFor returns floor(amount × pointsPerCurrencyUnit), never negative.
func PointsFor(amount int64, cfg Config) int64 {
	if amount <= 0 || !cfg.PointsPerCurrencyUnit.IsPositive() {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(cfg.PointsPerCurrencyUnit).Floor().IntPart()
}
