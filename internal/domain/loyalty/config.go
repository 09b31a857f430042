package loyalty

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidConfig    = errors.New("invalid loyalty configuration")
	ErrAlreadySettled   = errors.New("booking already settled")
	ErrNotSettleable    = errors.New("booking is not in a settleable state")
	ErrClientMismatch   = errors.New("booking does not belong to client")
	ErrDuplicateTierKey = errors.New("duplicate tier threshold")
)

// Tier is a booking-count threshold with its discount.
type Tier struct {
	Name            string          `json:"name"`
	Threshold       int             `json:"threshold"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// Config is the system-wide loyalty configuration. It is read once per request
// and passed explicitly to pricing and settlement.
type Config struct {
	PointsPerCurrencyUnit decimal.Decimal `json:"pointsPerCurrencyUnit"`
	RupiahPerPoint        int64           `json:"rupiahPerPoint"`
	ReferralBonusPoints   int64           `json:"referralBonusPoints"`
	ReferralDiscount      int64           `json:"referralDiscount"`
	Tiers                 []Tier          `json:"tiers"`
}

func DefaultConfig() Config {
	return Config{
		PointsPerCurrencyUnit: decimal.RequireFromString("0.001"),
		RupiahPerPoint:        100,
		ReferralBonusPoints:   50,
		ReferralDiscount:      25000,
		Tiers: []Tier{
			{Name: "Silver", Threshold: 3, DiscountPercent: decimal.NewFromInt(3)},
			{Name: "Gold", Threshold: 5, DiscountPercent: decimal.NewFromInt(5)},
			{Name: "Platinum", Threshold: 10, DiscountPercent: decimal.NewFromInt(10)},
		},
	}
}

func (c Config) Validate() error {
	if c.PointsPerCurrencyUnit.IsNegative() {
		return ErrInvalidConfig
	}
	if c.RupiahPerPoint < 0 || c.ReferralBonusPoints < 0 || c.ReferralDiscount < 0 {
		return ErrInvalidConfig
	}
	seen := make(map[int]struct{}, len(c.Tiers))
	for _, t := range c.Tiers {
		if t.Name == "" || t.Threshold < 0 || t.DiscountPercent.IsNegative() {
			return ErrInvalidConfig
		}
		if _, dup := seen[t.Threshold]; dup {
			return ErrDuplicateTierKey
		}
		seen[t.Threshold] = struct{}{}
	}
	return nil
}

// SelectTier returns the highest-threshold tier satisfied by bookingCount.
// The input slice is not modified.
func SelectTier(tiers []Tier, bookingCount int) (Tier, bool) {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})
	for _, t := range sorted {
		if bookingCount >= t.Threshold {
			return t, true
		}
	}
	return Tier{}, false
}
