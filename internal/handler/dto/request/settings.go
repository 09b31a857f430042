package request

import (
	"strings"

	"studio-booking/internal/domain/loyalty"

	"github.com/shopspring/decimal"
)

type LoyaltyTierRequest struct {
	Name            string          `json:"name" binding:"required,max=40"`
	Threshold       int             `json:"threshold" binding:"min=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type UpdateLoyaltySettingsRequest struct {
	PointsPerCurrencyUnit decimal.Decimal      `json:"points_per_currency_unit"`
	RupiahPerPoint        int64                `json:"rupiah_per_point" binding:"min=0"`
	ReferralBonusPoints   int64                `json:"referral_bonus_points" binding:"min=0"`
	ReferralDiscount      int64                `json:"referral_discount" binding:"min=0"`
	Tiers                 []LoyaltyTierRequest `json:"tiers" binding:"max=20,dive"`
}

func (r UpdateLoyaltySettingsRequest) ToDomain() (loyalty.Config, error) {
	cfg := loyalty.Config{
		PointsPerCurrencyUnit: r.PointsPerCurrencyUnit,
		RupiahPerPoint:        r.RupiahPerPoint,
		ReferralBonusPoints:   r.ReferralBonusPoints,
		ReferralDiscount:      r.ReferralDiscount,
		Tiers:                 make([]loyalty.Tier, len(r.Tiers)),
	}
	for i, t := range r.Tiers {
		cfg.Tiers[i] = loyalty.Tier{
			Name:            strings.TrimSpace(t.Name),
			Threshold:       t.Threshold,
			DiscountPercent: t.DiscountPercent,
		}
	}
	if err := cfg.Validate(); err != nil {
		return loyalty.Config{}, err
	}
	return cfg, nil
}
