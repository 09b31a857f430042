package response

import (
	"studio-booking/internal/domain/loyalty"
)

type LoyaltyTierResponse struct {
	Name            string `json:"name"`
	Threshold       int    `json:"threshold"`
	DiscountPercent string `json:"discount_percent"`
}

type LoyaltySettingsResponse struct {
	PointsPerCurrencyUnit string                `json:"points_per_currency_unit"`
	RupiahPerPoint        int64                 `json:"rupiah_per_point"`
	ReferralDiscount      int64                 `json:"referral_discount"`
	ReferralBonusPoints   int64                 `json:"referral_bonus_points"`
	Tiers                 []LoyaltyTierResponse `json:"tiers"`
}

// Decimals are rendered as strings so no precision is lost in JSON.
func FromLoyaltyConfig(cfg loyalty.Config) *LoyaltySettingsResponse {
	r := &LoyaltySettingsResponse{
		PointsPerCurrencyUnit: cfg.PointsPerCurrencyUnit.String(),
		RupiahPerPoint:        cfg.RupiahPerPoint,
		ReferralDiscount:      cfg.ReferralDiscount,
		ReferralBonusPoints:   cfg.ReferralBonusPoints,
		Tiers:                 make([]LoyaltyTierResponse, len(cfg.Tiers)),
	}
	for i, t := range cfg.Tiers {
		r.Tiers[i] = LoyaltyTierResponse{
			Name:            t.Name,
			Threshold:       t.Threshold,
			DiscountPercent: t.DiscountPercent.String(),
		}
	}
	return r
}
