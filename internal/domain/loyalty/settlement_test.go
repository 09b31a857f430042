//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/loyalty"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func twoTierConfig() loyalty.Config {
	cfg := loyalty.DefaultConfig()
	cfg.Tiers = []loyalty.Tier{
		{Name: "Gold", Threshold: 5, DiscountPercent: decimal.NewFromInt(5)},
		{Name: "Platinum", Threshold: 10, DiscountPercent: decimal.NewFromInt(10)},
	}
	return cfg
}

func TestSelectTier(t *testing.T) {
	tiers := []loyalty.Tier{
		{Name: "Platinum", Threshold: 10, DiscountPercent: decimal.NewFromInt(10)},
		{Name: "Silver", Threshold: 3, DiscountPercent: decimal.NewFromInt(3)},
		{Name: "Gold", Threshold: 5, DiscountPercent: decimal.NewFromInt(5)},
	}

	t.Run("閾値未満は該当なし", func(t *testing.T) {
		_, ok := loyalty.SelectTier(tiers, 2)
		assert.False(t, ok)
	})

	t.Run("満たす中で最も高い閾値を選ぶ", func(t *testing.T) {
		cases := map[int]string{3: "Silver", 4: "Silver", 5: "Gold", 9: "Gold", 10: "Platinum", 50: "Platinum"}
		for count, want := range cases {
			got, ok := loyalty.SelectTier(tiers, count)
			require.True(t, ok, "count=%d", count)
			assert.Equal(t, want, got.Name, "count=%d", count)
		}
	})

	t.Run("入力スライスの順序を変更しない", func(t *testing.T) {
		_, _ = loyalty.SelectTier(tiers, 7)
		assert.Equal(t, "Platinum", tiers[0].Name)
		assert.Equal(t, "Silver", tiers[1].Name)
	})

	t.Run("予約数が増えてもティアは下がらない", func(t *testing.T) {
		prev := -1
		for count := 0; count <= 30; count++ {
			threshold := -1
			if tier, ok := loyalty.SelectTier(tiers, count); ok {
				threshold = tier.Threshold
			}
			assert.GreaterOrEqual(t, threshold, prev, "count=%d", count)
			prev = threshold
		}
	})
}

func TestApplySettlement(t *testing.T) {
	bookingID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		in := loyalty.SettlementInput{
			BookingID:        bookingID,
			BookingCode:      "SB-ABCDEFGH",
			FinalPrice:       250000,
			RemainingBalance: 150000,
		}
		acct := loyalty.Account{TotalBookings: 2, TotalSpent: 400000, Points: 30}

		got, err := loyalty.ApplySettlement(in, acct, loyalty.DefaultConfig(), now)
		require.NoError(t, err)

		want := loyalty.Settlement{
			Client: loyalty.ClientDelta{
				PointsEarned:  250,
				TotalBookings: 3,
				TotalSpent:    650000,
				NewTier:       "Silver",
				TierChanged:   true,
				LastBookingAt: now,
			},
			Ledger: &loyalty.LedgerEntry{
				BookingID:   bookingID,
				Amount:      150000,
				Description: "Settlement for booking SB-ABCDEFGH",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Settlement mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("獲得ポイントは切り捨て", func(t *testing.T) {
		got, err := loyalty.ApplySettlement(loyalty.SettlementInput{FinalPrice: 1999}, loyalty.Account{}, loyalty.DefaultConfig(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Client.PointsEarned)
	})

	t.Run("マイナスの最終金額ではポイントなし", func(t *testing.T) {
		got, err := loyalty.ApplySettlement(loyalty.SettlementInput{FinalPrice: -15000}, loyalty.Account{}, loyalty.DefaultConfig(), now)
		require.NoError(t, err)
		assert.Zero(t, got.Client.PointsEarned)
		assert.Nil(t, got.Ledger)
	})

	t.Run("残額ゼロなら台帳エントリなし", func(t *testing.T) {
		got, err := loyalty.ApplySettlement(loyalty.SettlementInput{FinalPrice: 100000}, loyalty.Account{}, loyalty.DefaultConfig(), now)
		require.NoError(t, err)
		assert.Nil(t, got.Ledger)
	})

	t.Run("初回完了の紹介は双方にボーナス", func(t *testing.T) {
		in := loyalty.SettlementInput{FinalPrice: 175000, ReferralApplied: true, ReferralCode: "RINA-7K2Q"}
		got, err := loyalty.ApplySettlement(in, loyalty.Account{}, loyalty.DefaultConfig(), now)
		require.NoError(t, err)

		require.NotNil(t, got.Referrer)
		assert.Equal(t, "RINA-7K2Q", got.Referrer.ReferralCode)
		assert.Equal(t, int64(50), got.Referrer.BonusPoints)
		assert.Equal(t, int64(50), got.Client.ReferralBonus)
		assert.Equal(t, int64(175+50), got.Client.PointsAdded())
	})

	t.Run("完了済み予約がある顧客には紹介ボーナスなし", func(t *testing.T) {
		in := loyalty.SettlementInput{FinalPrice: 175000, ReferralApplied: true, ReferralCode: "RINA-7K2Q"}
		got, err := loyalty.ApplySettlement(in, loyalty.Account{TotalBookings: 1}, loyalty.DefaultConfig(), now)
		require.NoError(t, err)
		assert.Nil(t, got.Referrer)
		assert.Zero(t, got.Client.ReferralBonus)
	})

	t.Run("6回目の完了ではティア据え置き", func(t *testing.T) {
		acct := loyalty.Account{TotalBookings: 5, TierName: "Gold"}
		got, err := loyalty.ApplySettlement(loyalty.SettlementInput{FinalPrice: 100000}, acct, twoTierConfig(), now)
		require.NoError(t, err)
		assert.Equal(t, 6, got.Client.TotalBookings)
		assert.Equal(t, "Gold", got.Client.NewTier)
		assert.False(t, got.Client.TierChanged)
	})

	t.Run("11回目の完了でティア昇格", func(t *testing.T) {
		acct := loyalty.Account{TotalBookings: 10, TierName: "Gold"}
		got, err := loyalty.ApplySettlement(loyalty.SettlementInput{FinalPrice: 100000}, acct, twoTierConfig(), now)
		require.NoError(t, err)
		assert.Equal(t, 11, got.Client.TotalBookings)
		assert.Equal(t, "Platinum", got.Client.NewTier)
		assert.True(t, got.Client.TierChanged)
	})

	t.Run("完了済みの予約は精算しない", func(t *testing.T) {
		_, err := loyalty.ApplySettlement(loyalty.SettlementInput{Completed: true}, loyalty.Account{}, loyalty.DefaultConfig(), now)
		require.ErrorIs(t, err, loyalty.ErrAlreadySettled)
	})
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*loyalty.Config)
		errIs  error
	}{
		{name: "デフォルト設定OK", mutate: func(*loyalty.Config) {}},
		{name: "ティアなしOK", mutate: func(c *loyalty.Config) { c.Tiers = nil }},
		{
			name:   "負のポイント単価NG",
			mutate: func(c *loyalty.Config) { c.PointsPerCurrencyUnit = decimal.NewFromInt(-1) },
			errIs:  loyalty.ErrInvalidConfig,
		},
		{
			name:   "負の紹介割引NG",
			mutate: func(c *loyalty.Config) { c.ReferralDiscount = -1 },
			errIs:  loyalty.ErrInvalidConfig,
		},
		{
			name:   "名前のないティアNG",
			mutate: func(c *loyalty.Config) { c.Tiers[0].Name = "" },
			errIs:  loyalty.ErrInvalidConfig,
		},
		{
			name: "閾値の重複NG",
			mutate: func(c *loyalty.Config) {
				c.Tiers = append(c.Tiers, loyalty.Tier{Name: "Dup", Threshold: 5, DiscountPercent: decimal.NewFromInt(1)})
			},
			errIs: loyalty.ErrDuplicateTierKey,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := loyalty.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
