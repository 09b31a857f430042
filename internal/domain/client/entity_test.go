//go:build unit

package client_test

import (
	"regexp"
	"testing"
	"time"

	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Run("メールは正規化される", func(t *testing.T) {
		c, err := client.New("  Rina@Example.COM ", " Rina Putri ", "0811", now)
		require.NoError(t, err)
		assert.Equal(t, "rina@example.com", c.Email())
		assert.Equal(t, "Rina Putri", c.Name())
		assert.Zero(t, c.TotalBookings())
		assert.Zero(t, c.Points())
		assert.Regexp(t, `^RINA-[A-Z2-9]{4}$`, c.ReferralCode())
	})

	t.Run("不正なメールNG", func(t *testing.T) {
		_, err := client.New("not-an-email", "Rina", "", now)
		require.ErrorIs(t, err, client.ErrInvalidEmail)
	})

	t.Run("名前なしNG", func(t *testing.T) {
		_, err := client.New("rina@example.com", " ", "", now)
		require.ErrorIs(t, err, client.ErrInvalidName)
	})
}

func TestNewReferralCode(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		prefix string
	}{
		{name: "4文字に切り詰め", input: "Bambang Susilo", prefix: "BAMB"},
		{name: "記号と数字は除外", input: "A.J. 99", prefix: "AJ"},
		{name: "英字が1文字以下はフォールバック", input: "李", prefix: "CLNT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := client.NewReferralCode(tc.input)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(`^`+tc.prefix+`-[A-Z2-9]{4}$`), code)
		})
	}
}

func TestMarkReferredBy(t *testing.T) {
	t.Run("初回は設定できる", func(t *testing.T) {
		c := newClient(t, 0, 0)
		require.NoError(t, c.MarkReferredBy(" budi-7k2q ", now))
		assert.Equal(t, "BUDI-7K2Q", c.ReferredBy())
	})

	t.Run("二度目は設定できない", func(t *testing.T) {
		c := newClient(t, 0, 0)
		require.NoError(t, c.MarkReferredBy("BUDI-7K2Q", now))
		require.ErrorIs(t, c.MarkReferredBy("SARI-AAAA", now), client.ErrAlreadyReferred)
		assert.Equal(t, "BUDI-7K2Q", c.ReferredBy())
	})

	t.Run("既存顧客は対象外", func(t *testing.T) {
		c := newClient(t, 1, 0)
		require.ErrorIs(t, c.MarkReferredBy("BUDI-7K2Q", now), client.ErrReferralNotEligible)
	})

	t.Run("自分のコードNG", func(t *testing.T) {
		c := newClient(t, 0, 0)
		require.ErrorIs(t, c.MarkReferredBy(c.ReferralCode(), now), client.ErrSelfReferral)
	})
}

func TestRedeemPoints(t *testing.T) {
	t.Run("残高から差し引く", func(t *testing.T) {
		c := newClient(t, 2, 500)
		require.NoError(t, c.RedeemPoints(200, now))
		assert.Equal(t, int64(300), c.Points())
	})

	t.Run("残高不足NG", func(t *testing.T) {
		c := newClient(t, 2, 100)
		require.ErrorIs(t, c.RedeemPoints(101, now), client.ErrInsufficientPoints)
		assert.Equal(t, int64(100), c.Points())
	})

	t.Run("0ポイントNG", func(t *testing.T) {
		c := newClient(t, 2, 100)
		require.ErrorIs(t, c.RedeemPoints(0, now), client.ErrInvalidPoints)
	})
}

func TestApplySettlement(t *testing.T) {
	c := newClient(t, 2, 100)
	acct := c.Account()

	s, err := loyalty.ApplySettlement(loyalty.SettlementInput{
		BookingID:   uuid.New(),
		BookingCode: "SB-ABCDEFGH",
		FinalPrice:  200000,
	}, acct, loyalty.DefaultConfig(), now)
	require.NoError(t, err)

	c.ApplySettlement(s.Client)

	assert.Equal(t, 3, c.TotalBookings())
	assert.Equal(t, int64(200000), c.TotalSpent())
	assert.Equal(t, int64(300), c.Points())
	assert.Equal(t, "Silver", c.TierName())
	require.NotNil(t, c.LastBookingAt())
	assert.True(t, c.LastBookingAt().Equal(now))

	hist := c.History()
	assert.Equal(t, 3, hist.BookingCount)
	assert.Equal(t, int64(300), hist.PointBalance)
	assert.False(t, hist.IsFirstBooking())
}

func newClient(t *testing.T, totalBookings int, points int64) *client.Client {
	t.Helper()
	return client.Reconstruct(client.Record{
		ID:            uuid.New(),
		Email:         "rina@example.com",
		Name:          "Rina Putri",
		TotalBookings: totalBookings,
		Points:        points,
		ReferralCode:  "RINA-2345",
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}
