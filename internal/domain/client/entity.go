package client

import (
	"strings"
	"time"

	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Client is a repeat customer keyed by normalized email. Created lazily on the
// first booking; loyalty counters only grow except through point redemption.
type Client struct {
	id            uuid.UUID
	email         string
	name          string
	phone         string
	totalBookings int
	totalSpent    int64
	points        int64
	tierName      string
	referralCode  string
	referredBy    string
	lastBookingAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func New(email, name, phone string, now time.Time) (*Client, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	code, err := NewReferralCode(name)
	if err != nil {
		return nil, err
	}
	return &Client{
		id:           uuid.New(),
		email:        normalized,
		name:         name,
		phone:        strings.TrimSpace(phone),
		referralCode: code,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type Record struct {
	ID            uuid.UUID
	Email         string
	Name          string
	Phone         string
	TotalBookings int
	TotalSpent    int64
	Points        int64
	TierName      string
	ReferralCode  string
	ReferredBy    string
	LastBookingAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(r Record) *Client {
	return &Client{
		id:            r.ID,
		email:         r.Email,
		name:          r.Name,
		phone:         r.Phone,
		totalBookings: r.TotalBookings,
		totalSpent:    r.TotalSpent,
		points:        r.Points,
		tierName:      r.TierName,
		referralCode:  r.ReferralCode,
		referredBy:    r.ReferredBy,
		lastBookingAt: r.LastBookingAt,
		createdAt:     r.CreatedAt,
		updatedAt:     r.UpdatedAt,
	}
}

func (c *Client) ID() uuid.UUID             { return c.id }
func (c *Client) Email() string             { return c.email }
func (c *Client) Name() string              { return c.name }
func (c *Client) Phone() string             { return c.phone }
func (c *Client) TotalBookings() int        { return c.totalBookings }
func (c *Client) TotalSpent() int64         { return c.totalSpent }
func (c *Client) Points() int64             { return c.points }
func (c *Client) TierName() string          { return c.tierName }
func (c *Client) ReferralCode() string      { return c.referralCode }
func (c *Client) ReferredBy() string        { return c.referredBy }
func (c *Client) LastBookingAt() *time.Time { return c.lastBookingAt }
func (c *Client) CreatedAt() time.Time      { return c.createdAt }
func (c *Client) UpdatedAt() time.Time      { return c.updatedAt }

// History is the pricing view of the client.
func (c *Client) History() pricing.ClientHistory {
	return pricing.ClientHistory{
		Email:        c.email,
		BookingCount: c.totalBookings,
		PointBalance: c.points,
		OwnReferral:  c.referralCode,
		ReferredBy:   c.referredBy,
	}
}

// Account is the settlement view of the client.
func (c *Client) Account() loyalty.Account {
	return loyalty.Account{
		TotalBookings: c.totalBookings,
		TotalSpent:    c.totalSpent,
		Points:        c.points,
		TierName:      c.tierName,
	}
}

// UpdateContact keeps the latest name and phone a client submitted.
func (c *Client) UpdateContact(name, phone string, now time.Time) {
	if n := strings.TrimSpace(name); n != "" {
		c.name = n
	}
	if p := strings.TrimSpace(phone); p != "" {
		c.phone = p
	}
	c.updatedAt = now
}

// MarkReferredBy records the referral code used on the first booking. It is set once.
func (c *Client) MarkReferredBy(code string, now time.Time) error {
	code = NormalizeReferralCode(code)
	if c.referredBy != "" {
		return ErrAlreadyReferred
	}
	if c.totalBookings > 0 {
		return ErrReferralNotEligible
	}
	if code == c.referralCode {
		return ErrSelfReferral
	}
	c.referredBy = code
	c.updatedAt = now
	return nil
}

// RedeemPoints is the only operation that lowers the point balance.
func (c *Client) RedeemPoints(points int64, now time.Time) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	if points > c.points {
		return ErrInsufficientPoints
	}
	c.points -= points
	c.updatedAt = now
	return nil
}

// ApplySettlement folds a completed booking's delta into the client.
func (c *Client) ApplySettlement(d loyalty.ClientDelta) {
	c.points += d.PointsAdded()
	c.totalBookings = d.TotalBookings
	c.totalSpent = d.TotalSpent
	if d.TierChanged {
		c.tierName = d.NewTier
	}
	at := d.LastBookingAt
	c.lastBookingAt = &at
	c.updatedAt = d.LastBookingAt
}
