package response

import (
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
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

func FromClientView(v *queries.ClientView) *ClientResponse {
	var r ClientResponse
	_ = copier.Copy(&r, v)
	return &r
}

type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TransactionListResponse struct {
	Items      []*TransactionResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromTransactionList(items []*queries.TransactionView, next *queries.Cursor) *TransactionListResponse {
	res := &TransactionListResponse{Items: make([]*TransactionResponse, len(items))}
	for i, it := range items {
		var r TransactionResponse
		_ = copier.Copy(&r, it)
		res.Items[i] = &r
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
