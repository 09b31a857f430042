package response

import (
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PriceBreakdownResponse struct {
	BasePrice         int64  `json:"base_price"`
	AddOnTotal        int64  `json:"add_on_total"`
	ExtraPersonCharge int64  `json:"extra_person_charge"`
	Subtotal          int64  `json:"subtotal"`
	DiscountAmount    int64  `json:"discount_amount"`
	DiscountReason    string `json:"discount_reason,omitempty"`
	PromoCode         string `json:"promo_code,omitempty"`
	ReferralCode      string `json:"referral_code,omitempty"`
	TierName          string `json:"tier_name,omitempty"`
	PointsRedeemed    int64  `json:"points_redeemed"`
	PointsValue       int64  `json:"points_value"`
	FinalPrice        int64  `json:"final_price"`
}

type BookingAddOnResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type BookingResponse struct {
	ID               uuid.UUID              `json:"id"`
	Code             string                 `json:"code"`
	ClientID         uuid.UUID              `json:"client_id"`
	ClientName       string                 `json:"client_name"`
	ClientEmail      string                 `json:"client_email"`
	ClientPhone      string                 `json:"client_phone,omitempty"`
	ScheduledAt      time.Time              `json:"scheduled_at"`
	PackageID        uuid.UUID              `json:"package_id"`
	PackageName      string                 `json:"package_name"`
	SubPackageID     uuid.UUID              `json:"sub_package_id"`
	SubPackageName   string                 `json:"sub_package_name"`
	Participants     int                    `json:"participants"`
	AddOns           []BookingAddOnResponse `json:"add_ons"`
	Price            PriceBreakdownResponse `json:"price"`
	Status           string                 `json:"status"`
	PaymentStatus    string                 `json:"payment_status"`
	AmountPaid       int64                  `json:"amount_paid"`
	RemainingBalance int64                  `json:"remaining_balance"`
	PaymentProofURL  string                 `json:"payment_proof_url,omitempty"`
	DeliveryLink     string                 `json:"delivery_link,omitempty"`
	RequestedAt      *time.Time             `json:"requested_at,omitempty"`
	RescheduleNote   string                 `json:"reschedule_note,omitempty"`
	CancelReason     string                 `json:"cancel_reason,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	CompletedAt      *time.Time             `json:"completed_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// CreateBookingResponse is returned to the public client after submission.
type CreateBookingResponse struct {
	BookingCode      string                 `json:"booking_code"`
	Status           string                 `json:"status"`
	ScheduledAt      time.Time              `json:"scheduled_at"`
	Price            PriceBreakdownResponse `json:"price"`
	RemainingBalance int64                  `json:"remaining_balance"`
	PaymentProofURL  string                 `json:"payment_proof_url,omitempty"`
}

type BookingStatusResponse struct {
	Code             string     `json:"code"`
	ClientName       string     `json:"client_name"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	PackageName      string     `json:"package_name"`
	SubPackageName   string     `json:"sub_package_name"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	FinalPrice       int64      `json:"final_price"`
	RemainingBalance int64      `json:"remaining_balance"`
	RequestedAt      *time.Time `json:"requested_at,omitempty"`
	DeliveryLink     string     `json:"delivery_link,omitempty"`
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	PackageName   string    `json:"package_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	FinalPrice    int64     `json:"final_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

var deepCopy = copier.Option{DeepCopy: true}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var r BookingResponse
	_ = copier.CopyWithOption(&r, v, deepCopy)
	if r.AddOns == nil {
		r.AddOns = []BookingAddOnResponse{}
	}
	return &r
}

func FromCreatedBooking(v *queries.BookingView) *CreateBookingResponse {
	r := &CreateBookingResponse{
		BookingCode:      v.Code,
		Status:           v.Status,
		ScheduledAt:      v.ScheduledAt,
		RemainingBalance: v.RemainingBalance,
		PaymentProofURL:  v.PaymentProofURL,
	}
	_ = copier.Copy(&r.Price, &v.Price)
	return r
}

func FromBookingStatusView(v *queries.BookingStatusView) *BookingStatusResponse {
	var r BookingStatusResponse
	_ = copier.Copy(&r, v)
	return &r
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, len(items))}
	for i, it := range items {
		var r BookingListItemResponse
		_ = copier.Copy(&r, it)
		res.Items[i] = &r
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

// BookingDetailResponse is the admin view of one booking with its ledger entries.
type BookingDetailResponse struct {
	*BookingResponse
	Transactions []*TransactionResponse `json:"transactions"`
}

func FromBookingDetail(v *queries.BookingView, txs []*queries.TransactionView) *BookingDetailResponse {
	return &BookingDetailResponse{
		BookingResponse: FromBookingView(v),
		Transactions:    FromTransactionList(txs, nil).Items,
	}
}
