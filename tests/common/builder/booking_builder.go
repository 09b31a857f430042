//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/pricing"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ClientID       uuid.UUID
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	ScheduledAt    time.Time
	PackageID      uuid.UUID
	PackageName    string
	SubPackageID   uuid.UUID
	SubPackageName string
	AddOns         []booking.AddOn
	Participants   int
	Price          pricing.Breakdown
	AmountPaid     int64
	Status         booking.Status
	Notes          string
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ClientID:       uuid.New(),
		ClientName:     "Rina Putri",
		ClientEmail:    "rina@example.com",
		ClientPhone:    "+62811000111",
		ScheduledAt:    now.Add(7 * 24 * time.Hour),
		PackageID:      uuid.New(),
		PackageName:    "Family Session",
		SubPackageID:   uuid.New(),
		SubPackageName: "Basic",
		AddOns: []booking.AddOn{
			{ID: uuid.New(), Name: "Extra Prints", Price: 30000},
			{ID: uuid.New(), Name: "Makeup", Price: 20000},
		},
		Participants: 2,
		Price: pricing.Breakdown{
			BasePrice:  150000,
			AddOnTotal: 50000,
			Subtotal:   200000,
			FinalPrice: 200000,
		},
		Status: booking.StatusPending,
		Notes:  "Outdoor if possible",
		Now:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Draft() booking.Draft {
	return booking.Draft{
		ClientID:       b.ClientID,
		Client:         booking.ClientInfo{Name: b.ClientName, Email: b.ClientEmail, Phone: b.ClientPhone},
		ScheduledAt:    b.ScheduledAt,
		PackageID:      b.PackageID,
		PackageName:    b.PackageName,
		SubPackageID:   b.SubPackageID,
		SubPackageName: b.SubPackageName,
		AddOns:         b.AddOns,
		Participants:   b.Participants,
		Price:          b.Price,
		Notes:          b.Notes,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.Draft(), b.Now)
}

// BuildReconstructed returns a booking already in b.Status, as loaded from storage.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	code, _ := booking.NewCode()
	paymentStatus := booking.PaymentUnpaid
	switch {
	case b.AmountPaid >= b.Price.FinalPrice && b.AmountPaid > 0:
		paymentStatus = booking.PaymentPaid
	case b.AmountPaid > 0:
		paymentStatus = booking.PaymentPartial
	}
	return booking.Reconstruct(booking.Record{
		ID:             uuid.New(),
		Code:           code.String(),
		ClientID:       b.ClientID,
		Client:         booking.ClientInfo{Name: b.ClientName, Email: b.ClientEmail, Phone: b.ClientPhone},
		ScheduledAt:    b.ScheduledAt,
		PackageID:      b.PackageID,
		PackageName:    b.PackageName,
		SubPackageID:   b.SubPackageID,
		SubPackageName: b.SubPackageName,
		AddOns:         b.AddOns,
		Participants:   b.Participants,
		Price:          b.Price,
		Status:         b.Status,
		PaymentStatus:  paymentStatus,
		AmountPaid:     b.AmountPaid,
		Notes:          b.Notes,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	})
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithAmountPaid(amount int64) *BookingBuilder {
	b.AmountPaid = amount
	return b
}

func (b *BookingBuilder) WithParticipants(n int) *BookingBuilder {
	b.Participants = n
	return b
}

func (b *BookingBuilder) WithFinalPrice(amount int64) *BookingBuilder {
	b.Price.FinalPrice = amount
	return b
}

func (b *BookingBuilder) WithReferral(code string) *BookingBuilder {
	b.Price.ReferralCode = code
	b.Price.ReferralApplied = true
	b.Price.DiscountReason = pricing.DiscountReferral
	return b
}

func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	addOnIDs := make([]uuid.UUID, len(b.AddOns))
	for i, a := range b.AddOns {
		addOnIDs[i] = a.ID
	}
	return reqdto.CreateBookingRequest{
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  &b.ClientPhone,
		ScheduledAt:  b.ScheduledAt,
		PackageID:    b.PackageID,
		SubPackageID: b.SubPackageID,
		AddOnIDs:     addOnIDs,
		Participants: b.Participants,
		Notes:        &b.Notes,
	}
}

// BuildView mirrors BuildReconstructed as the read model handlers return.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	code, _ := booking.NewCode()
	addOns := make([]queries.BookingAddOnView, len(b.AddOns))
	for i, a := range b.AddOns {
		addOns[i] = queries.BookingAddOnView{ID: a.ID, Name: a.Name, Price: a.Price}
	}
	return &queries.BookingView{
		ID:             uuid.New(),
		Code:           code.String(),
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		ClientEmail:    b.ClientEmail,
		ClientPhone:    b.ClientPhone,
		ScheduledAt:    b.ScheduledAt,
		PackageID:      b.PackageID,
		PackageName:    b.PackageName,
		SubPackageID:   b.SubPackageID,
		SubPackageName: b.SubPackageName,
		Participants:   b.Participants,
		AddOns:         addOns,
		Price: queries.PriceBreakdownView{
			BasePrice:       b.Price.BasePrice,
			AddOnTotal:      b.Price.AddOnTotal,
			Subtotal:        b.Price.Subtotal,
			DiscountAmount:  b.Price.DiscountAmount,
			DiscountReason:  string(b.Price.DiscountReason),
			ReferralCode:    b.Price.ReferralCode,
			ReferralApplied: b.Price.ReferralApplied,
			FinalPrice:      b.Price.FinalPrice,
		},
		Status:           b.Status.String(),
		PaymentStatus:    booking.PaymentUnpaid.String(),
		AmountPaid:       b.AmountPaid,
		RemainingBalance: b.Price.FinalPrice - b.AmountPaid,
		Notes:            b.Notes,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}
