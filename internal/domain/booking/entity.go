package booking

import (
	"strings"
	"time"

	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type Booking struct {
	id             uuid.UUID
	code           Code
	clientID       uuid.UUID
	client         ClientInfo
	scheduledAt    time.Time
	packageID      uuid.UUID
	packageName    string
	subPackageID   uuid.UUID
	subPackageName string
	addOns         []AddOn
	participants   int
	price          pricing.Breakdown
	status         Status
	paymentStatus  PaymentStatus
	amountPaid     int64
	proofBlobID    *uuid.UUID
	proofURL       string
	deliveryLink   string
	requestedAt    *time.Time
	rescheduleNote string
	cancelReason   string
	notes          string
	completedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// Draft carries what a public submission provides once the price is known.
type Draft struct {
	ClientID       uuid.UUID
	Client         ClientInfo
	ScheduledAt    time.Time
	PackageID      uuid.UUID
	PackageName    string
	SubPackageID   uuid.UUID
	SubPackageName string
	AddOns         []AddOn
	Participants   int
	Price          pricing.Breakdown
	ProofBlobID    *uuid.UUID
	ProofURL       string
	Notes          string
}

func New(d Draft, now time.Time) (*Booking, error) {
	if d.Participants < 1 {
		return nil, ErrInvalidParticipants
	}
	if d.ScheduledAt.IsZero() {
		return nil, ErrInvalidSchedule
	}
	if strings.TrimSpace(d.Client.Name) == "" {
		return nil, ErrInvalidClientName
	}
	code, err := NewCode()
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:             uuid.New(),
		code:           code,
		clientID:       d.ClientID,
		client:         d.Client,
		scheduledAt:    d.ScheduledAt,
		packageID:      d.PackageID,
		packageName:    d.PackageName,
		subPackageID:   d.SubPackageID,
		subPackageName: d.SubPackageName,
		addOns:         d.AddOns,
		participants:   d.Participants,
		price:          d.Price,
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		proofBlobID:    d.ProofBlobID,
		proofURL:       d.ProofURL,
		notes:          d.Notes,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Record is the persisted shape used to rebuild a Booking.
type Record struct {
	ID             uuid.UUID
	Code           string
	ClientID       uuid.UUID
	Client         ClientInfo
	ScheduledAt    time.Time
	PackageID      uuid.UUID
	PackageName    string
	SubPackageID   uuid.UUID
	SubPackageName string
	AddOns         []AddOn
	Participants   int
	Price          pricing.Breakdown
	Status         Status
	PaymentStatus  PaymentStatus
	AmountPaid     int64
	ProofBlobID    *uuid.UUID
	ProofURL       string
	DeliveryLink   string
	RequestedAt    *time.Time
	RescheduleNote string
	CancelReason   string
	Notes          string
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(r Record) *Booking {
	return &Booking{
		id:             r.ID,
		code:           Code{value: r.Code},
		clientID:       r.ClientID,
		client:         r.Client,
		scheduledAt:    r.ScheduledAt,
		packageID:      r.PackageID,
		packageName:    r.PackageName,
		subPackageID:   r.SubPackageID,
		subPackageName: r.SubPackageName,
		addOns:         r.AddOns,
		participants:   r.Participants,
		price:          r.Price,
		status:         r.Status,
		paymentStatus:  r.PaymentStatus,
		amountPaid:     r.AmountPaid,
		proofBlobID:    r.ProofBlobID,
		proofURL:       r.ProofURL,
		deliveryLink:   r.DeliveryLink,
		requestedAt:    r.RequestedAt,
		rescheduleNote: r.RescheduleNote,
		cancelReason:   r.CancelReason,
		notes:          r.Notes,
		completedAt:    r.CompletedAt,
		createdAt:      r.CreatedAt,
		updatedAt:      r.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Code() Code                   { return b.code }
func (b *Booking) ClientID() uuid.UUID          { return b.clientID }
func (b *Booking) Client() ClientInfo           { return b.client }
func (b *Booking) ScheduledAt() time.Time       { return b.scheduledAt }
func (b *Booking) PackageID() uuid.UUID         { return b.packageID }
func (b *Booking) PackageName() string          { return b.packageName }
func (b *Booking) SubPackageID() uuid.UUID      { return b.subPackageID }
func (b *Booking) SubPackageName() string       { return b.subPackageName }
func (b *Booking) AddOns() []AddOn              { return b.addOns }
func (b *Booking) Participants() int            { return b.participants }
func (b *Booking) Price() pricing.Breakdown     { return b.price }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) AmountPaid() int64            { return b.amountPaid }
func (b *Booking) ProofBlobID() *uuid.UUID      { return b.proofBlobID }
func (b *Booking) ProofURL() string             { return b.proofURL }
func (b *Booking) DeliveryLink() string         { return b.deliveryLink }
func (b *Booking) RequestedAt() *time.Time      { return b.requestedAt }
func (b *Booking) RescheduleNote() string       { return b.rescheduleNote }
func (b *Booking) CancelReason() string         { return b.cancelReason }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CompletedAt() *time.Time      { return b.completedAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// RemainingBalance is finalPrice minus what has already been paid.
func (b *Booking) RemainingBalance() int64 {
	return b.price.FinalPrice - b.amountPaid
}

func (b *Booking) transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// Confirm records the verified amount paid so far.
func (b *Booking) Confirm(amountPaid int64, now time.Time) error {
	if amountPaid < 0 {
		return ErrInvalidAmountPaid
	}
	if err := b.transition(StatusConfirmed, now); err != nil {
		return err
	}
	b.amountPaid = amountPaid
	switch {
	case amountPaid == 0:
		b.paymentStatus = PaymentUnpaid
	case amountPaid >= b.price.FinalPrice:
		b.paymentStatus = PaymentPaid
	default:
		b.paymentStatus = PaymentPartial
	}
	return nil
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	if err := b.transition(StatusCancelled, now); err != nil {
		return err
	}
	b.cancelReason = strings.TrimSpace(reason)
	return nil
}

func (b *Booking) RequestReschedule(at time.Time, note string, now time.Time) error {
	if at.IsZero() {
		return ErrInvalidSchedule
	}
	if at.Equal(b.scheduledAt) {
		return ErrRescheduleDate
	}
	if err := b.transition(StatusRescheduleRequested, now); err != nil {
		return err
	}
	b.requestedAt = &at
	b.rescheduleNote = strings.TrimSpace(note)
	return nil
}

// ResolveReschedule returns the booking to Confirmed, moving the session to the
// requested time only when approved.
func (b *Booking) ResolveReschedule(approve bool, now time.Time) error {
	requested := b.requestedAt
	if err := b.transition(StatusConfirmed, now); err != nil {
		return err
	}
	if approve && requested != nil {
		b.scheduledAt = *requested
	}
	b.requestedAt = nil
	b.rescheduleNote = ""
	return nil
}

// Complete settles the booking in full and attaches the delivery link.
func (b *Booking) Complete(deliveryLink string, now time.Time) error {
	deliveryLink = strings.TrimSpace(deliveryLink)
	if deliveryLink == "" {
		return ErrDeliveryLinkRequired
	}
	if err := b.transition(StatusCompleted, now); err != nil {
		return err
	}
	if remaining := b.RemainingBalance(); remaining > 0 {
		b.amountPaid += remaining
	}
	b.paymentStatus = PaymentPaid
	b.deliveryLink = deliveryLink
	b.completedAt = &now
	return nil
}

func (b *Booking) SettlementInput() loyalty.SettlementInput {
	return loyalty.SettlementInput{
		BookingID:        b.id,
		BookingCode:      b.code.String(),
		FinalPrice:       b.price.FinalPrice,
		RemainingBalance: b.RemainingBalance(),
		ReferralApplied:  b.price.ReferralApplied,
		ReferralCode:     b.price.ReferralCode,
		Completed:        b.status == StatusCompleted,
	}
}
