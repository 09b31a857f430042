package shared

import (
	"encoding/json"
	"time"

	"studio-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	PasswordHash string
	IsActive     bool
}

// CatalogSnapshot is a sub-package together with its parent package.
type CatalogSnapshot struct {
	Package    catalog.Package
	SubPackage catalog.SubPackage
}

type CatalogAddOn = catalog.AddOn

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	Status          IdempotencyStatus
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

func (r IdempotencyRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// ActivityEntry is one audit log row. ActorID is nil for public actions.
type ActivityEntry struct {
	ActorID    *uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Payload    json.RawMessage
	At         time.Time
}

const (
	ActivityBookingCreated            = "booking.created"
	ActivityBookingConfirmed          = "booking.confirmed"
	ActivityBookingCancelled          = "booking.cancelled"
	ActivityBookingRescheduleRequest  = "booking.reschedule_requested"
	ActivityBookingRescheduleResolved = "booking.reschedule_resolved"
	ActivityBookingCompleted          = "booking.completed"
	ActivityReferrerMissing           = "loyalty.referrer_missing"
	ActivitySettingsUpdated           = "settings.loyalty_updated"

	EntityBooking  = "booking"
	EntitySettings = "settings"
)

type PushSubscription struct {
	UserID   uuid.UUID
	Role     string
	Endpoint string
	P256dh   string
	Auth     string
}
