package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type StoredBlob struct {
	ID  uuid.UUID
	URL string
}

// BlobStore holds uploaded files outside the booking transaction.
type BlobStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (StoredBlob, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventType string

const (
	EventBookingCreated      EventType = "booking.created"
	EventBookingConfirmed    EventType = "booking.confirmed"
	EventBookingCancelled    EventType = "booking.cancelled"
	EventRescheduleRequested EventType = "booking.reschedule_requested"
	EventRescheduleResolved  EventType = "booking.reschedule_resolved"
	EventBookingCompleted    EventType = "booking.completed"
)

type BookingEvent struct {
	Type        EventType `json:"type"`
	BookingID   uuid.UUID `json:"bookingId"`
	BookingCode string    `json:"bookingCode"`
	ClientName  string    `json:"clientName"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduledAt"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Notifier is fire-and-forget: Notify must not block on delivery and never
// reports delivery failures to the caller.
type Notifier interface {
	Notify(ctx context.Context, ev BookingEvent)
}
