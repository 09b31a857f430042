package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatusFilter = errs.New("invalid booking status filter")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCode(ctx context.Context, code string) (*BookingView, error)
	ListFirstPage(ctx context.Context, status string, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetStatusByCode(ctx context.Context, code string) (*BookingStatusView, error)
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return bv, nil
}

// GetStatusByCode is the public lookup; malformed codes are reported as not found.
func (q *bookingQueriesImpl) GetStatusByCode(ctx context.Context, code string) (*BookingStatusView, error) {
	parsed, err := booking.ParseCode(code)
	if err != nil {
		return nil, errs.ErrBookingNotFound
	}

	bv, err := q.repo.FindByCode(ctx, parsed.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	return &BookingStatusView{
		Code:             bv.Code,
		ClientName:       bv.ClientName,
		ScheduledAt:      bv.ScheduledAt,
		PackageName:      bv.PackageName,
		SubPackageName:   bv.SubPackageName,
		Status:           bv.Status,
		PaymentStatus:    bv.PaymentStatus,
		FinalPrice:       bv.Price.FinalPrice,
		RemainingBalance: bv.RemainingBalance,
		RequestedAt:      bv.RequestedAt,
		DeliveryLink:     bv.DeliveryLink,
	}, nil
}

// List pages through bookings newest first. An empty status lists all.
func (q *bookingQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if status != "" {
		if _, err := booking.ParseStatus(status); err != nil {
			return nil, nil, ErrInvalidStatusFilter
		}
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListKeyset(ctx, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
