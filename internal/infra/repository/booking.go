package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingAddOn(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingAddOnParams) error
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, params := range converter.BookingAddOnsToInfra(b) {
		if err := r.queries.CreateBookingAddOn(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create booking add-on", err)
		}
	}

	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingState(ctx, tx, converter.BookingStateToInfra(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
