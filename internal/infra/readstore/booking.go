package readstore

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Bookings, error)
	ListBookingAddOns(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingAddOns, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingErr(err, "failed to find booking by ID")
	}
	addOns, err := r.addOns(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return toBookingView(row, addOns), nil
}

func (r *BookingReadStore) FindByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByCode(ctx, r.db, code)
	if err != nil {
		return nil, wrapBookingErr(err, "failed to find booking by code")
	}
	addOns, err := r.addOns(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return toBookingView(row, addOns), nil
}

// LoadForUpdate locks the booking row for the rest of the transaction.
func (r *BookingReadStore) LoadForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingErr(err, "failed to lock booking by ID")
	}
	addOns, err := r.addOns(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return converter.BookingFromInfra(row, addOns), nil
}

func (r *BookingReadStore) LoadByCodeForUpdate(ctx context.Context, code string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByCodeForUpdate(ctx, r.db, code)
	if err != nil {
		return nil, wrapBookingErr(err, "failed to lock booking by code")
	}
	addOns, err := r.addOns(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return converter.BookingFromInfra(row, addOns), nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, status string, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsFirstPageParams{
		Status:     status,
		LimitCount: limit,
	}

	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return toBookingListItems(rows), nil
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsKeysetParams{
		Status:     status,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	}

	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings with keyset", err)
	}
	return toBookingListItems(rows), nil
}

func (r *BookingReadStore) addOns(ctx context.Context, bookingID uuid.UUID) ([]sqlc.BookingAddOns, error) {
	rows, err := r.queries.ListBookingAddOns(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking add-ons", err)
	}
	return rows, nil
}

func wrapBookingErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

func toBookingView(row sqlc.Bookings, addOnRows []sqlc.BookingAddOns) *queries.BookingView {
	addOns := make([]queries.BookingAddOnView, len(addOnRows))
	for i, a := range addOnRows {
		addOns[i] = queries.BookingAddOnView{ID: a.AddOnID, Name: a.Name, Price: a.Price}
	}

	price := converter.BreakdownFromInfra(row)
	return &queries.BookingView{
		ID:             row.ID,
		Code:           row.Code,
		ClientID:       row.ClientID,
		ClientName:     row.ClientName,
		ClientEmail:    row.ClientEmail,
		ClientPhone:    pgconv.StringFromPgtype(row.ClientPhone),
		ScheduledAt:    pgconv.TimeFromPgtype(row.ScheduledAt),
		PackageID:      row.PackageID,
		PackageName:    row.PackageName,
		SubPackageID:   row.SubPackageID,
		SubPackageName: row.SubPackageName,
		Participants:   int(row.Participants),
		AddOns:         addOns,
		Price: queries.PriceBreakdownView{
			BasePrice:         price.BasePrice,
			AddOnTotal:        price.AddOnTotal,
			ExtraPersonCharge: price.ExtraPersonCharge,
			Subtotal:          price.Subtotal,
			DiscountAmount:    price.DiscountAmount,
			DiscountReason:    string(price.DiscountReason),
			PromoCode:         price.PromoCode,
			ReferralCode:      price.ReferralCode,
			ReferralApplied:   price.ReferralApplied,
			TierName:          price.TierName,
			PointsRedeemed:    price.PointsRedeemed,
			PointsValue:       price.PointsValue,
			FinalPrice:        price.FinalPrice,
		},
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		AmountPaid:       row.AmountPaid,
		RemainingBalance: row.RemainingBalance,
		PaymentProofURL:  pgconv.StringFromPgtype(row.PaymentProofUrl),
		DeliveryLink:     pgconv.StringFromPgtype(row.DeliveryLink),
		RequestedAt:      pgconv.TimePtrFromPgtype(row.RequestedAt),
		RescheduleNote:   pgconv.StringFromPgtype(row.RescheduleNote),
		CancelReason:     pgconv.StringFromPgtype(row.CancelReason),
		Notes:            pgconv.StringFromPgtype(row.Notes),
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookingListItems(rows []sqlc.Bookings) []*queries.BookingListItem {
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:            row.ID,
			Code:          row.Code,
			ClientName:    row.ClientName,
			ClientEmail:   row.ClientEmail,
			ScheduledAt:   pgconv.TimeFromPgtype(row.ScheduledAt),
			PackageName:   row.PackageName,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			FinalPrice:    row.FinalPrice,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
