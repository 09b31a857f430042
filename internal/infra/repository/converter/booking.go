package converter

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/pricing"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	price := b.Price()
	client := b.Client()

	return sqlc.CreateBookingParams{
		ID:                 b.ID(),
		Code:               b.Code().String(),
		ClientID:           b.ClientID(),
		ClientName:         client.Name,
		ClientEmail:        client.Email,
		ClientPhone:        pgconv.OptionalText(client.Phone),
		ScheduledAt:        pgconv.TimeToPgtype(b.ScheduledAt()),
		PackageID:          b.PackageID(),
		PackageName:        b.PackageName(),
		SubPackageID:       b.SubPackageID(),
		SubPackageName:     b.SubPackageName(),
		Participants:       int32(b.Participants()), // #nosec G115 -- bounded by request validation
		BasePrice:          price.BasePrice,
		AddOnTotal:         price.AddOnTotal,
		ExtraPersonCharge:  price.ExtraPersonCharge,
		Subtotal:           price.Subtotal,
		DiscountAmount:     price.DiscountAmount,
		DiscountReason:     pgconv.OptionalText(string(price.DiscountReason)),
		PromoCode:          pgconv.OptionalText(price.PromoCode),
		ReferralCode:       pgconv.OptionalText(price.ReferralCode),
		ReferralApplied:    price.ReferralApplied,
		TierName:           pgconv.OptionalText(price.TierName),
		PointsRedeemed:     price.PointsRedeemed,
		PointsValue:        price.PointsValue,
		FinalPrice:         price.FinalPrice,
		Status:             b.Status().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		AmountPaid:         b.AmountPaid(),
		RemainingBalance:   b.RemainingBalance(),
		PaymentProofBlobID: pgconv.UUIDPtrToPgtype(b.ProofBlobID()),
		PaymentProofUrl:    pgconv.OptionalText(b.ProofURL()),
		DeliveryLink:       pgconv.OptionalText(b.DeliveryLink()),
		RequestedAt:        pgconv.TimePtrToPgtype(b.RequestedAt()),
		RescheduleNote:     pgconv.OptionalText(b.RescheduleNote()),
		CancelReason:       pgconv.OptionalText(b.CancelReason()),
		Notes:              pgconv.OptionalText(b.Notes()),
		CompletedAt:        pgconv.TimePtrToPgtype(b.CompletedAt()),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingAddOnsToInfra(b *booking.Booking) []sqlc.CreateBookingAddOnParams {
	params := make([]sqlc.CreateBookingAddOnParams, len(b.AddOns()))
	for i, a := range b.AddOns() {
		params[i] = sqlc.CreateBookingAddOnParams{
			BookingID: b.ID(),
			AddOnID:   a.ID,
			Name:      a.Name,
			Price:     a.Price,
		}
	}
	return params
}

// BookingStateToInfra carries only the columns lifecycle operations may change.
func BookingStateToInfra(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:               b.ID(),
		ScheduledAt:      pgconv.TimeToPgtype(b.ScheduledAt()),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		AmountPaid:       b.AmountPaid(),
		RemainingBalance: b.RemainingBalance(),
		DeliveryLink:     pgconv.OptionalText(b.DeliveryLink()),
		RequestedAt:      pgconv.TimePtrToPgtype(b.RequestedAt()),
		RescheduleNote:   pgconv.OptionalText(b.RescheduleNote()),
		CancelReason:     pgconv.OptionalText(b.CancelReason()),
		CompletedAt:      pgconv.TimePtrToPgtype(b.CompletedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings, addOnRows []sqlc.BookingAddOns) *booking.Booking {
	addOns := make([]booking.AddOn, len(addOnRows))
	for i, a := range addOnRows {
		addOns[i] = booking.AddOn{ID: a.AddOnID, Name: a.Name, Price: a.Price}
	}

	return booking.Reconstruct(booking.Record{
		ID:       row.ID,
		Code:     row.Code,
		ClientID: row.ClientID,
		Client: booking.ClientInfo{
			Name:  row.ClientName,
			Email: row.ClientEmail,
			Phone: pgconv.StringFromPgtype(row.ClientPhone),
		},
		ScheduledAt:    pgconv.TimeFromPgtype(row.ScheduledAt),
		PackageID:      row.PackageID,
		PackageName:    row.PackageName,
		SubPackageID:   row.SubPackageID,
		SubPackageName: row.SubPackageName,
		AddOns:         addOns,
		Participants:   int(row.Participants),
		Price:          BreakdownFromInfra(row),
		Status:         booking.Status(row.Status),
		PaymentStatus:  booking.PaymentStatus(row.PaymentStatus),
		AmountPaid:     row.AmountPaid,
		ProofBlobID:    pgconv.UUIDPtrFromPgtype(row.PaymentProofBlobID),
		ProofURL:       pgconv.StringFromPgtype(row.PaymentProofUrl),
		DeliveryLink:   pgconv.StringFromPgtype(row.DeliveryLink),
		RequestedAt:    pgconv.TimePtrFromPgtype(row.RequestedAt),
		RescheduleNote: pgconv.StringFromPgtype(row.RescheduleNote),
		CancelReason:   pgconv.StringFromPgtype(row.CancelReason),
		Notes:          pgconv.StringFromPgtype(row.Notes),
		CompletedAt:    pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func BreakdownFromInfra(row sqlc.Bookings) pricing.Breakdown {
	return pricing.Breakdown{
		BasePrice:         row.BasePrice,
		AddOnTotal:        row.AddOnTotal,
		ExtraPersonCharge: row.ExtraPersonCharge,
		Subtotal:          row.Subtotal,
		DiscountAmount:    row.DiscountAmount,
		DiscountReason:    pricing.DiscountReason(pgconv.StringFromPgtype(row.DiscountReason)),
		PromoCode:         pgconv.StringFromPgtype(row.PromoCode),
		ReferralCode:      pgconv.StringFromPgtype(row.ReferralCode),
		ReferralApplied:   row.ReferralApplied,
		TierName:          pgconv.StringFromPgtype(row.TierName),
		PointsRedeemed:    row.PointsRedeemed,
		PointsValue:       row.PointsValue,
		FinalPrice:        row.FinalPrice,
	}
}
