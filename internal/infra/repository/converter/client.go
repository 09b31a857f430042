package converter

import (
	"studio-booking/internal/domain/client"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

func ClientToInfra(c *client.Client) sqlc.CreateClientParams {
	return sqlc.CreateClientParams{
		ID:            c.ID(),
		Email:         c.Email(),
		Name:          c.Name(),
		Phone:         pgconv.OptionalText(c.Phone()),
		LoyaltyPoints: c.Points(),
		ReferralCode:  c.ReferralCode(),
		ReferredBy:    pgconv.OptionalText(c.ReferredBy()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ClientFromInfra(row sqlc.Clients) *client.Client {
	return client.Reconstruct(client.Record{
		ID:            row.ID,
		Email:         row.Email,
		Name:          row.Name,
		Phone:         pgconv.StringFromPgtype(row.Phone),
		TotalBookings: int(row.TotalBookings),
		TotalSpent:    row.TotalSpent,
		Points:        row.LoyaltyPoints,
		TierName:      pgconv.StringFromPgtype(row.TierName),
		ReferralCode:  row.ReferralCode,
		ReferredBy:    pgconv.StringFromPgtype(row.ReferredBy),
		LastBookingAt: pgconv.TimePtrFromPgtype(row.LastBookingAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
