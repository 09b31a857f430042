package readstore

import (
	"context"

	"studio-booking/internal/domain/client"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"
)

type ClientReadQueries interface {
	GetClientByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Clients, error)
	GetClientByEmailForUpdate(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Clients, error)
	GetClientByReferralCode(ctx context.Context, db sqlc.DBTX, referralCode string) (sqlc.Clients, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindByEmail(ctx context.Context, email string) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByEmail(ctx, r.db, email)
	if err != nil {
		return nil, wrapClientErr(err, "failed to find client by email")
	}

	return &queries.ClientView{
		ID:            row.ID,
		Email:         row.Email,
		Name:          row.Name,
		Phone:         pgconv.StringFromPgtype(row.Phone),
		TotalBookings: int(row.TotalBookings),
		TotalSpent:    row.TotalSpent,
		LoyaltyPoints: row.LoyaltyPoints,
		TierName:      pgconv.StringFromPgtype(row.TierName),
		ReferralCode:  row.ReferralCode,
		ReferredBy:    pgconv.StringFromPgtype(row.ReferredBy),
		LastBookingAt: pgconv.TimePtrFromPgtype(row.LastBookingAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ClientReadStore) LoadByEmailForUpdate(ctx context.Context, email string) (*client.Client, error) {
	row, err := r.queries.GetClientByEmailForUpdate(ctx, r.db, email)
	if err != nil {
		return nil, wrapClientErr(err, "failed to lock client by email")
	}
	return converter.ClientFromInfra(row), nil
}

func (r *ClientReadStore) LoadByReferralCode(ctx context.Context, code string) (*client.Client, error) {
	row, err := r.queries.GetClientByReferralCode(ctx, r.db, client.NormalizeReferralCode(code))
	if err != nil {
		return nil, wrapClientErr(err, "failed to find client by referral code")
	}
	return converter.ClientFromInfra(row), nil
}

func wrapClientErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("client not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
