package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) error
	UpdateClientProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClientProfileParams) (int64, error)
	ApplyClientSettlement(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyClientSettlementParams) (int64, error)
	CreditReferrer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditReferrerParams) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	db      sqlc.DBTX
}

func NewClientRepository(queries ClientWriteQueries, db sqlc.DBTX) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClientRepository) Create(ctx context.Context, tx sqlc.DBTX, c *client.Client) error {
	if err := r.queries.CreateClient(ctx, tx, converter.ClientToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) SaveProfile(ctx context.Context, tx sqlc.DBTX, c *client.Client) error {
	params := sqlc.UpdateClientProfileParams{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         pgconv.OptionalText(c.Phone()),
		LoyaltyPoints: c.Points(),
		ReferredBy:    pgconv.OptionalText(c.ReferredBy()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}

	affected, err := r.queries.UpdateClientProfile(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

// ApplySettlement adds points as an increment so a concurrent redemption is not
// overwritten; the other counters are absolute.
func (r *ClientRepository) ApplySettlement(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, d loyalty.ClientDelta) error {
	tier := pgtype.Text{Valid: false}
	if d.TierChanged {
		tier = pgconv.StringToPgtype(d.NewTier)
	}

	params := sqlc.ApplyClientSettlementParams{
		ID:            clientID,
		PointsAdded:   d.PointsAdded(),
		TotalBookings: int32(d.TotalBookings), // #nosec G115 -- booking counts stay far below int32
		TotalSpent:    d.TotalSpent,
		TierName:      tier,
		LastBookingAt: pgconv.TimeToPgtype(d.LastBookingAt),
	}

	affected, err := r.queries.ApplyClientSettlement(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to apply client settlement", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) CreditReferrer(ctx context.Context, tx sqlc.DBTX, referralCode string, points int64, at time.Time) (bool, error) {
	params := sqlc.CreditReferrerParams{
		ReferralCode: client.NormalizeReferralCode(referralCode),
		Points:       points,
		UpdatedAt:    pgconv.TimeToPgtype(at),
	}

	affected, err := r.queries.CreditReferrer(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to credit referrer", err)
	}
	return affected > 0, nil
}
