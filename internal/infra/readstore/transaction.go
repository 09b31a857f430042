package readstore

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionReadQueries interface {
	ListTransactionsFirstPage(ctx context.Context, db sqlc.DBTX, limitCount int32) ([]sqlc.Transactions, error)
	ListTransactionsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsKeysetParams) ([]sqlc.Transactions, error)
	ListTransactionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID pgtype.UUID) ([]sqlc.Transactions, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransactionsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions first page", err)
	}
	return toTransactionViews(rows), nil
}

func (r *TransactionReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	params := sqlc.ListTransactionsKeysetParams{
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	}

	rows, err := r.queries.ListTransactionsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions with keyset", err)
	}
	return toTransactionViews(rows), nil
}

func (r *TransactionReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransactionsByBooking(ctx, r.db, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by booking", err)
	}
	return toTransactionViews(rows), nil
}

func toTransactionViews(rows []sqlc.Transactions) []*queries.TransactionView {
	result := make([]*queries.TransactionView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TransactionView{
			ID:          row.ID,
			Type:        row.Type,
			Amount:      row.Amount,
			Description: row.Description,
			BookingID:   pgconv.UUIDPtrFromPgtype(row.BookingID),
			CreatedBy:   pgconv.UUIDPtrFromPgtype(row.CreatedBy),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
