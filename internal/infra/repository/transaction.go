package repository

import (
	"context"

	"studio-booking/internal/domain/ledger"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error
}

type TransactionRepository struct {
	queries TransactionWriteQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

// Append inserts a ledger row. A second income row for the same booking is
// rejected by a unique index and surfaces as KindDuplicateKey.
func (r *TransactionRepository) Append(ctx context.Context, tx sqlc.DBTX, t *ledger.Transaction) error {
	params := sqlc.CreateTransactionParams{
		ID:          t.ID(),
		Type:        string(t.Type()),
		Amount:      t.Amount(),
		Description: t.Description(),
		BookingID:   pgconv.UUIDPtrToPgtype(t.BookingID()),
		CreatedBy:   pgconv.UUIDPtrToPgtype(t.CreatedBy()),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}

	if err := r.queries.CreateTransaction(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}
