package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	ListFirstPage(ctx context.Context, limit int32) ([]*TransactionView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TransactionView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TransactionView, error)
}

type LedgerQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TransactionView, error)
}

type ledgerQueriesImpl struct {
	repo TransactionReadStore
}

func NewLedgerQueries(repo TransactionReadStore) LedgerQueries {
	return &ledgerQueriesImpl{repo: repo}
}

func (q *ledgerQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*TransactionView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
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

func (q *ledgerQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TransactionView, error) {
	return q.repo.ListByBooking(ctx, bookingID)
}
