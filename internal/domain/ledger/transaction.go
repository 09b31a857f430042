package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	ErrInvalidType   = errors.New("invalid transaction type")
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is an append-only money movement, optionally tied to a booking.
type Transaction struct {
	id          uuid.UUID
	txType      Type
	amount      int64
	description string
	bookingID   *uuid.UUID
	createdBy   *uuid.UUID
	createdAt   time.Time
}

func New(txType Type, amount int64, description string, bookingID, createdBy *uuid.UUID, now time.Time) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, ErrInvalidType
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		id:          uuid.New(),
		txType:      txType,
		amount:      amount,
		description: strings.TrimSpace(description),
		bookingID:   bookingID,
		createdBy:   createdBy,
		createdAt:   now,
	}, nil
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) Type() Type            { return t.txType }
func (t *Transaction) Amount() int64         { return t.amount }
func (t *Transaction) Description() string   { return t.description }
func (t *Transaction) BookingID() *uuid.UUID { return t.bookingID }
func (t *Transaction) CreatedBy() *uuid.UUID { return t.createdBy }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
