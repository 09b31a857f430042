package booking

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrInvalidParticipants  = errors.New("participants must be at least 1")
	ErrInvalidSchedule      = errors.New("scheduled time is required")
	ErrInvalidAmountPaid    = errors.New("amount paid must not be negative")
	ErrInvalidCode          = errors.New("invalid booking code")
	ErrInvalidClientName    = errors.New("client name is required")
	ErrDeliveryLinkRequired = errors.New("delivery link is required")
	ErrRescheduleDate       = errors.New("requested date must differ from the current schedule")
)

const (
	codePrefix   = "SB-"
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

var codeRegex = regexp.MustCompile(`^SB-[A-Z2-9]{8}$`)

// Code is the opaque public identifier handed to clients.
type Code struct {
	value string
}

func NewCode() (Code, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return Code{}, err
	}
	var sb strings.Builder
	sb.WriteString(codePrefix)
	for _, b := range buf {
		sb.WriteByte(codeAlphabet[int(b)%len(codeAlphabet)])
	}
	return Code{value: sb.String()}, nil
}

func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func IsValidCode(s string) bool {
	return codeRegex.MatchString(s)
}

func (c Code) String() string {
	return c.value
}

type ClientInfo struct {
	Name  string
	Email string
	Phone string
}

type AddOn struct {
	ID    uuid.UUID
	Name  string
	Price int64
}
