package client

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail        = errors.New("invalid client email")
	ErrInvalidName         = errors.New("client name is required")
	ErrInsufficientPoints  = errors.New("insufficient loyalty points")
	ErrInvalidPoints       = errors.New("points must be positive")
	ErrAlreadyReferred     = errors.New("client already has a referrer")
	ErrReferralNotEligible = errors.New("referral only applies to a first booking")
	ErrSelfReferral        = errors.New("client cannot refer themselves")
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// NormalizeEmail trims and lower-cases an address. Clients are keyed by the result.
func NormalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return s, nil
}

const (
	referralPrefixLen  = 4
	referralSuffixLen  = 4
	referralAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referralFallbackID = "CLNT"
)

// NewReferralCode derives a shareable code from the client's name, e.g. "RINA-7K2Q".
func NewReferralCode(name string) (string, error) {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		prefix.WriteRune(r)
		if prefix.Len() == referralPrefixLen {
			break
		}
	}
	p := prefix.String()
	if len(p) < 2 {
		p = referralFallbackID
	}

	buf := make([]byte, referralSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	suffix := make([]byte, referralSuffixLen)
	for i, b := range buf {
		suffix[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}
	return p + "-" + string(suffix), nil
}

// NormalizeReferralCode is used for every lookup by code.
func NormalizeReferralCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
