package usecase

import (
	"studio-booking/internal/domain/user"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token to the caller's id and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService jwt.Service
}

func NewTokenValidator(jwtService jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
