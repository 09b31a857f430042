package commands

import (
	"context"
	"log/slog"

	"studio-booking/internal/domain/user"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	staff, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(staff.ID, staff.Role)
	if err != nil {
		return nil, err
	}

	// last_login is bookkeeping; a failed update does not fail the login.
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), staff.ID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", staff.ID, "error", err.Error())
	}

	return &LoginResult{User: staff, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role comes from the stored user so demotions apply on the next refresh.
	staff, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || staff == nil {
		return nil, queries.ErrUserNotFound
	}
	if !staff.IsActive {
		return nil, queries.ErrUserInactive
	}

	return a.issueTokens(staff.ID, staff.Role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, roleName string) (*TokenPair, error) {
	role, err := user.NewRole(roleName)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	staff, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || staff == nil {
		// Same error as a password mismatch so emails cannot be enumerated.
		return nil, ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, queries.ErrUserInactive
	}
	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return staff, nil
}
