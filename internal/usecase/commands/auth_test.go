//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-booking/internal/domain/user"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	staff := &queries.AuthorizedUserView{
		ID: uuid.New(), Email: "staff@studio.test", Name: "Staff", Role: queries.RoleStaff, IsActive: true,
	}
	req := reqdto.LoginRequest{Email: staff.Email, Password: "correct-horse"}

	t.Run("success: issues a token pair for the stored role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		readStore.EXPECT().FindByEmail(gomock.Any(), staff.Email).Return(staff, hash, nil)
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		res, err := cmds.Login(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, staff, res.User)
		claims, err := jwtService.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, staff.ID, claims.UserID)
		assert.Equal(t, string(user.RoleStaff), claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: unknown email reads as bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		readStore.EXPECT().FindByEmail(gomock.Any(), staff.Email).Return(nil, "", errors.New("no rows"))
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		_, err := cmds.Login(ctx, req)

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		readStore.EXPECT().FindByEmail(gomock.Any(), staff.Email).Return(staff, hash, nil)
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		_, err := cmds.Login(ctx, reqdto.LoginRequest{Email: staff.Email, Password: "wrong-horse"})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		inactive := *staff
		inactive.IsActive = false
		readStore.EXPECT().FindByEmail(gomock.Any(), staff.Email).Return(&inactive, hash, nil)
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		_, err := cmds.Login(ctx, req)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	userID := uuid.New()

	t.Run("success: picks up a role change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		refresh, err := jwtService.GenerateRefreshToken(userID, user.RoleStaff)
		require.NoError(t, err)
		readStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Role: queries.RoleIntern, IsActive: true}, nil)
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		pair, err := cmds.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, string(user.RoleIntern), claims.Role)
	})

	t.Run("error: access token is not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		access, err := jwtService.GenerateAccessToken(userID, user.RoleStaff)
		require.NoError(t, err)
		cmds := commands.NewAuthCommands(newMemStore(), queriesmock.NewMockUserReadStore(ctrl), jwtService)

		_, err = cmds.RefreshToken(ctx, access)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commands.NewAuthCommands(newMemStore(), queriesmock.NewMockUserReadStore(ctrl), jwtService)

		_, err := cmds.RefreshToken(ctx, "not.a.jwt")

		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("error: deactivated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockUserReadStore(ctrl)
		refresh, err := jwtService.GenerateRefreshToken(userID, user.RoleStaff)
		require.NoError(t, err)
		readStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Role: queries.RoleStaff}, nil)
		cmds := commands.NewAuthCommands(newMemStore(), readStore, jwtService)

		_, err = cmds.RefreshToken(ctx, refresh)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})
}
