package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/cookie"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoRefreshToken = errs.New("refresh token required")

type AuthHandler struct {
	cmds    commands.AuthCommands
	q       queries.UserQueries
	cookies *cookie.Writer
	tokens  cookie.TokenLifetimes
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cookies *cookie.Writer, tokens cookie.TokenLifetimes) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cookies: cookies, tokens: tokens}
}

// @Summary Staff login
// @Description Login with email and password. Tokens are set as cookies and the access token is also returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.cookies.SetTokens(c, result.TokenPair.AccessToken, result.TokenPair.RefreshToken)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		ExpiresIn:   int64(h.tokens.AccessTokenDuration().Seconds()),
		User:        resdto.FromUserView(result.User),
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or a refresh token in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoRefreshToken, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errs.Is(err, commands.ErrTokenGeneration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			h.cookies.Clear(c)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		}
		return
	}

	h.cookies.SetTokens(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   int64(h.tokens.AccessTokenDuration().Seconds()),
	})
}

// @Summary Logout
// @Description Clear the auth cookies. Tokens are stateless and expire on their own.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
