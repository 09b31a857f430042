package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/cookie"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

var (
	errMissingToken = errs.New("access token required")
	errInvalidToken = errs.New("invalid or expired token")
	errMissingRole  = errs.New("role missing from context")
	errInsufficient = errs.New("insufficient permissions")
)

// intern < staff < admin
var roleHierarchy = map[user.Role]int{
	user.RoleIntern: 1,
	user.RoleStaff:  2,
	user.RoleAdmin:  3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token cookie or a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": userID.String(),
			"role":    role.String(),
		})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingRole, "Internal server error", nil)
			return
		}
		if !HasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficient, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func HasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
