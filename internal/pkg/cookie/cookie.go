package cookie

import (
	"net/http"
	"strings"
	"time"

	"studio-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessPath = "/"
	// The refresh token is only ever sent to the auth endpoints.
	refreshPath = "/api/auth"
)

type TokenLifetimes interface {
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// Writer sets and clears the auth cookies with the configured attributes.
type Writer struct {
	cfg       config.CookieConfig
	lifetimes TokenLifetimes
}

func NewWriter(cfg config.CookieConfig, lifetimes TokenLifetimes) *Writer {
	return &Writer{cfg: cfg, lifetimes: lifetimes}
}

func (w *Writer) SetTokens(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(sameSite(w.cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, accessToken, int(w.lifetimes.AccessTokenDuration().Seconds()),
		accessPath, w.cfg.Domain, w.cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, refreshToken, int(w.lifetimes.RefreshTokenDuration().Seconds()),
		refreshPath, w.cfg.Domain, w.cfg.Secure, true)
}

func (w *Writer) Clear(c *gin.Context) {
	c.SetSameSite(sameSite(w.cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, accessPath, w.cfg.Domain, w.cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, refreshPath, w.cfg.Domain, w.cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
