//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifetimes struct{}

func (lifetimes) AccessTokenDuration() time.Duration  { return 15 * time.Minute }
func (lifetimes) RefreshTokenDuration() time.Duration { return 168 * time.Hour }

func TestWriter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := cookie.NewWriter(config.CookieConfig{Secure: true, SameSite: "strict"}, lifetimes{})

	t.Run("set tokens", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

		w.SetTokens(c, "access", "refresh")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		byName := map[string]*http.Cookie{}
		for _, ck := range cookies {
			byName[ck.Name] = ck
		}
		assert.Equal(t, "access", byName[cookie.AccessTokenCookieName].Value)
		assert.Equal(t, 900, byName[cookie.AccessTokenCookieName].MaxAge)
		assert.Equal(t, "/api/auth", byName[cookie.RefreshTokenCookieName].Path)
		assert.True(t, byName[cookie.RefreshTokenCookieName].HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, byName[cookie.AccessTokenCookieName].SameSite)
	})

	t.Run("clear expires both", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)

		w.Clear(c)

		for _, ck := range rec.Result().Cookies() {
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
		}
	})
}
