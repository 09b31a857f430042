//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/tests/common/authtest"
	"studio-booking/tests/common/dbtest"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "admin@studio.test", string(user.RoleAdmin))
	dbtest.CreateTestUser(t, s.DB, "staff@studio.test", string(user.RoleStaff))
	dbtest.CreateTestUser(t, s.DB, "intern@studio.test", string(user.RoleIntern))
	dbtest.CreateTestUser(t, s.DB, "inactive@studio.test", string(user.RoleStaff))

	_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@studio.test'")
	require.NoError(t, err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedRole   user.Role
	}{
		{name: "admin logs in", email: "admin@studio.test", password: dbtest.TestPassword, expectedStatus: http.StatusOK, expectedRole: user.RoleAdmin},
		{name: "intern logs in", email: "intern@studio.test", password: dbtest.TestPassword, expectedStatus: http.StatusOK, expectedRole: user.RoleIntern},
		{name: "unknown user", email: "nobody@studio.test", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "staff@studio.test", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@studio.test", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "staff@studio.test", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Positive(t, res.ExpiresIn)
			require.NotNil(t, res.User)
			require.Equal(t, string(tt.expectedRole), res.User.Role)

			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLogin *time.Time
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin)
		})
	}
}

func (s *authSuite) TestRefresh() {
	login := func(t *testing.T, email string) []*http.Cookie {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: email, Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return httptest.ExtractCookies(w)
	}

	s.Run("valid refresh cookie", func() {
		t := s.T()
		cookies := login(t, "staff@studio.test")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")

		var res resdto.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
		require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("user deactivated after login", func() {
		t := s.T()
		cookies := login(t, "staff@studio.test")
		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'staff@studio.test'")
		require.NoError(t, err)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("no token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("garbage token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the logged in user", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "intern@studio.test", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "intern@studio.test", res.Email)
		require.Equal(t, string(user.RoleIntern), res.Role)
		require.True(t, res.IsActive)
	})

	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "admin@studio.test", string(user.RoleAdmin))
		token := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("no token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookies", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@studio.test", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		authtest.LogoutUser(t, s.Router, cookies)
	})
}

func (s *authSuite) TestRoleGate() {
	tests := []struct {
		name           string
		email          string
		method         string
		path           string
		body           any
		expectedStatus int
	}{
		{name: "intern reads settings", email: "intern@studio.test", method: http.MethodGet, path: "/api/admin/settings/loyalty", expectedStatus: http.StatusOK},
		{name: "intern cannot update settings", email: "intern@studio.test", method: http.MethodPut, path: "/api/admin/settings/loyalty", body: map[string]any{}, expectedStatus: http.StatusForbidden},
		{name: "staff cannot update settings", email: "staff@studio.test", method: http.MethodPut, path: "/api/admin/settings/loyalty", body: map[string]any{}, expectedStatus: http.StatusForbidden},
		{name: "intern cannot read the push key", email: "intern@studio.test", method: http.MethodGet, path: "/api/admin/push-subscriptions/key", expectedStatus: http.StatusForbidden},
		{name: "staff reads the push key", email: "staff@studio.test", method: http.MethodGet, path: "/api/admin/push-subscriptions/key", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := authtest.LoginUser(t, s.Router, tt.email, dbtest.TestPassword)

			w := httptest.PerformRequest(t, s.Router, tt.method, tt.path, tt.body, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
