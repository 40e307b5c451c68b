//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"resource-booking-api/internal/handler/dto/request"
	resdto "resource-booking-api/internal/handler/dto/response"
	"resource-booking-api/tests/common/authtest"
	"resource-booking-api/tests/common/dbtest"
	"resource-booking-api/tests/common/httptest"
	"resource-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", "staff")
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "general_admin")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "staff")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "staff@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "staff@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp resdto.LoginResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
				require.NotEmpty(s.T(), resp.AccessToken)
				require.Equal(s.T(), tt.email, resp.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(s.T(), accessCookie)
				require.NotEmpty(s.T(), accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the logged-in user", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		require.Equal(s.T(), "admin@example.com", resp.Email)
		require.True(s.T(), resp.IsGeneralAdmin)
	})

	s.Run("rejects requests without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejects a deactivated token holder", func() {
		token := authtest.LoginUser(s.T(), s.Router, "staff@example.com", "password123")

		ctx := s.T().Context()
		_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'staff@example.com'")
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears session cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "staff@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		authtest.LogoutUser(s.T(), s.Router, httptest.ExtractCookies(w))
	})
}
