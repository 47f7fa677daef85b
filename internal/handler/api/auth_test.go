//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"goalkick/internal/domain/staff"
	"goalkick/internal/handler/api"
	resdto "goalkick/internal/handler/dto/response"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/cookie"
	"goalkick/internal/testutil"
	"goalkick/internal/testutil/httptest"
	commandsmock "goalkick/internal/testutil/mock/commands"
	"goalkick/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	h := api.NewAuthHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/logout", h.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		StaffID:     uuid.New(),
		Role:        staff.RoleGatekeeper,
		AccessToken: "test-jwt-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "gate1@goalkick.test", "password": "password123"}

	s.Run("success: token in body and HttpOnly cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "gate1@goalkick.test", "password123").Return(loginResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("gatekeeper", res.Role)
		s.Equal("test-jwt-token", res.AccessToken)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
		s.Greater(c.MaxAge, 0)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "email boundary invalid", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password 8 chars OK", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(loginResult(), nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
			{"staff inactive", commands.ErrStaffInactive, http.StatusForbidden, "Account is disabled"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Less(c.MaxAge, 0)
}
