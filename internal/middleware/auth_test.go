package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpath/fitpath/internal/middleware"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
		mockIsLogged       bool
		mockIsLoggedErr    error
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "CatalogIsPublic",
			path:               "/catalog/categories",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "LoginIsPublic",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "ProtectedPathWithoutToken",
			path:               "/assessment",
			method:             "POST",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/assessment",
			method:             "POST",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockIsLogged:       true,
		},
		{
			name:               "InvalidToken",
			path:               "/progression/rec-1/advance",
			method:             "POST",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockIsLogged:       false,
		},
		{
			name:               "OptionsAlwaysAllowed",
			path:               "/assessment",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-FITPATH-TOKEN", tc.token)

				mockLoginChecker.EXPECT().
					IsLogged(gomock.Any(), tc.token).
					Return(tc.mockIsLogged, tc.mockIsLoggedErr).AnyTimes()
			}

			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}
