package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(tokener *MockTokener, auth *MockAuthenticator)
		expectedCode int
		expectNext   bool
	}{
		{
			name: "valid token",
			mockSetup: func(tokener *MockTokener, auth *MockAuthenticator) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				auth.EXPECT().
					Authenticate(gomock.Any(), "token").
					Return(&models.UserDB{UserID: userID, IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name: "missing token",
			mockSetup: func(tokener *MockTokener, auth *MockAuthenticator) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "authentication fails",
			mockSetup: func(tokener *MockTokener, auth *MockAuthenticator) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				auth.EXPECT().
					Authenticate(gomock.Any(), "token").
					Return(nil, errors.New("invalid or expired token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockTokener(ctrl)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(tokener, auth)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, userID, GetUserIDFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokener, auth)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, uuid.Nil, GetUserIDFromContext(req.Context()))
}
