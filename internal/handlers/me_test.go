package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/middlewares"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(&models.UserDB{
						UserID:   userID,
						Username: "john",
						Email:    "john@example.com",
						IsActive: true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user not found",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "User not found",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewMeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp UserResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID, resp.ID)
			assert.Equal(t, "john", resp.Username)
		})
	}
}
