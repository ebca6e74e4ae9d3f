package handlers

import (
	"bytes"
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

func TestCreateRoomHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorID := uuid.New()
	roomID := uuid.New()

	tests := []struct {
		name         string
		reqBody      CreateRoomRequest
		mockSetup    func(m *MockRoomCreator)
		expectedCode int
		expectedErr  string
		expectedErrCode string
		rawBody      bool
	}{
		{
			name: "success",
			reqBody: CreateRoomRequest{
				Name:            "standup",
				DisplayName:     "Daily Standup",
				MaxParticipants: 10,
			},
			mockSetup: func(m *MockRoomCreator) {
				m.EXPECT().
					Create(gomock.Any(), creatorID, "standup", "Daily Standup", nil, 10).
					Return(&models.RoomDB{
						RoomID:          roomID,
						Name:            "standup",
						DisplayName:     "Daily Standup",
						CreatorID:       creatorID,
						MaxParticipants: 10,
						IsActive:        true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "default max participants",
			reqBody: CreateRoomRequest{
				Name:        "standup",
				DisplayName: "Daily Standup",
			},
			mockSetup: func(m *MockRoomCreator) {
				m.EXPECT().
					Create(gomock.Any(), creatorID, "standup", "Daily Standup", nil, defaultMaxParticipants).
					Return(&models.RoomDB{
						RoomID:          roomID,
						Name:            "standup",
						DisplayName:     "Daily Standup",
						CreatorID:       creatorID,
						MaxParticipants: defaultMaxParticipants,
						IsActive:        true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "name taken",
			reqBody: CreateRoomRequest{
				Name:        "standup",
				DisplayName: "Daily Standup",
			},
			mockSetup: func(m *MockRoomCreator) {
				m.EXPECT().
					Create(gomock.Any(), creatorID, "standup", "Daily Standup", nil, defaultMaxParticipants).
					Return(nil, services.ErrRoomAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedErr:   "Room with this name already exists",
			expectedErrCode: "room_exists",
		},
		{
			name: "media platform down",
			reqBody: CreateRoomRequest{
				Name:        "standup",
				DisplayName: "Daily Standup",
			},
			mockSetup: func(m *MockRoomCreator) {
				m.EXPECT().
					Create(gomock.Any(), creatorID, "standup", "Daily Standup", nil, defaultMaxParticipants).
					Return(nil, services.ErrMediaPlatformUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedErr:   "Media platform unavailable, try again",
			expectedErrCode: "media_unavailable",
		},
		{
			name: "missing name",
			reqBody: CreateRoomRequest{
				DisplayName: "Daily Standup",
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Name and display_name are required",
		},
		{
			name: "negative max participants",
			reqBody: CreateRoomRequest{
				Name:            "standup",
				DisplayName:     "Daily Standup",
				MaxParticipants: -1,
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "max_participants must be positive",
		},
		{
			name: "internal server error",
			reqBody: CreateRoomRequest{
				Name:        "standup",
				DisplayName: "Daily Standup",
			},
			mockSetup: func(m *MockRoomCreator) {
				m.EXPECT().
					Create(gomock.Any(), creatorID, "standup", "Daily Standup", nil, defaultMaxParticipants).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRoomCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateRoomHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(bodyBytes))
			}
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), creatorID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				assert.Equal(t, tt.expectedErrCode, resp.Code)
				return
			}

			var resp RoomResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, roomID, resp.ID)
			assert.Equal(t, "standup", resp.Name)
			assert.Equal(t, creatorID, resp.CreatorID)
			assert.Zero(t, resp.ParticipantCount)
		})
	}
}
