package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/repositories"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"
	"github.com/stretchr/testify/assert"
)

func newRoomServiceMocks(t *testing.T) (
	*gomock.Controller,
	*services.MockRoomReader,
	*services.MockRoomWriter,
	*services.MockMemberLister,
	*services.MockRoomMembershipCloser,
	*services.MockRoomProvisioner,
	*services.RoomService,
) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockRoomReader(ctrl)
	writer := services.NewMockRoomWriter(ctrl)
	members := services.NewMockMemberLister(ctrl)
	memberships := services.NewMockRoomMembershipCloser(ctrl)
	rtc := services.NewMockRoomProvisioner(ctrl)
	svc := services.NewRoomService(reader, writer, members, memberships, rtc, nil)
	return ctrl, reader, writer, members, memberships, rtc, svc
}

func TestRoomService_Create(t *testing.T) {
	ctrl, reader, writer, _, _, rtc, svc := newRoomServiceMocks(t)
	defer ctrl.Finish()

	creatorID := uuid.New()
	roomID := uuid.New()

	room := &models.RoomDB{
		RoomID:          roomID,
		Name:            "standup",
		DisplayName:     "Daily Standup",
		CreatorID:       creatorID,
		MaxParticipants: 10,
		IsActive:        true,
	}

	t.Run("successful creation", func(t *testing.T) {
		reader.EXPECT().GetActiveByName(gomock.Any(), "standup").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), "standup", "Daily Standup", nil, creatorID, 10).Return(room, nil)
		rtc.EXPECT().CreateRoom(gomock.Any(), "standup", 10).Return(nil)

		got, err := svc.Create(context.Background(), creatorID, "standup", "Daily Standup", nil, 10)
		assert.NoError(t, err)
		assert.Equal(t, room, got)
	})

	t.Run("name already taken", func(t *testing.T) {
		reader.EXPECT().GetActiveByName(gomock.Any(), "standup").Return(room, nil)

		got, err := svc.Create(context.Background(), creatorID, "standup", "Daily Standup", nil, 10)
		assert.ErrorIs(t, err, services.ErrRoomAlreadyExists)
		assert.Nil(t, got)
	})

	t.Run("concurrent creation races past pre-check", func(t *testing.T) {
		reader.EXPECT().GetActiveByName(gomock.Any(), "standup").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), "standup", "Daily Standup", nil, creatorID, 10).
			Return(nil, repositories.ErrUniqueViolation)

		got, err := svc.Create(context.Background(), creatorID, "standup", "Daily Standup", nil, 10)
		assert.ErrorIs(t, err, services.ErrRoomAlreadyExists)
		assert.Nil(t, got)
	})

	t.Run("media platform provisioning fails", func(t *testing.T) {
		reader.EXPECT().GetActiveByName(gomock.Any(), "standup").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), "standup", "Daily Standup", nil, creatorID, 10).Return(room, nil)
		rtc.EXPECT().CreateRoom(gomock.Any(), "standup", 10).Return(errors.New("connection refused"))

		got, err := svc.Create(context.Background(), creatorID, "standup", "Daily Standup", nil, 10)
		assert.ErrorIs(t, err, services.ErrMediaPlatformUnavailable)
		assert.Nil(t, got)
	})
}

func TestRoomService_List(t *testing.T) {
	ctrl, reader, _, _, _, _, svc := newRoomServiceMocks(t)
	defer ctrl.Finish()

	rooms := []models.RoomWithCount{
		{RoomDB: models.RoomDB{RoomID: uuid.New(), Name: "standup"}, ParticipantCount: 2},
	}

	t.Run("success", func(t *testing.T) {
		reader.EXPECT().ListActive(gomock.Any()).Return(rooms, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, rooms, got)
	})

	t.Run("reader error", func(t *testing.T) {
		reader.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestRoomService_Get(t *testing.T) {
	ctrl, reader, _, members, _, _, svc := newRoomServiceMocks(t)
	defer ctrl.Finish()

	roomID := uuid.New()
	room := &models.RoomDB{RoomID: roomID, Name: "standup", IsActive: true}
	roster := []models.RoomMemberDB{{UserID: uuid.New(), Username: "alice"}}

	t.Run("success", func(t *testing.T) {
		reader.EXPECT().GetActiveByID(gomock.Any(), roomID).Return(room, nil)
		members.EXPECT().ListActiveMembers(gomock.Any(), roomID).Return(roster, nil)

		gotRoom, gotMembers, err := svc.Get(context.Background(), roomID)
		assert.NoError(t, err)
		assert.Equal(t, room, gotRoom)
		assert.Equal(t, roster, gotMembers)
	})

	t.Run("room not found", func(t *testing.T) {
		reader.EXPECT().GetActiveByID(gomock.Any(), roomID).Return(nil, nil)

		gotRoom, gotMembers, err := svc.Get(context.Background(), roomID)
		assert.ErrorIs(t, err, services.ErrRoomNotFound)
		assert.Nil(t, gotRoom)
		assert.Nil(t, gotMembers)
	})
}

func TestRoomService_Delete(t *testing.T) {
	ctrl, reader, writer, _, memberships, rtc, svc := newRoomServiceMocks(t)
	defer ctrl.Finish()

	creatorID := uuid.New()
	strangerID := uuid.New()
	roomID := uuid.New()
	room := &models.RoomDB{RoomID: roomID, Name: "standup", CreatorID: creatorID, IsActive: true}

	t.Run("creator deletes room and memberships close", func(t *testing.T) {
		reader.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		writer.EXPECT().Deactivate(gomock.Any(), roomID).Return(int64(1), nil)
		memberships.EXPECT().DeactivateByRoom(gomock.Any(), roomID).Return(int64(3), nil)
		rtc.EXPECT().RevokeRoom(gomock.Any(), "standup").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), roomID, creatorID))
	})

	t.Run("room not found", func(t *testing.T) {
		reader.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(nil, nil)

		err := svc.Delete(context.Background(), roomID, creatorID)
		assert.ErrorIs(t, err, services.ErrRoomNotFound)
	})

	t.Run("requester is not the creator", func(t *testing.T) {
		reader.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)

		err := svc.Delete(context.Background(), roomID, strangerID)
		assert.ErrorIs(t, err, services.ErrNotRoomCreator)
	})

	t.Run("media platform revoke fails", func(t *testing.T) {
		reader.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		writer.EXPECT().Deactivate(gomock.Any(), roomID).Return(int64(1), nil)
		memberships.EXPECT().DeactivateByRoom(gomock.Any(), roomID).Return(int64(0), nil)
		rtc.EXPECT().RevokeRoom(gomock.Any(), "standup").Return(errors.New("connection refused"))

		err := svc.Delete(context.Background(), roomID, creatorID)
		assert.ErrorIs(t, err, services.ErrMediaPlatformUnavailable)
	})
}
