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

func newMembershipServiceMocks(t *testing.T) (
	*gomock.Controller,
	*services.MockMemberGetter,
	*services.MockLockingRoomGetter,
	*services.MockMembershipReader,
	*services.MockMembershipWriter,
	*services.MockJoinTokenMinter,
	*services.MembershipService,
) {
	ctrl := gomock.NewController(t)
	users := services.NewMockMemberGetter(ctrl)
	rooms := services.NewMockLockingRoomGetter(ctrl)
	reader := services.NewMockMembershipReader(ctrl)
	writer := services.NewMockMembershipWriter(ctrl)
	tokens := services.NewMockJoinTokenMinter(ctrl)
	svc := services.NewMembershipService(users, rooms, reader, writer, tokens, nil)
	return ctrl, users, rooms, reader, writer, tokens, svc
}

func TestMembershipService_Join(t *testing.T) {
	ctrl, users, rooms, reader, writer, tokens, svc := newMembershipServiceMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	roomID := uuid.New()

	user := &models.UserDB{UserID: userID, Username: "alice", IsActive: true}
	room := &models.RoomDB{RoomID: roomID, Name: "standup", MaxParticipants: 2, IsActive: true}
	membership := &models.MembershipDB{MembershipID: uuid.New(), UserID: userID, RoomID: roomID, IsActive: true}
	credential := &models.JoinCredential{Token: "media-token", RoomName: "standup", ParticipantIdentity: userID.String()}

	t.Run("successful join", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		reader.EXPECT().GetActive(gomock.Any(), userID, roomID).Return(nil, nil)
		reader.EXPECT().CountActiveByRoom(gomock.Any(), roomID).Return(1, nil)
		writer.EXPECT().Save(gomock.Any(), userID, roomID).Return(membership, nil)
		tokens.EXPECT().MintJoinToken(gomock.Any(), userID.String(), "alice", "standup").Return(credential, nil)

		gotMembership, gotCredential, err := svc.Join(context.Background(), userID, roomID)
		assert.NoError(t, err)
		assert.Equal(t, membership, gotMembership)
		assert.Equal(t, credential, gotCredential)
	})

	t.Run("deactivated user", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})

	t.Run("room not found", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(nil, nil)

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrRoomNotFound)
	})

	t.Run("already a member", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		reader.EXPECT().GetActive(gomock.Any(), userID, roomID).Return(membership, nil)

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrAlreadyMember)
	})

	t.Run("room at capacity", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		reader.EXPECT().GetActive(gomock.Any(), userID, roomID).Return(nil, nil)
		reader.EXPECT().CountActiveByRoom(gomock.Any(), roomID).Return(2, nil)

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrRoomFull)
	})

	t.Run("duplicate insert maps to already member", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		reader.EXPECT().GetActive(gomock.Any(), userID, roomID).Return(nil, nil)
		reader.EXPECT().CountActiveByRoom(gomock.Any(), roomID).Return(0, nil)
		writer.EXPECT().Save(gomock.Any(), userID, roomID).Return(nil, repositories.ErrUniqueViolation)

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrAlreadyMember)
	})

	t.Run("credential minting failure", func(t *testing.T) {
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		rooms.EXPECT().GetActiveByIDForUpdate(gomock.Any(), roomID).Return(room, nil)
		reader.EXPECT().GetActive(gomock.Any(), userID, roomID).Return(nil, nil)
		reader.EXPECT().CountActiveByRoom(gomock.Any(), roomID).Return(0, nil)
		writer.EXPECT().Save(gomock.Any(), userID, roomID).Return(membership, nil)
		tokens.EXPECT().MintJoinToken(gomock.Any(), userID.String(), "alice", "standup").
			Return(nil, errors.New("connection refused"))

		_, _, err := svc.Join(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrMediaPlatformUnavailable)
	})
}

func TestMembershipService_Leave(t *testing.T) {
	ctrl, _, _, _, writer, _, svc := newMembershipServiceMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	roomID := uuid.New()

	t.Run("successful leave", func(t *testing.T) {
		writer.EXPECT().DeactivateActive(gomock.Any(), userID, roomID).Return(int64(1), nil)

		assert.NoError(t, svc.Leave(context.Background(), userID, roomID))
	})

	t.Run("no active membership", func(t *testing.T) {
		writer.EXPECT().DeactivateActive(gomock.Any(), userID, roomID).Return(int64(0), nil)

		err := svc.Leave(context.Background(), userID, roomID)
		assert.ErrorIs(t, err, services.ErrMembershipNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		writer.EXPECT().DeactivateActive(gomock.Any(), userID, roomID).Return(int64(0), errors.New("db error"))

		assert.Error(t, svc.Leave(context.Background(), userID, roomID))
	})
}
