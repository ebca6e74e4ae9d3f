package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/sbilibin2017/gw-video-rooms/internal/repositories"
)

// Error variables
var (
	ErrAlreadyMember      = errors.New("already a member of this room")
	ErrRoomFull           = errors.New("room has reached its participant limit")
	ErrMembershipNotFound = errors.New("no active membership for this room")
)

// LockingRoomGetter reads a room under a row lock, serializing concurrent
// joins for the same room.
type LockingRoomGetter interface {
	GetActiveByIDForUpdate(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, error)
}

// MembershipReader defines read-only operations for memberships.
type MembershipReader interface {
	GetActive(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, error)
	CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error)
}

// MembershipWriter defines write operations for memberships.
type MembershipWriter interface {
	Save(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, error)
	DeactivateActive(ctx context.Context, userID, roomID uuid.UUID) (int64, error)
}

// JoinTokenMinter mints scoped media-session credentials.
type JoinTokenMinter interface {
	MintJoinToken(ctx context.Context, identity, name, roomName string) (*models.JoinCredential, error)
}

// MemberGetter resolves the joining user's identity.
type MemberGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// MembershipService drives the membership state machine: Absent -> Active on
// join, Active -> Absent on leave. Each visit is a fresh row; history is
// never rewritten.
type MembershipService struct {
	users       MemberGetter
	rooms       LockingRoomGetter
	reader      MembershipReader
	writer      MembershipWriter
	tokens      JoinTokenMinter
	kafkaWriter KafkaWriter
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	users MemberGetter,
	rooms LockingRoomGetter,
	reader MembershipReader,
	writer MembershipWriter,
	tokens JoinTokenMinter,
	kafkaWriter KafkaWriter,
) *MembershipService {
	return &MembershipService{
		users:       users,
		rooms:       rooms,
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		kafkaWriter: kafkaWriter,
	}
}

// Join adds the user to the room and mints a media-session credential.
//
// It must run inside a request transaction: the room row is locked FOR UPDATE
// before the existence and capacity checks, so two concurrent joins for the
// same room cannot both observe a free slot. A credential minting failure
// surfaces as ErrMediaPlatformUnavailable, which rolls back the membership
// insert: membership without a usable credential is not a valid end state.
func (s *MembershipService) Join(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, *models.JoinCredential, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil, ErrUserDoesNotExist
	}

	room, err := s.rooms.GetActiveByIDForUpdate(ctx, roomID)
	if err != nil {
		logger.Log.Errorw("failed to get room", "room_id", roomID, "err", err)
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, ErrRoomNotFound
	}

	existing, err := s.reader.GetActive(ctx, userID, roomID)
	if err != nil {
		logger.Log.Errorw("failed to check membership", "user_id", userID, "room_id", roomID, "err", err)
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrAlreadyMember
	}

	count, err := s.reader.CountActiveByRoom(ctx, roomID)
	if err != nil {
		logger.Log.Errorw("failed to count members", "room_id", roomID, "err", err)
		return nil, nil, err
	}
	if count >= room.MaxParticipants {
		return nil, nil, ErrRoomFull
	}

	membership, err := s.writer.Save(ctx, userID, roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, nil, ErrAlreadyMember
		}
		logger.Log.Errorw("failed to save membership", "user_id", userID, "room_id", roomID, "err", err)
		return nil, nil, err
	}

	credential, err := s.tokens.MintJoinToken(ctx, user.UserID.String(), user.Username, room.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMediaPlatformUnavailable, err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EventUserJoined, roomID, userID)

	return membership, credential, nil
}

// Leave closes the user's active visit: stamps left_at and clears the active
// flag. The media layer is not contacted; disconnecting is the client's job.
func (s *MembershipService) Leave(ctx context.Context, userID, roomID uuid.UUID) error {
	affected, err := s.writer.DeactivateActive(ctx, userID, roomID)
	if err != nil {
		logger.Log.Errorw("failed to deactivate membership", "user_id", userID, "room_id", roomID, "err", err)
		return err
	}
	if affected == 0 {
		return ErrMembershipNotFound
	}

	publishEvent(ctx, s.kafkaWriter, models.EventUserLeft, roomID, userID)

	return nil
}
