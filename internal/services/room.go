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
	ErrRoomAlreadyExists = errors.New("room with this name already exists")
	ErrRoomNotFound      = errors.New("room not found")
	ErrNotRoomCreator    = errors.New("only the room creator can delete the room")

	// ErrMediaPlatformUnavailable marks a transient failure talking to the
	// media platform. The local transaction is rolled back, so the request
	// is safe to retry.
	ErrMediaPlatformUnavailable = errors.New("media platform unavailable")
)

// RoomReader defines read-only operations for rooms.
type RoomReader interface {
	GetActiveByID(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, error)
	GetActiveByIDForUpdate(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, error)
	GetActiveByName(ctx context.Context, name string) (*models.RoomDB, error)
	ListActive(ctx context.Context) ([]models.RoomWithCount, error)
}

// RoomWriter defines write operations for rooms.
type RoomWriter interface {
	Save(ctx context.Context, name, displayName string, description *string, creatorID uuid.UUID, maxParticipants int) (*models.RoomDB, error)
	Deactivate(ctx context.Context, roomID uuid.UUID) (int64, error)
}

// MemberLister lists the active members of a room.
type MemberLister interface {
	ListActiveMembers(ctx context.Context, roomID uuid.UUID) ([]models.RoomMemberDB, error)
}

// RoomMembershipCloser closes all active memberships of a room.
type RoomMembershipCloser interface {
	DeactivateByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
}

// RoomProvisioner manages rooms on the media platform.
type RoomProvisioner interface {
	CreateRoom(ctx context.Context, roomName string, maxParticipants int) error
	RevokeRoom(ctx context.Context, roomName string) error
}

// RoomService handles the room lifecycle: create, list, get, delete.
type RoomService struct {
	reader      RoomReader
	writer      RoomWriter
	members     MemberLister
	memberships RoomMembershipCloser
	rtc         RoomProvisioner
	kafkaWriter KafkaWriter
}

// NewRoomService creates a new RoomService.
func NewRoomService(
	reader RoomReader,
	writer RoomWriter,
	members MemberLister,
	memberships RoomMembershipCloser,
	rtc RoomProvisioner,
	kafkaWriter KafkaWriter,
) *RoomService {
	return &RoomService{
		reader:      reader,
		writer:      writer,
		members:     members,
		memberships: memberships,
		rtc:         rtc,
		kafkaWriter: kafkaWriter,
	}
}

// Create persists a new active room owned by creatorID and provisions it on
// the media platform. Provisioning failure rolls the insert back.
func (s *RoomService) Create(ctx context.Context, creatorID uuid.UUID, name, displayName string, description *string, maxParticipants int) (*models.RoomDB, error) {
	existing, err := s.reader.GetActiveByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check room exists", "name", name, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoomAlreadyExists
	}

	room, err := s.writer.Save(ctx, name, displayName, description, creatorID, maxParticipants)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrRoomAlreadyExists
		}
		logger.Log.Errorw("failed to save room", "name", name, "err", err)
		return nil, err
	}

	if err := s.rtc.CreateRoom(ctx, room.Name, maxParticipants); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaPlatformUnavailable, err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EventRoomCreated, room.RoomID, creatorID)

	return room, nil
}

// List returns all active rooms with their current active member counts.
func (s *RoomService) List(ctx context.Context) ([]models.RoomWithCount, error) {
	rooms, err := s.reader.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list rooms", "err", err)
		return nil, err
	}
	return rooms, nil
}

// Get returns an active room and its current members ordered by join time.
func (s *RoomService) Get(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, []models.RoomMemberDB, error) {
	room, err := s.reader.GetActiveByID(ctx, roomID)
	if err != nil {
		logger.Log.Errorw("failed to get room", "room_id", roomID, "err", err)
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, ErrRoomNotFound
	}

	members, err := s.members.ListActiveMembers(ctx, roomID)
	if err != nil {
		logger.Log.Errorw("failed to list room members", "room_id", roomID, "err", err)
		return nil, nil, err
	}

	return room, members, nil
}

// Delete soft-deletes a room and closes every active membership in it, so no
// active membership ever references an inactive room. Only the creator may
// delete. The media platform room is revoked in the same request; revocation
// failure rolls the whole deletion back.
func (s *RoomService) Delete(ctx context.Context, roomID, requesterID uuid.UUID) error {
	room, err := s.reader.GetActiveByIDForUpdate(ctx, roomID)
	if err != nil {
		logger.Log.Errorw("failed to get room", "room_id", roomID, "err", err)
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if room.CreatorID != requesterID {
		return ErrNotRoomCreator
	}

	if _, err := s.writer.Deactivate(ctx, roomID); err != nil {
		logger.Log.Errorw("failed to deactivate room", "room_id", roomID, "err", err)
		return err
	}

	if _, err := s.memberships.DeactivateByRoom(ctx, roomID); err != nil {
		logger.Log.Errorw("failed to deactivate room memberships", "room_id", roomID, "err", err)
		return err
	}

	if err := s.rtc.RevokeRoom(ctx, room.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrMediaPlatformUnavailable, err)
	}

	publishEvent(ctx, s.kafkaWriter, models.EventRoomDeleted, roomID, requesterID)

	return nil
}
