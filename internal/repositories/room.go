package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
)

// RoomReadRepository handles room lookups.
type RoomReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoomReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoomReadRepository {
	return &RoomReadRepository{db: db, txGetter: txGetter}
}

func (r *RoomReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetActiveByID returns an active room by ID. Returns (nil, nil) when the
// room is absent or soft-deleted.
func (r *RoomReadRepository) GetActiveByID(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, error) {
	const query = `
		SELECT id, name, display_name, description, creator_id, max_participants, is_active, created_at
		FROM rooms
		WHERE id = $1 AND is_active
	`
	return r.getRoom(ctx, query, roomID)
}

// GetActiveByIDForUpdate is GetActiveByID with a row lock. Join and delete run
// it inside their transaction so that membership checks for one room are
// serialized without blocking other rooms.
func (r *RoomReadRepository) GetActiveByIDForUpdate(ctx context.Context, roomID uuid.UUID) (*models.RoomDB, error) {
	const query = `
		SELECT id, name, display_name, description, creator_id, max_participants, is_active, created_at
		FROM rooms
		WHERE id = $1 AND is_active
		FOR UPDATE
	`
	return r.getRoom(ctx, query, roomID)
}

// GetActiveByName returns an active room by its unique name, (nil, nil) when absent.
func (r *RoomReadRepository) GetActiveByName(ctx context.Context, name string) (*models.RoomDB, error) {
	const query = `
		SELECT id, name, display_name, description, creator_id, max_participants, is_active, created_at
		FROM rooms
		WHERE name = $1 AND is_active
	`
	return r.getRoom(ctx, query, name)
}

func (r *RoomReadRepository) getRoom(ctx context.Context, query string, arg any) (*models.RoomDB, error) {
	var room models.RoomDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &room, query, arg)

	logger.Log.Infow("room query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListActive returns all active rooms with their current active member counts.
// The count is computed in the same query, never cached.
func (r *RoomReadRepository) ListActive(ctx context.Context) ([]models.RoomWithCount, error) {
	const query = `
		SELECT r.id, r.name, r.display_name, r.description, r.creator_id,
		       r.max_participants, r.is_active, r.created_at,
		       COUNT(m.id) FILTER (WHERE m.is_active) AS participant_count
		FROM rooms r
		LEFT JOIN room_memberships m ON m.room_id = r.id
		WHERE r.is_active
		GROUP BY r.id
		ORDER BY r.created_at
	`

	rooms := []models.RoomWithCount{}
	err := r.db.SelectContext(ctx, &rooms, query)

	logger.Log.Infow("room query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rooms),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomWriteRepository handles room inserts and deactivation.
type RoomWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoomWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoomWriteRepository {
	return &RoomWriteRepository{db: db, txGetter: txGetter}
}

func (r *RoomWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new active room and returns the stored row.
// Returns ErrUniqueViolation when an active room with the same name exists.
func (r *RoomWriteRepository) Save(ctx context.Context, name, displayName string, description *string, creatorID uuid.UUID, maxParticipants int) (*models.RoomDB, error) {
	const query = `
		INSERT INTO rooms (id, name, display_name, description, creator_id, max_participants, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW())
		RETURNING id, name, display_name, description, creator_id, max_participants, is_active, created_at
	`
	args := []any{uuid.New(), name, displayName, description, creatorID, maxParticipants}

	var room models.RoomDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &room, query, args...)

	logger.Log.Infow("room insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, creatorID, maxParticipants},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Deactivate soft-deletes a room. Returns the number of rows updated.
func (r *RoomWriteRepository) Deactivate(ctx context.Context, roomID uuid.UUID) (int64, error) {
	const query = `
		UPDATE rooms SET is_active = FALSE
		WHERE id = $1 AND is_active
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, roomID)

	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("room update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roomID},
		"result", affected,
		"error", err,
	)

	return affected, err
}
