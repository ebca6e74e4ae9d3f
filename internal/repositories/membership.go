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

// MembershipReadRepository handles membership lookups. All methods run on the
// request transaction when one is present, so join can evaluate the existence
// and capacity checks under the room row lock.
type MembershipReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMembershipReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MembershipReadRepository {
	return &MembershipReadRepository{db: db, txGetter: txGetter}
}

func (r *MembershipReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetActive returns the active membership for (user, room), (nil, nil) when absent.
func (r *MembershipReadRepository) GetActive(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, error) {
	const query = `
		SELECT id, user_id, room_id, joined_at, left_at, is_active
		FROM room_memberships
		WHERE user_id = $1 AND room_id = $2 AND is_active
	`

	var m models.MembershipDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &m, query, userID, roomID)

	logger.Log.Infow("membership query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, roomID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountActiveByRoom returns the number of active memberships in a room.
func (r *MembershipReadRepository) CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM room_memberships
		WHERE room_id = $1 AND is_active
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, roomID)

	logger.Log.Infow("membership query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roomID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListActiveMembers returns active members of a room with their usernames,
// ordered by join time.
func (r *MembershipReadRepository) ListActiveMembers(ctx context.Context, roomID uuid.UUID) ([]models.RoomMemberDB, error) {
	const query = `
		SELECT m.user_id, u.username, m.joined_at
		FROM room_memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1 AND m.is_active
		ORDER BY m.joined_at
	`

	members := []models.RoomMemberDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &members, query, roomID)

	logger.Log.Infow("membership query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roomID},
		"rows", len(members),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return members, nil
}

// MembershipWriteRepository handles membership inserts and deactivation.
type MembershipWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMembershipWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MembershipWriteRepository {
	return &MembershipWriteRepository{db: db, txGetter: txGetter}
}

func (r *MembershipWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a fresh active membership row. A rejoin always creates a new
// row; historical rows are never reused. Returns ErrUniqueViolation when an
// active row for (user, room) already exists.
func (r *MembershipWriteRepository) Save(ctx context.Context, userID, roomID uuid.UUID) (*models.MembershipDB, error) {
	const query = `
		INSERT INTO room_memberships (id, user_id, room_id, joined_at, is_active)
		VALUES ($1, $2, $3, NOW(), TRUE)
		RETURNING id, user_id, room_id, joined_at, left_at, is_active
	`
	args := []any{uuid.New(), userID, roomID}

	var m models.MembershipDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &m, query, args...)

	logger.Log.Infow("membership insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, roomID},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeactivateActive closes the active visit for (user, room): stamps left_at
// and clears is_active. Returns the number of rows updated, zero when no
// active membership existed.
func (r *MembershipWriteRepository) DeactivateActive(ctx context.Context, userID, roomID uuid.UUID) (int64, error) {
	const query = `
		UPDATE room_memberships
		SET is_active = FALSE, left_at = NOW()
		WHERE user_id = $1 AND room_id = $2 AND is_active
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, roomID)

	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("membership update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, roomID},
		"result", affected,
		"error", err,
	)

	return affected, err
}

// DeactivateByRoom closes every active visit in a room. Used by room deletion
// so that no active membership ever references an inactive room.
func (r *MembershipWriteRepository) DeactivateByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	const query = `
		UPDATE room_memberships
		SET is_active = FALSE, left_at = NOW()
		WHERE room_id = $1 AND is_active
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, roomID)

	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow("membership update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{roomID},
		"result", affected,
		"error", err,
	)

	return affected, err
}
