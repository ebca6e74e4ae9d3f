package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMembershipPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	assert.NoError(t, EnsureSchema(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func createTestRoom(t *testing.T, db *sqlx.DB, creatorID uuid.UUID, name string, maxParticipants int) *models.RoomDB {
	t.Helper()
	room, err := NewRoomWriteRepository(db, nil).Save(context.Background(), name, name, nil, creatorID, maxParticipants)
	assert.NoError(t, err)
	return room
}

func TestMembershipRepository_JoinLeaveCycle(t *testing.T) {
	db, teardown := setupMembershipPostgresContainer(t)
	defer teardown()

	user := createTestUser(t, db, "alice")
	room := createTestRoom(t, db, user.UserID, "standup", 10)

	readRepo := NewMembershipReadRepository(db, nil)
	writeRepo := NewMembershipWriteRepository(db, nil)
	ctx := context.Background()

	first, err := writeRepo.Save(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Nil(t, first.LeftAt)

	active, err := readRepo.GetActive(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.NotNil(t, active)
	assert.Equal(t, first.MembershipID, active.MembershipID)

	count, err := readRepo.CountActiveByRoom(ctx, room.RoomID)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	// A second active row for the same pair must be rejected.
	_, err = writeRepo.Save(ctx, user.UserID, room.RoomID)
	assert.ErrorIs(t, err, ErrUniqueViolation)

	affected, err := writeRepo.DeactivateActive(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	active, err = readRepo.GetActive(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.Nil(t, active)

	// Leaving again is a no-op.
	affected, err = writeRepo.DeactivateActive(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.Zero(t, affected)

	// Rejoin creates a fresh row and keeps the closed one as history.
	second, err := writeRepo.Save(ctx, user.UserID, room.RoomID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.MembershipID, second.MembershipID)

	var total int
	assert.NoError(t, db.Get(&total, "SELECT COUNT(*) FROM room_memberships WHERE user_id = $1 AND room_id = $2", user.UserID, room.RoomID))
	assert.Equal(t, 2, total)

	var closed models.MembershipDB
	assert.NoError(t, db.Get(&closed,
		"SELECT id, user_id, room_id, joined_at, left_at, is_active FROM room_memberships WHERE id = $1",
		first.MembershipID))
	assert.False(t, closed.IsActive)
	assert.NotNil(t, closed.LeftAt)
}

func TestMembershipReadRepository_ListActiveMembers(t *testing.T) {
	db, teardown := setupMembershipPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	room := createTestRoom(t, db, alice.UserID, "standup", 10)

	readRepo := NewMembershipReadRepository(db, nil)
	writeRepo := NewMembershipWriteRepository(db, nil)
	ctx := context.Background()

	for _, id := range []uuid.UUID{alice.UserID, bob.UserID, carol.UserID} {
		_, err := writeRepo.Save(ctx, id, room.RoomID)
		assert.NoError(t, err)
	}

	_, err := writeRepo.DeactivateActive(ctx, bob.UserID, room.RoomID)
	assert.NoError(t, err)

	members, err := readRepo.ListActiveMembers(ctx, room.RoomID)
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)
	assert.Equal(t, "carol", members[1].Username)
}

func TestMembershipWriteRepository_DeactivateByRoom(t *testing.T) {
	db, teardown := setupMembershipPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	room := createTestRoom(t, db, alice.UserID, "standup", 10)
	other := createTestRoom(t, db, alice.UserID, "retro", 10)

	readRepo := NewMembershipReadRepository(db, nil)
	writeRepo := NewMembershipWriteRepository(db, nil)
	ctx := context.Background()

	for _, id := range []uuid.UUID{alice.UserID, bob.UserID} {
		_, err := writeRepo.Save(ctx, id, room.RoomID)
		assert.NoError(t, err)
	}
	_, err := writeRepo.Save(ctx, alice.UserID, other.RoomID)
	assert.NoError(t, err)

	affected, err := writeRepo.DeactivateByRoom(ctx, room.RoomID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	count, err := readRepo.CountActiveByRoom(ctx, room.RoomID)
	assert.NoError(t, err)
	assert.Zero(t, count)

	// Memberships in other rooms are untouched.
	count, err = readRepo.CountActiveByRoom(ctx, other.RoomID)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

// membershipTxKey carries a per-goroutine transaction through the context, the
// same way the request transaction middleware does in production.
type membershipTxKey struct{}

func membershipTxGetter(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(membershipTxKey{}).(*sqlx.Tx)
	return tx
}

// TestMembership_ConcurrentJoinsRespectCapacity races more joiners than the
// room can hold, each in its own transaction behind the room row lock, and
// verifies the cap is never exceeded.
func TestMembership_ConcurrentJoinsRespectCapacity(t *testing.T) {
	db, teardown := setupMembershipPostgresContainer(t)
	defer teardown()

	const maxParticipants = 3
	const joiners = 8

	creator := createTestUser(t, db, "creator")
	room := createTestRoom(t, db, creator.UserID, "crowded", maxParticipants)

	users := make([]*models.UserDB, joiners)
	for i := range users {
		users[i] = createTestUser(t, db, fmt.Sprintf("user%d", i))
	}

	roomRead := NewRoomReadRepository(db, membershipTxGetter)
	memberRead := NewMembershipReadRepository(db, membershipTxGetter)
	memberWrite := NewMembershipWriteRepository(db, membershipTxGetter)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for _, user := range users {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()

			tx, err := db.Beginx()
			if err != nil {
				t.Error(err)
				return
			}
			ctx := context.WithValue(context.Background(), membershipTxKey{}, tx)

			locked, err := roomRead.GetActiveByIDForUpdate(ctx, room.RoomID)
			if err != nil || locked == nil {
				tx.Rollback()
				t.Errorf("lock room: %v", err)
				return
			}

			count, err := memberRead.CountActiveByRoom(ctx, room.RoomID)
			if err != nil {
				tx.Rollback()
				t.Errorf("count members: %v", err)
				return
			}
			if count >= locked.MaxParticipants {
				tx.Rollback()
				return
			}

			if _, err := memberWrite.Save(ctx, userID, room.RoomID); err != nil {
				tx.Rollback()
				t.Errorf("save membership: %v", err)
				return
			}
			if err := tx.Commit(); err != nil {
				t.Errorf("commit: %v", err)
				return
			}

			mu.Lock()
			admitted++
			mu.Unlock()
		}(user.UserID)
	}
	wg.Wait()

	assert.Equal(t, maxParticipants, admitted)

	count, err := NewMembershipReadRepository(db, nil).CountActiveByRoom(context.Background(), room.RoomID)
	assert.NoError(t, err)
	assert.Equal(t, maxParticipants, count)
}
