package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is applied on startup. The partial unique indexes are load-bearing:
// rooms_active_name_idx allows a deleted room's name to be reused, and
// memberships_active_pair_idx is the database backstop for the single
// active membership per (user, room) invariant.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS rooms (
	id UUID PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	display_name VARCHAR(100) NOT NULL,
	description TEXT,
	creator_id UUID NOT NULL REFERENCES users(id),
	max_participants INT NOT NULL DEFAULT 50,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS rooms_active_name_idx
	ON rooms (name) WHERE is_active;

CREATE TABLE IF NOT EXISTS room_memberships (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	room_id UUID NOT NULL REFERENCES rooms(id),
	joined_at TIMESTAMP NOT NULL DEFAULT NOW(),
	left_at TIMESTAMP,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE UNIQUE INDEX IF NOT EXISTS memberships_active_pair_idx
	ON room_memberships (user_id, room_id) WHERE is_active;

CREATE INDEX IF NOT EXISTS memberships_room_active_idx
	ON room_memberships (room_id) WHERE is_active;
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
