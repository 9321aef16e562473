// Package sqlite implements the repository interfaces on SQLite, the
// durable backend the in-memory emulation is swapped for outside of
// development. modernc.org/sqlite is a pure Go driver, so the binary
// stays CGo-free and ":memory:" databases keep the tests hermetic.
package sqlite

import (
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB pool. Entity-scoped accessors hand out the
// repository implementations that share the pool.
type DB struct {
	conn *sql.DB
}

func (db *DB) Users() *UserDB            { return &UserDB{conn: db.conn} }
func (db *DB) Communities() *CommunityDB { return &CommunityDB{conn: db.conn} }
func (db *DB) Posts() *PostDB            { return &PostDB{conn: db.conn} }
func (db *DB) Moods() *MoodDB            { return &MoodDB{conn: db.conn} }
func (db *DB) Resources() *ResourceDB    { return &ResourceDB{conn: db.conn} }

// New opens (or creates) the database at dbPath and runs migrations.
// ":memory:" yields a throwaway in-memory database.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows reads concurrent with a write; foreign keys are off by
	// default in SQLite and we rely on them (posts → communities).
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL DEFAULT '',
			display_name  TEXT NOT NULL DEFAULT '',
			avatar_url    TEXT NOT NULL DEFAULT '',
			bio           TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email) WHERE email != '';

		CREATE TABLE IF NOT EXISTS communities (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon        TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS posts (
			id            TEXT PRIMARY KEY,
			community_id  TEXT NOT NULL REFERENCES communities(id),
			author_id     TEXT NOT NULL,
			author_name   TEXT NOT NULL DEFAULT '',
			author_avatar TEXT NOT NULL DEFAULT '',
			title         TEXT NOT NULL,
			content       TEXT NOT NULL DEFAULT '',
			reactions     INTEGER NOT NULL DEFAULT 0,
			comment_count INTEGER NOT NULL DEFAULT 0,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_posts_community_created ON posts(community_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS mood_entries (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			mood       TEXT NOT NULL,
			journal    TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mood_entries_user_created ON mood_entries(user_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS resources (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			topic       TEXT NOT NULL DEFAULT '',
			type        TEXT NOT NULL DEFAULT '',
			content_url TEXT NOT NULL DEFAULT '',
			icon        TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}
