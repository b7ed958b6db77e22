package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/luxebid/luxebid/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- Session ---

func (s *SQLiteStore) SaveSession(ctx context.Context, sess *model.Session) error {
	s.logger.Debug("sql", "op", "upsert", "table", "session")

	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session (id, user_json, token, refresh, created_at)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   user_json = excluded.user_json,
		   token = excluded.token,
		   refresh = excluded.refresh,
		   created_at = excluded.created_at`,
		string(userJSON), sess.Token, sess.Refresh,
		sess.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) LoadSession(ctx context.Context) (*model.Session, error) {
	s.logger.Debug("sql", "op", "select", "table", "session")

	var userJSON, token, refresh, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT user_json, token, refresh, created_at FROM session WHERE id = 1`,
	).Scan(&userJSON, &token, &refresh, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	sess := &model.Session{
		User:    &user,
		Token:   token,
		Refresh: refresh,
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		sess.CreatedAt = t
	}
	return sess, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context) error {
	s.logger.Debug("sql", "op", "delete", "table", "session")
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
	return err
}

// --- Hand-off values ---

func (s *SQLiteStore) PutHandoff(ctx context.Context, key, value string) error {
	s.logger.Debug("sql", "op", "upsert", "table", "handoff", "key", key)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO handoff (key, value, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = excluded.value,
		   created_at = excluded.created_at`,
		key, value, time.Now().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) TakeHandoff(ctx context.Context, key string) (string, bool, error) {
	s.logger.Debug("sql", "op", "take", "table", "handoff", "key", key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, err
	}
	defer tx.Rollback()

	var value string
	err = tx.QueryRowContext(ctx, `SELECT value FROM handoff WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM handoff WHERE key = ?`, key); err != nil {
		return "", false, err
	}
	if err := tx.Commit(); err != nil {
		return "", false, err
	}
	return value, true, nil
}
