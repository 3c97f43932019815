package session

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is the durable mirror of the operator session: exactly two
// string-keyed entries, written and cleared together so a half-session can
// never survive a restart.
type Store struct{ DB *sqlx.DB }

const (
	keyToken = "token"
	keyUser  = "user"
)

func OpenStore(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS session_kv(
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Save writes token and serialized user in one transaction.
func (s *Store) Save(token, userJSON string) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	up := `INSERT INTO session_kv(key,value) VALUES(?,?)
	       ON CONFLICT(key) DO UPDATE SET value=excluded.value`
	if _, err := tx.Exec(up, keyToken, token); err != nil {
		return err
	}
	if _, err := tx.Exec(up, keyUser, userJSON); err != nil {
		return err
	}
	return tx.Commit()
}

// Load returns the persisted token and user JSON. A missing or partial pair
// reports ok=false; callers treat that as logged out.
func (s *Store) Load() (token, userJSON string, ok bool, err error) {
	if err = s.DB.Get(&token, `SELECT value FROM session_kv WHERE key=?`, keyToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", false, nil
		}
		return "", "", false, err
	}
	if err = s.DB.Get(&userJSON, `SELECT value FROM session_kv WHERE key=?`, keyUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", false, nil
		}
		return "", "", false, err
	}
	return token, userJSON, token != "" && userJSON != "", nil
}

// Clear removes both entries; they are never deleted independently.
func (s *Store) Clear() error {
	_, err := s.DB.Exec(`DELETE FROM session_kv WHERE key IN (?,?)`, keyToken, keyUser)
	return err
}
