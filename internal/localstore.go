package internal

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Storage keys shared with the web storefront's localStorage layout.
const (
	KeyCart     = "cart"
	KeyToken    = "token"
	KeyUserRole = "user_role"
	KeyUserName = "user_name"
)

// LocalStore is durable keyed storage backed by a SQLite database.
// It plays the role localStorage plays in the browser storefront:
// a flat key/value area that survives across invocations.
type LocalStore struct {
	db *sql.DB
}

// OpenLocalStore opens (creating if needed) the state database at path.
func OpenLocalStore(path string) (*LocalStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StorageError{Path: path, Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS localkv (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "init", Err: err}
	}

	return &LocalStore{db: db}, nil
}

// NewLocalStore wraps an existing database handle. The localkv table
// must already exist. Used by tests with in-memory databases.
func NewLocalStore(db *sql.DB) *LocalStore {
	return &LocalStore{db: db}
}

// Get returns the value for key. The second return is false when the
// key is absent.
func (s *LocalStore) Get(key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRow("SELECT value FROM localkv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Path: key, Op: "read", Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *LocalStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO localkv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Path: key, Op: "write", Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *LocalStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM localkv WHERE key = ?", key); err != nil {
		return &StorageError{Path: key, Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	return s.db.Close()
}
