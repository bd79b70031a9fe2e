package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the
// localkv table the client uses for durable state
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS localkv (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create localkv table: %v", err)
	}

	return db
}

// SeedKey inserts a key/value pair into the localkv table
func SeedKey(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT OR REPLACE INTO localkv (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to seed key %s: %v", key, err)
	}
}

// ReadKey reads a key from the localkv table; ok is false when absent
func ReadKey(t *testing.T, db *sql.DB, key string) (string, bool) {
	t.Helper()
	var value string
	err := db.QueryRow("SELECT value FROM localkv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		t.Fatalf("Failed to read key %s: %v", key, err)
	}
	return value, true
}
