package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// snapshotKey is the single key the registry snapshot lives under.
const snapshotKey = "stations"

type SQLiteSnapshotStore struct {
	db *sql.DB
}

func NewSQLiteSnapshotStore(filePath string) (*SQLiteSnapshotStore, error) {
	if filePath == "" {
		filePath = "db.sqlite3"
	}
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// make sure the required table exists
	createQuery := `CREATE TABLE IF NOT EXISTS snapshots (key VARCHAR(64) PRIMARY KEY, value TEXT)`
	if _, err := db.Exec(createQuery); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteSnapshotStore{db: db}, nil
}

func (r *SQLiteSnapshotStore) Read() ([]byte, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrSnapshotMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *SQLiteSnapshotStore) Write(data []byte) error {
	_, err := r.db.Exec(`INSERT OR REPLACE INTO snapshots (key, value) VALUES (?, ?)`,
		snapshotKey, string(data))
	return err
}

func (r *SQLiteSnapshotStore) Erase() error {
	_, err := r.db.Exec(`DELETE FROM snapshots WHERE key = ?`, snapshotKey)
	return err
}

func (r *SQLiteSnapshotStore) Close() error {
	return r.db.Close()
}
