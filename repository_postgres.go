package main

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type PostgresSnapshotStore struct {
	db *sqlx.DB
}

func NewPostgresSnapshotStore(dbURL string) (*PostgresSnapshotStore, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	createQuery := `
	  create table if not exists snapshots (
		key varchar(64) primary key,
		value text not null
	  );`
	if _, err := db.Exec(createQuery); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresSnapshotStore{db: db}, nil
}

func (r *PostgresSnapshotStore) Read() ([]byte, error) {
	query := `select value from snapshots where key=$1;`

	var value string
	err := r.db.QueryRow(query, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrSnapshotMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *PostgresSnapshotStore) Write(data []byte) error {
	query := `
	  insert into snapshots (key, value)
	  values ($1, $2)
	  on conflict(key) do update
		 set value = excluded.value;`

	_, err := r.db.Exec(query, snapshotKey, string(data))
	return err
}

func (r *PostgresSnapshotStore) Erase() error {
	_, err := r.db.Exec(`delete from snapshots where key=$1;`, snapshotKey)
	return err
}

func (r *PostgresSnapshotStore) Close() error {
	return r.db.Close()
}
