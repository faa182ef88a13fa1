package main

// SnapshotStore is the durable home of the registry snapshot: a
// key/value text store in which one key holds the JSON-serialized array
// of station records. Read returns ErrSnapshotMissing when nothing has
// been stored yet.
type SnapshotStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Erase() error
	Close() error
}
