// this file defines the data structures used throughout
package main

import "errors"

// Source is one playable stream of a station. Type carries a MIME-type
// hint for the player and may be empty.
type Source struct {
	Src  string `json:"src"`
	Type string `json:"type"`
}

// Station is a playable radio entity. Instances are only built through
// NewStation, so any Station reachable from a registry satisfies the
// field invariants: non-empty id and title, at least one source with a
// non-empty src.
type Station struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Source      []Source `json:"source"`
}

// StationRecord is the raw shape in which stations arrive from outside:
// the seed list supplied at startup and the persisted snapshot. Records
// carry no guarantees; they become Stations through StationFromRecord.
type StationRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Source      []Source `json:"source"`
}

var (
	ErrInvalidID        = errors.New("station id must not be empty")
	ErrInvalidTitle     = errors.New("station title must not be empty")
	ErrInvalidSource    = errors.New("station needs at least one source with a non-empty src")
	ErrDuplicateStation = errors.New("a station with this id already exists")
	ErrStationNotFound  = errors.New("station not found")
	ErrUnknownStation   = errors.New("unknown station id")
	ErrSnapshotMissing  = errors.New("no snapshot stored")
)
