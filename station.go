// this file builds and validates stations
package main

import "strings"

// NewStation is the only way a Station comes into existence. It either
// returns a fully valid station or an error; there is no partially
// formed result. The source slice is copied so the caller cannot mutate
// the station afterwards through its own reference.
func NewStation(id, title, description string, source []Source) (*Station, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if len(source) == 0 {
		return nil, ErrInvalidSource
	}
	for _, s := range source {
		if s.Src == "" {
			return nil, ErrInvalidSource
		}
	}
	st := &Station{
		ID:          id,
		Title:       title,
		Description: description,
		Source:      make([]Source, len(source)),
	}
	copy(st.Source, source)
	return st, nil
}

// StationFromRecord validates a raw record exactly like NewStation; a
// malformed record fails instead of producing a degraded station.
func StationFromRecord(rec StationRecord) (*Station, error) {
	return NewStation(rec.ID, rec.Title, rec.Description, rec.Source)
}

// Clone returns a deep copy sharing no sub-structures with the original,
// so staged edits never leak into the live registry entry.
func (s *Station) Clone() *Station {
	c := *s
	c.Source = make([]Source, len(s.Source))
	copy(c.Source, s.Source)
	return &c
}

// Ids compare case-insensitively everywhere: derived ids are lowercase
// already, and folding here keeps a stored record from sneaking in a
// duplicate that differs only by case.
func normalizeID(id string) string {
	return strings.ToLower(id)
}
