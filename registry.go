// this file contains the operations on the station collection
package main

// Registry is the ordered collection of all stations in the session.
// Insertion order is meaningful: it is the listing order shown to users
// and the order written to the snapshot. The functions below mutate the
// registry in place through the pointer argument and never retain a
// reference of their own; mutators report whether the collection
// changed so callers know a save is due.
type Registry []*Station

// FindIndex returns the position of the station with the given id, or
// -1 when absent.
func FindIndex(reg Registry, id string) int {
	want := normalizeID(id)
	for i, st := range reg {
		if normalizeID(st.ID) == want {
			return i
		}
	}
	return -1
}

// Add validates and appends a new station. This is the only path by
// which a new station enters a live registry; on any error the registry
// is untouched.
func Add(reg *Registry, id, title, description string, source []Source) error {
	if FindIndex(*reg, id) != -1 {
		return ErrDuplicateStation
	}
	st, err := NewStation(id, title, description, source)
	if err != nil {
		return err
	}
	*reg = append(*reg, st)
	return nil
}

// AddFromRecord merges an externally stored record during startup
// reconciliation. Duplicates are discarded without noise: two
// independently sourced lists overlapping is the expected steady state,
// not a mistake. Malformed records are discarded too but logged, since
// the snapshot may be stale or corrupted across versions. Returns
// whether the registry grew.
func AddFromRecord(reg *Registry, rec StationRecord, logger Logger) bool {
	if FindIndex(*reg, rec.ID) != -1 {
		return false
	}
	st, err := StationFromRecord(rec)
	if err != nil {
		logger.Printf("discarding stored station %q: %v", rec.ID, err)
		return false
	}
	*reg = append(*reg, st)
	return true
}

// Remove deletes the station with the given id. Removing an id that is
// not present is a no-op, not an error: deletion is idempotent for the
// caller. Returns whether anything was removed.
func Remove(reg *Registry, id string) bool {
	i := FindIndex(*reg, id)
	if i == -1 {
		return false
	}
	*reg = append((*reg)[:i], (*reg)[i+1:]...)
	return true
}

// Update replaces the station with the given id in place, preserving
// its position. The replacement must already be a validated Station.
func Update(reg *Registry, id string, replacement *Station) error {
	i := FindIndex(*reg, id)
	if i == -1 {
		return ErrStationNotFound
	}
	(*reg)[i] = replacement
	return nil
}
