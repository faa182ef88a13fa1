// this file keeps the registry and durable storage in agreement
package main

import "encoding/json"

// Logger is the side channel for diagnostics about discarded data.
// *log.Logger satisfies it; tests inject a recording implementation.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Seed builds a registry from the externally supplied station list.
// Records that fail validation are dropped and their ids returned as
// the failed list; a bad seed entry is never fatal to startup. A
// duplicate id within the seed itself counts as failed too, since only
// the first occurrence can enter the registry.
func Seed(records []StationRecord, logger Logger) (Registry, []string) {
	reg := make(Registry, 0, len(records))
	var failed []string
	for _, rec := range records {
		st, err := StationFromRecord(rec)
		if err != nil {
			logger.Printf("dropping seed station %q: %v", rec.ID, err)
			failed = append(failed, rec.ID)
			continue
		}
		if FindIndex(reg, st.ID) != -1 {
			logger.Printf("dropping seed station %q: duplicate id", rec.ID)
			failed = append(failed, rec.ID)
			continue
		}
		reg = append(reg, st)
	}
	return reg, failed
}

// Synchronizer mirrors the registry into a snapshot store and, once at
// startup, folds a previously stored snapshot back into the seeded
// registry. A nil store means durable storage is unavailable for this
// session: both directions become no-ops and the in-memory registry
// works as usual.
type Synchronizer struct {
	store  SnapshotStore
	logger Logger
}

func NewSynchronizer(store SnapshotStore, logger Logger) *Synchronizer {
	return &Synchronizer{store: store, logger: logger}
}

// Reconcile folds the stored snapshot into reg. Stored records merge in
// order; a record whose id is already seeded is discarded, so seeded
// stations stay authoritative. An unparseable snapshot is erased and
// forgotten: startup never fails because of corrupted client-side state.
func (s *Synchronizer) Reconcile(reg *Registry) {
	if s.store == nil {
		return
	}
	data, err := s.store.Read()
	if err == ErrSnapshotMissing {
		return
	}
	if err != nil {
		s.logger.Printf("snapshot read failed: %v", err)
		return
	}

	var records []StationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Printf("snapshot corrupted, erasing it: %v", err)
		if err := s.store.Erase(); err != nil {
			s.logger.Printf("snapshot erase failed: %v", err)
		}
		return
	}
	for _, rec := range records {
		AddFromRecord(reg, rec, s.logger)
	}
}

// Save rewrites the whole snapshot from the registry. It runs after
// every registry mutation, synchronously and without batching:
// mutations are user-initiated and rare, and must never be lost.
func (s *Synchronizer) Save(reg Registry) {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(reg)
	if err != nil {
		s.logger.Printf("snapshot encode failed: %v", err)
		return
	}
	if err := s.store.Write(data); err != nil {
		s.logger.Printf("snapshot write failed: %v", err)
	}
}

func (s *Synchronizer) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Printf("snapshot store close failed: %v", err)
	}
}
