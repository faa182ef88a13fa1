// this file turns user intent into validated registry mutations
package main

import "strings"

// Editor stages one draft station at a time for the add/edit dialogs.
// The draft is always a copy: nothing touches the live registry until a
// commit, and a failed commit leaves both the draft and the registry
// exactly as they were, so the dialog stays open for the user to
// correct input and retry. Every successful commit persists the
// registry before returning.
type Editor struct {
	registry *Registry
	sync     *Synchronizer
	draft    *Station
	editing  bool
}

func NewEditor(registry *Registry, sync *Synchronizer) *Editor {
	return &Editor{registry: registry, sync: sync}
}

// OpenForNew stages a blank draft with one empty source row. The draft
// is not validated and not in the registry.
func (e *Editor) OpenForNew() *Station {
	e.draft = &Station{Source: []Source{{}}}
	e.editing = false
	return e.draft
}

// OpenForEdit stages a deep clone of an existing station, so in-flight
// edits never show up in the live registry entry.
func (e *Editor) OpenForEdit(id string) (*Station, error) {
	i := FindIndex(*e.registry, id)
	if i == -1 {
		return nil, ErrStationNotFound
	}
	e.draft = (*e.registry)[i].Clone()
	e.editing = true
	return e.draft, nil
}

// CommitAdd derives an id from the draft's title and adds the draft to
// the registry. Validation and duplicate errors come back to the caller
// verbatim; the workflow stays open on failure.
func (e *Editor) CommitAdd(draft *Station) error {
	if draft.Title == "" {
		return ErrInvalidTitle
	}
	id := DeriveStationID(draft.Title)
	if err := Add(e.registry, id, draft.Title, draft.Description, draft.Source); err != nil {
		return err
	}
	e.close()
	e.sync.Save(*e.registry)
	return nil
}

// CommitEdit replaces the live station under the draft's unchanged id
// with a freshly validated copy of the draft.
func (e *Editor) CommitEdit(draft *Station) error {
	replacement, err := NewStation(draft.ID, draft.Title, draft.Description, draft.Source)
	if err != nil {
		return err
	}
	if err := Update(e.registry, draft.ID, replacement); err != nil {
		return err
	}
	e.close()
	e.sync.Save(*e.registry)
	return nil
}

// CommitDelete never fails: deleting a station that is already gone is
// a no-op from the dialog's point of view. The snapshot is only
// rewritten when something was actually removed.
func (e *Editor) CommitDelete(id string) {
	if Remove(e.registry, id) {
		e.sync.Save(*e.registry)
	}
	e.close()
}

// Discard drops the staged draft without touching the registry.
func (e *Editor) Discard() {
	e.close()
}

func (e *Editor) close() {
	e.draft = nil
	e.editing = false
}

// DeriveStationID turns a display title into a station id: lowercase,
// first space replaced with an underscore. Only the first space on
// purpose: persisted snapshots have keyed multi-word stations this way
// from the start, and replacing every space would re-key those entries
// and orphan them on the next reconcile.
func DeriveStationID(title string) string {
	return strings.ToLower(strings.Replace(title, " ", "_", 1))
}
