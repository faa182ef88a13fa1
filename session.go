// this file owns the current-station state of the system
package main

import "strings"

// Player is the external audio collaborator. It never holds station
// identity of its own; it is handed the new source list every time the
// current station changes.
type Player interface {
	Reload(sources []Source, play bool)
}

// RoutePusher receives a corrected path whenever the route pointed at a
// station that could not be resolved, so URL and active station never
// stay in disagreement.
type RoutePusher interface {
	Push(path string)
}

// Session holds the at-most-one current station. Only Session sets it:
// every transition goes through Switch, either directly or via
// HandleRoute. The zero state (no station) exists only until the first
// Switch during startup.
type Session struct {
	registry  *Registry
	current   *Station
	defaultID string
	player    Player
	router    RoutePusher

	// settle defers a callback until dependents have observed the new
	// current station; the reload signal always goes through it, never
	// before the transition is complete.
	settle func(func())
}

func NewSession(registry *Registry, defaultID string, player Player, router RoutePusher) *Session {
	return &Session{
		registry:  registry,
		defaultID: defaultID,
		player:    player,
		router:    router,
		settle:    func(fn func()) { fn() },
	}
}

func (s *Session) Current() *Station {
	return s.current
}

// Switch makes the station with the given id current and signals the
// player to reload. Switching to the station already current is a
// no-op, so the player is never reloaded redundantly. An unknown id
// leaves the current state untouched.
func (s *Session) Switch(id string, play bool) error {
	if s.current != nil && normalizeID(s.current.ID) == normalizeID(id) {
		return nil
	}
	i := FindIndex(*s.registry, id)
	if i == -1 {
		return ErrUnknownStation
	}
	s.current = (*s.registry)[i]

	st := s.current
	s.settle(func() {
		s.player.Reload(st.Source, play)
	})
	return nil
}

// HandleRoute interprets the final segment of a path as a station id
// and tunes to it. A root path or an id that does not resolve falls
// back to the default station, and the corrected route is pushed so the
// address the user sees matches what is actually playing.
func (s *Session) HandleRoute(path string) {
	id := routeStationID(path)
	if id != "" {
		if err := s.Switch(id, true); err == nil {
			return
		}
	}
	if err := s.Switch(s.defaultID, true); err != nil {
		// not even the default resolves; leave the state alone
		return
	}
	s.router.Push("/" + s.defaultID)
}

// Detach clears the current station when it matches id. Called when a
// station is removed, so the session never keeps a reference to an
// entry that is no longer in the registry. Reports whether the session
// lost its station and needs retuning.
func (s *Session) Detach(id string) bool {
	if s.current != nil && normalizeID(s.current.ID) == normalizeID(id) {
		s.current = nil
		return true
	}
	return false
}

func routeStationID(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i != -1 {
		return path[i+1:]
	}
	return path
}
