/*
session.go - Single-player game session

PURPOSE:
  The engine is synchronous and single-threaded: ticks and actions are
  discrete, serialized calls. Session is the host-side guard that enforces
  that - one mutex, one state value, one composer. The engine itself never
  sees the mutex, the wall clock, or the shared generator; Session passes
  time and randomness in as plain inputs.
*/
package api

import (
	"sync"
	"time"

	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/engine"
)

// Session owns one game state and serializes all access to it.
type Session struct {
	mu   sync.Mutex
	comp *engine.Composer
	rnd  core.Rand

	state   core.State
	context string // active UI context reported by the host
}

// NewSession starts a fresh game.
func NewSession(comp *engine.Composer, rnd core.Rand, now time.Time) *Session {
	return &Session{
		comp:  comp,
		rnd:   rnd,
		state: core.NewState(now),
	}
}

// Tick advances the session by elapsed real time.
func (s *Session) Tick(elapsedMs int64, now time.Time) core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.comp.ApplyTick(s.state, elapsedMs, s.context, now, s.rnd)
	return s.state
}

// Action applies one player action.
func (s *Session) Action(act core.Action, now time.Time) core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.comp.ApplyAction(s.state, act, now, s.rnd)
	return s.state
}

// State returns a deep copy of the current state.
func (s *Session) State() core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Replace swaps in an imported state (already validated by the save
// boundary).
func (s *Session) Replace(st core.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}

// SetContext records which tab/screen the host UI currently shows.
func (s *Session) SetContext(ctx string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ctx
}

// DrainNotifications empties the outgoing notification queue.
func (s *Session) DrainNotifications() []core.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DrainNotifications()
}
