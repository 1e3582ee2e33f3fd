package handlers

import (
	"sync"

	"bizfinder/internal/finder"
)

// State is the UI state shared by all requests: whether an action is running
// and the result of the last completed action.
type State struct {
	mu   sync.Mutex
	busy bool
	last *finder.Result
}

// NewState creates an idle state.
func NewState() *State {
	return &State{}
}

// TryBegin marks an action as running. It returns false if one already is.
func (s *State) TryBegin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// End marks the running action as finished.
func (s *State) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Busy reports whether an action is running.
func (s *State) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetLast records the last committed result.
func (s *State) SetLast(r *finder.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = r
}

// Last returns the last committed result, or nil.
func (s *State) Last() *finder.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
