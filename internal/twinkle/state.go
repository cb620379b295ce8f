package twinkle

import "sync"

// RunState is the shared animation configuration: one cycle duration and
// one active colour scheme for the whole chain. The render loop reads it
// every frame and the command interpreter is its only writer, but command
// bytes arrive from serial, websocket and cron goroutines, so reads and
// writes are guarded.
type RunState struct {
	mu           sync.RWMutex
	cycleSeconds float64
	scheme       Scheme
}

// NewRunState builds run state with the given defaults. A non-positive
// cycle duration falls back to 5 seconds.
func NewRunState(cycleSeconds float64, scheme Scheme) *RunState {
	if cycleSeconds <= 0 {
		cycleSeconds = 5.0
	}
	return &RunState{cycleSeconds: cycleSeconds, scheme: scheme}
}

// Snapshot returns the cycle duration and scheme as one consistent pair.
func (s *RunState) Snapshot() (cycleSeconds float64, scheme Scheme) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycleSeconds, s.scheme
}

func (s *RunState) CycleSeconds() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycleSeconds
}

func (s *RunState) Scheme() Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheme
}

// SetCycleSeconds updates the cycle duration. Non-positive values are
// discarded to keep the oscillator's angular velocity defined.
func (s *RunState) SetCycleSeconds(v float64) {
	if v <= 0 {
		return
	}
	s.mu.Lock()
	s.cycleSeconds = v
	s.mu.Unlock()
}

func (s *RunState) SetScheme(v Scheme) {
	s.mu.Lock()
	s.scheme = v
	s.mu.Unlock()
}
