package booking

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionConfig groups the knobs for NewSession.
type SessionConfig struct {
	Topology   Topology   // grid shape (zero value means DefaultTopology)
	Seed       int64      // master seed for all RNG subsystems
	TraceLevel TraceLevel // decision trace verbosity ("" = none)
}

// Session owns one grid plus the allocator, RNG, metrics, and trace bound to
// it. It is the single entry point callers drive: the interactive menu, the
// CLI subcommands, and sweep trials all operate through a Session.
//
// A Session also remembers which rooms the most recent booking committed so
// a renderer can highlight them.
type Session struct {
	cfg       SessionConfig
	grid      *Grid
	allocator *Allocator
	rng       *PartitionedRNG
	trace     *AllocationTrace
	metrics   *Metrics

	lastBooked map[string]bool // room IDs committed by the latest success
}

// NewSession builds a session from the given config. The topology is
// validated; an invalid trace level is rejected rather than silently
// disabling tracing.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Topology == (Topology{}) {
		cfg.Topology = DefaultTopology()
	}
	if !IsValidTraceLevel(string(cfg.TraceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", cfg.TraceLevel)
	}
	grid, err := NewGrid(cfg.Topology)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		grid:       grid,
		rng:        NewPartitionedRNG(NewSessionKey(cfg.Seed)),
		trace:      NewAllocationTrace(cfg.TraceLevel),
		metrics:    &Metrics{},
		lastBooked: make(map[string]bool),
	}
	s.allocator = NewAllocator(grid)
	s.allocator.SetTrace(s.trace)
	return s, nil
}

// Book requests n rooms. Successful results are stamped with a fresh
// booking reference and replace the just-booked highlight set; failures
// leave both untouched.
func (s *Session) Book(n int) AllocationResult {
	res := s.allocator.Allocate(n)
	s.metrics.RecordResult(res)
	if !res.Succeeded() {
		return res
	}

	res.Ref = uuid.NewString()
	s.lastBooked = make(map[string]bool, len(res.Rooms))
	for _, r := range res.Rooms {
		s.lastBooked[r.ID()] = true
	}
	return res
}

// Randomize replaces the occupancy vector with independent Bernoulli(p)
// draws from the session's occupancy RNG stream. The just-booked highlight
// set is cleared: the rooms it referred to no longer exist in that state.
func (s *Session) Randomize(p float64) {
	s.grid.RandomizeOccupancy(s.rng.ForSubsystem(SubsystemOccupancy), p)
	s.lastBooked = make(map[string]bool)
	s.metrics.Randomizations++
}

// Reset returns every room to free and clears the just-booked set.
func (s *Session) Reset() {
	s.grid.Reset()
	s.lastBooked = make(map[string]bool)
	s.metrics.Resets++
}

// Snapshot returns a deep copy of the current room states in floor-major
// order.
func (s *Session) Snapshot() []Room {
	return s.grid.Snapshot()
}

// LastBooked returns a copy of the room-ID set committed by the most recent
// successful booking. Empty after reset, randomize, or before any success.
func (s *Session) LastBooked() map[string]bool {
	out := make(map[string]bool, len(s.lastBooked))
	for id := range s.lastBooked {
		out[id] = true
	}
	return out
}

// Topology returns the grid shape this session runs on.
func (s *Session) Topology() Topology {
	return s.grid.Topology()
}

// FreeCount returns the number of currently free rooms.
func (s *Session) FreeCount() int {
	return s.grid.FreeCount()
}

// Metrics returns the session's running counters.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// Trace returns the session's decision trace. Empty unless the session was
// created with TraceLevelDecisions.
func (s *Session) Trace() *AllocationTrace {
	return s.trace
}

// Seed returns the master seed this session was created with.
func (s *Session) Seed() int64 {
	return int64(s.rng.Key())
}
