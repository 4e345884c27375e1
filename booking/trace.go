package booking

// TraceLevel controls the verbosity of allocation decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every candidate window the allocator
	// evaluates, plus the chosen set.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized
// trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// CandidateRecord is one window the allocator scored.
type CandidateRecord struct {
	Tier    Tier     // Which search tier evaluated the window
	RoomIDs []string // Window contents in evaluation order
	Cost    int      // Travel cost of the window
	Chosen  bool     // True for the window that won the allocation
}

// AllocationTrace collects candidate records during Allocate calls.
// A nil trace or TraceLevelNone records nothing.
type AllocationTrace struct {
	Level      TraceLevel
	Candidates []CandidateRecord
}

// NewAllocationTrace creates a trace ready for recording at the given level.
func NewAllocationTrace(level TraceLevel) *AllocationTrace {
	return &AllocationTrace{
		Level:      level,
		Candidates: make([]CandidateRecord, 0),
	}
}

// enabled reports whether candidate records should be captured.
func (t *AllocationTrace) enabled() bool {
	return t != nil && t.Level == TraceLevelDecisions
}

// recordCandidate appends one evaluated window.
func (t *AllocationTrace) recordCandidate(tier Tier, rooms []*Room, cost int) {
	if !t.enabled() {
		return
	}
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID()
	}
	t.Candidates = append(t.Candidates, CandidateRecord{Tier: tier, RoomIDs: ids, Cost: cost})
}

// markChosen flags the most recently recorded candidate matching the given
// cost and tier as the winner. Called once after the search settles.
func (t *AllocationTrace) markChosen(tier Tier, ids []string, cost int) {
	if !t.enabled() {
		return
	}
	for i := range t.Candidates {
		c := &t.Candidates[i]
		if c.Chosen || c.Tier != tier || c.Cost != cost || len(c.RoomIDs) != len(ids) {
			continue
		}
		match := true
		for j := range ids {
			if c.RoomIDs[j] != ids[j] {
				match = false
				break
			}
		}
		if match {
			c.Chosen = true
			return
		}
	}
}
