package booking

import (
	"fmt"
	"strings"
)

// Outcome discriminates how an allocation attempt ended.
type Outcome string

const (
	// OutcomeSuccess means exactly n rooms were booked.
	OutcomeSuccess Outcome = "success"
	// OutcomeInvalidCount means the requested count was outside [1,5].
	OutcomeInvalidCount Outcome = "invalid_count"
	// OutcomeInsufficientRooms means fewer free rooms exist than requested.
	OutcomeInsufficientRooms Outcome = "insufficient_rooms"
	// OutcomeNoFeasibleSet is the defensive outcome when both search tiers
	// produce no candidate despite the preconditions passing. It signals an
	// internal inconsistency, not a user-facing capacity problem.
	OutcomeNoFeasibleSet Outcome = "no_feasible_set"
)

// Valid returns true for a recognized outcome value.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeSuccess, OutcomeInvalidCount, OutcomeInsufficientRooms, OutcomeNoFeasibleSet:
		return true
	}
	return false
}

// Tier identifies which search tier produced an allocation.
type Tier string

const (
	// TierNone means no tier produced a candidate (all failure outcomes).
	TierNone Tier = "none"
	// TierSameFloor means the same-floor sliding-window search won.
	TierSameFloor Tier = "same_floor"
	// TierCrossFloor means the cross-floor fallback search won.
	TierCrossFloor Tier = "cross_floor"
)

// Request-count bounds for a single allocation.
const (
	MinRoomsPerRequest = 1
	MaxRoomsPerRequest = 5
)

// AllocationResult is the immutable outcome of one Allocate call. On
// success it carries the booked room identities in selection order and the
// winning travel cost; on failure the room list is empty and the grid is
// untouched. The result holds everything an external renderer needs to
// highlight newly booked rooms; the core keeps no "last booked" state.
type AllocationResult struct {
	Outcome Outcome // How the attempt ended
	Rooms   []Room  // Booked rooms in selection order; empty unless Success
	Cost    int     // Winning travel cost in minutes; 0 unless Success
	Tier    Tier    // Which tier produced the set; TierNone on failure

	// FreeBefore is the free-room count observed when the request arrived,
	// recorded for logging and sweep analysis on every outcome.
	FreeBefore int

	// Ref is a booking reference attached by the session layer on success.
	// The core allocator leaves it empty.
	Ref string
}

// Succeeded reports whether rooms were booked.
func (r AllocationResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// RoomNumbers returns the guest-facing numbers of the booked rooms in
// selection order, for display.
func (r AllocationResult) RoomNumbers() []int {
	nums := make([]int, len(r.Rooms))
	for i, room := range r.Rooms {
		nums[i] = room.Number()
	}
	return nums
}

// RoomIDs returns the stable identifiers of the booked rooms in selection
// order.
func (r AllocationResult) RoomIDs() []string {
	ids := make([]string, len(r.Rooms))
	for i, room := range r.Rooms {
		ids[i] = room.ID()
	}
	return ids
}

// String returns a one-line summary of the result for logs.
func (r AllocationResult) String() string {
	if !r.Succeeded() {
		return fmt.Sprintf("AllocationResult: (Outcome: %s)", r.Outcome)
	}
	return fmt.Sprintf("AllocationResult: (Outcome: %s, Tier: %s, Cost: %d, Rooms: %s)",
		r.Outcome, r.Tier, r.Cost, strings.Join(r.RoomIDs(), " "))
}
