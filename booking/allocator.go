package booking

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Allocator runs the two-tier minimum-cost search over one grid and commits
// winning room sets. Tier 1 looks for the tightest same-floor window; tier 2
// is a cross-floor fallback over a proximity-sorted ordering of all free
// rooms. Tier 2 is reached only when no single floor can host the request.
//
// The cross-floor tier is a windowed heuristic, not an exhaustive subset
// search: it only scores the n-wide windows of one composite sort order.
// That trade-off is part of the contract and must not be "improved" into an
// exhaustive search.
type Allocator struct {
	grid  *Grid
	trace *AllocationTrace
}

// NewAllocator creates an allocator bound to the given grid.
func NewAllocator(g *Grid) *Allocator {
	if g == nil {
		panic("NewAllocator: grid must not be nil")
	}
	return &Allocator{grid: g}
}

// SetTrace attaches an optional decision trace. A nil trace disables
// recording.
func (a *Allocator) SetTrace(t *AllocationTrace) {
	a.trace = t
}

// Allocate books the minimum-travel-cost set of n free rooms.
//
// Failures never mutate the grid:
//   - n outside [1,5]            -> InvalidCount
//   - fewer than n free rooms    -> InsufficientRooms
//   - neither tier found a set   -> NoFeasibleSet (defensive; unreachable
//     when the free-count precondition holds)
//
// On success the chosen rooms are marked booked and returned in selection
// order together with the winning cost and tier.
func (a *Allocator) Allocate(n int) AllocationResult {
	freeBefore := a.grid.FreeCount()
	if n < MinRoomsPerRequest || n > MaxRoomsPerRequest {
		logrus.Debugf("rejecting allocation request for %d rooms: count outside [%d,%d]",
			n, MinRoomsPerRequest, MaxRoomsPerRequest)
		return AllocationResult{Outcome: OutcomeInvalidCount, Tier: TierNone, FreeBefore: freeBefore}
	}

	free := a.grid.FreeRooms()
	if len(free) < n {
		logrus.Debugf("rejecting allocation request for %d rooms: only %d free", n, len(free))
		return AllocationResult{Outcome: OutcomeInsufficientRooms, Tier: TierNone, FreeBefore: freeBefore}
	}

	best, cost, tier := a.bestSameFloor(free, n)
	if tier == TierNone {
		logrus.Infof("no floor has %d free rooms; falling back to cross-floor search", n)
		best, cost, tier = a.bestCrossFloor(free, n)
	}
	if tier == TierNone {
		logrus.Warnf("no feasible set for %d rooms despite %d free; grid left untouched", n, len(free))
		return AllocationResult{Outcome: OutcomeNoFeasibleSet, Tier: TierNone, FreeBefore: freeBefore}
	}

	a.grid.SetBooked(best)
	rooms := make([]Room, len(best))
	for i, r := range best {
		rooms[i] = *r
	}
	res := AllocationResult{Outcome: OutcomeSuccess, Rooms: rooms, Cost: cost, Tier: tier, FreeBefore: freeBefore}
	a.trace.markChosen(tier, res.RoomIDs(), cost)
	logrus.Infof("booked %v (tier %s, cost %d minutes)", res.RoomNumbers(), tier, cost)
	return res
}

// bestSameFloor searches every floor holding at least n free rooms with a
// width-n sliding window over its index-sorted free rooms. Floors are
// visited in ascending order and windows in ascending start position, so
// with strict-less winner tracking the first minimal window encountered
// wins all ties: lowest floor first, then leftmost window.
func (a *Allocator) bestSameFloor(free []*Room, n int) ([]*Room, int, Tier) {
	byFloor := make(map[int][]*Room)
	for _, r := range free {
		byFloor[r.Floor] = append(byFloor[r.Floor], r)
	}
	floors := make([]int, 0, len(byFloor))
	for f := range byFloor {
		floors = append(floors, f)
	}
	sort.Ints(floors)

	var best []*Room
	bestCost := 0
	found := false
	for _, f := range floors {
		rooms := byFloor[f]
		if len(rooms) < n {
			continue
		}
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].Index < rooms[j].Index })
		for i := 0; i+n <= len(rooms); i++ {
			window := rooms[i : i+n]
			cost := SameFloorCost(window)
			a.trace.recordCandidate(TierSameFloor, window, cost)
			if !found || cost < bestCost {
				found = true
				bestCost = cost
				best = make([]*Room, n)
				copy(best, window)
			}
		}
	}
	if !found {
		return nil, 0, TierNone
	}
	return best, bestCost, TierSameFloor
}

// bestCrossFloor slides a width-n window over all free rooms sorted by
// proximity score. The sort is stable over the grid's floor-major order, so
// equal scores keep the lower floor first. Extrema are recomputed per
// window; windows are NOT contiguous spans in (floor,index) space.
func (a *Allocator) bestCrossFloor(free []*Room, n int) ([]*Room, int, Tier) {
	if len(free) < n {
		return nil, 0, TierNone
	}
	sorted := make([]*Room, len(free))
	copy(sorted, free)
	sort.SliceStable(sorted, func(i, j int) bool {
		return proximityScore(sorted[i]) < proximityScore(sorted[j])
	})

	var best []*Room
	bestCost := 0
	found := false
	for i := 0; i+n <= len(sorted); i++ {
		window := sorted[i : i+n]
		cost := CrossFloorCost(window)
		a.trace.recordCandidate(TierCrossFloor, window, cost)
		if !found || cost < bestCost {
			found = true
			bestCost = cost
			best = make([]*Room, n)
			copy(best, window)
		}
	}
	if !found {
		return nil, 0, TierNone
	}
	return best, bestCost, TierCrossFloor
}
