package booking

import (
	"fmt"
	"math/rand"
)

// DefaultOccupancyP is the default probability that a room starts booked
// when occupancy is randomized.
const DefaultOccupancyP = 0.3

// Grid owns the full room inventory for one building and tracks the number
// of booked rooms incrementally. Rooms are stored floor-major (floor
// ascending, index ascending) and their identities never move; only the
// booked flags change. The grid is the sole owner of its rooms: all
// mutation goes through its methods.
//
// Thread-safety: NOT thread-safe. One logical session owns the grid and
// issues one call at a time (see the package doc for the extension point).
type Grid struct {
	topology    Topology
	rooms       []Room // All rooms, floor-major; backing array never reallocates
	bookedCount int    // Number of booked rooms (tracked incrementally)
}

// NewGrid builds a grid from a topology with every room unbooked.
// Returns an error if the topology is invalid.
func NewGrid(t Topology) (*Grid, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}
	g := &Grid{
		topology: t,
		rooms:    make([]Room, 0, t.TotalRooms()),
	}
	g.populate()
	return g, nil
}

// populate fills the room slice per the topology, all rooms unbooked.
// Floor-major order is an invariant other components rely on: the
// allocator's cross-floor tie-break and the renderer both assume it.
func (g *Grid) populate() {
	g.rooms = g.rooms[:0]
	for f := 1; f <= g.topology.Floors; f++ {
		for i := 0; i < g.topology.RoomsOn(f); i++ {
			g.rooms = append(g.rooms, Room{Floor: f, Index: i})
		}
	}
	g.bookedCount = 0
}

// Reset rebuilds the whole inventory unbooked. Idempotent: the same
// topology always yields the same fixed room set.
func (g *Grid) Reset() {
	g.populate()
}

// Topology returns the building shape this grid was created from.
func (g *Grid) Topology() Topology {
	return g.topology
}

// Size returns the total number of rooms in the grid.
func (g *Grid) Size() int {
	return len(g.rooms)
}

// Floors returns the number of floors in the grid.
func (g *Grid) Floors() int {
	return g.topology.Floors
}

// FreeCount returns the number of rooms not currently booked.
func (g *Grid) FreeCount() int {
	return len(g.rooms) - g.bookedCount
}

// BookedCount returns the number of currently booked rooms.
func (g *Grid) BookedCount() int {
	return g.bookedCount
}

// OccupancyRate returns the booked fraction of the grid in [0,1].
func (g *Grid) OccupancyRate() float64 {
	return float64(g.bookedCount) / float64(len(g.rooms))
}

// RoomAt returns a pointer to the room with the given identity, or nil if
// no such room exists in this topology.
func (g *Grid) RoomAt(floor, index int) *Room {
	if floor < 1 || floor > g.topology.Floors {
		return nil
	}
	if index < 0 || index >= g.topology.RoomsOn(floor) {
		return nil
	}
	// Floor-major storage: offset of the floor plus the index within it.
	offset := (floor - 1) * g.topology.RoomsPerFloor
	return &g.rooms[offset+index]
}

// FreeRooms returns pointers to all unbooked rooms in floor-major order.
// Callers must not retain the pointers across a Reset or randomization.
func (g *Grid) FreeRooms() []*Room {
	free := make([]*Room, 0, g.FreeCount())
	for i := range g.rooms {
		if !g.rooms[i].Booked {
			free = append(free, &g.rooms[i])
		}
	}
	return free
}

// SetBooked marks the given rooms booked.
// Precondition: every room is currently unbooked. The allocator only calls
// this with rooms it just selected from FreeRooms, so a booked room here
// means the single-caller contract was broken.
func (g *Grid) SetBooked(rooms []*Room) {
	for _, r := range rooms {
		if r.Booked {
			panic(fmt.Sprintf("SetBooked: room %s is already booked", r.ID()))
		}
		r.Booked = true
		g.bookedCount++
	}
}

// RandomizeOccupancy replaces the entire booked-state vector, drawing each
// room's flag independently with probability p from rng. The previous
// occupancy is discarded wholesale, never adjusted incrementally.
func (g *Grid) RandomizeOccupancy(rng *rand.Rand, p float64) {
	if rng == nil {
		panic("RandomizeOccupancy: rng must not be nil")
	}
	g.bookedCount = 0
	for i := range g.rooms {
		booked := rng.Float64() < p
		g.rooms[i].Booked = booked
		if booked {
			g.bookedCount++
		}
	}
}

// Snapshot returns a copy of every room (floor, index, booked) in
// floor-major order for external rendering. Mutating the returned slice
// has no effect on the grid.
func (g *Grid) Snapshot() []Room {
	snap := make([]Room, len(g.rooms))
	copy(snap, g.rooms)
	return snap
}
