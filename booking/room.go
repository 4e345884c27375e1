// Defines the Room struct that models a single hotel room in the inventory.
// Identity (floor, index) is fixed at construction; only the booked flag mutates.

package booking

import (
	"fmt"
)

// Room is one unit of the hotel inventory.
// Each room has:
// - a floor number (1-based, lift side at index 0)
// - an index, the horizontal distance from the lift on that floor
// - a booked flag, the only mutable field
//
// The (Floor, Index) pair is the room's identity and never changes after the
// grid is built. The guest-facing room number is derived from it for display
// only and plays no part in cost computation.
type Room struct {
	Floor  int  // Floor number, 1..topology.Floors
	Index  int  // Horizontal distance from the lift, 0-based
	Booked bool // Whether the room is currently booked
}

// Number returns the guest-facing room number.
// Floors 1-9 yield 101..110, 201..210, ...; floor 10 yields 1001..1007.
func (r Room) Number() int {
	return r.Floor*100 + r.Index + 1
}

// ID returns the stable "<floor>-<index>" identifier used for lookups
// and last-booked highlighting.
func (r Room) ID() string {
	return fmt.Sprintf("%d-%d", r.Floor, r.Index)
}

// String returns a human-readable description of the room and its state.
func (r Room) String() string {
	state := "free"
	if r.Booked {
		state = "booked"
	}
	return fmt.Sprintf("Room %d (floor %d, index %d, %s)", r.Number(), r.Floor, r.Index, state)
}
