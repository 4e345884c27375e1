package booking

import (
	"fmt"
)

// Topology describes the shape of a building: how many floors it has and how
// many rooms each floor holds. The grid is fully determined by its topology;
// rebuilding from the same topology always yields the same room set.
type Topology struct {
	Floors        int `yaml:"floors"`          // number of floors (must be > 0)
	RoomsPerFloor int `yaml:"rooms_per_floor"` // rooms on every floor except the top (must be > 0)
	TopFloorRooms int `yaml:"top_floor_rooms"` // rooms on the top floor (must be > 0)
}

// DefaultTopology returns the standard hotel shape: 10 floors with 10 rooms
// each, except the top floor which has 7, for 97 rooms in total.
func DefaultTopology() Topology {
	return Topology{
		Floors:        10,
		RoomsPerFloor: 10,
		TopFloorRooms: 7,
	}
}

// Validate checks topology fields and returns a descriptive error on the
// first violation. A zero-value Topology is invalid.
func (t Topology) Validate() error {
	if t.Floors <= 0 {
		return fmt.Errorf("topology: floors must be > 0, got %d", t.Floors)
	}
	if t.RoomsPerFloor <= 0 {
		return fmt.Errorf("topology: rooms_per_floor must be > 0, got %d", t.RoomsPerFloor)
	}
	if t.TopFloorRooms <= 0 {
		return fmt.Errorf("topology: top_floor_rooms must be > 0, got %d", t.TopFloorRooms)
	}
	return nil
}

// RoomsOn returns the number of rooms on the given floor.
// The top floor may differ from the rest of the building.
func (t Topology) RoomsOn(floor int) int {
	if floor == t.Floors {
		return t.TopFloorRooms
	}
	return t.RoomsPerFloor
}

// TotalRooms returns the room count of the whole building.
func (t Topology) TotalRooms() int {
	return (t.Floors-1)*t.RoomsPerFloor + t.TopFloorRooms
}
