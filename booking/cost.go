package booking

// Travel-cost weights, in minutes. Vertical movement between floors is
// twice as expensive as horizontal movement between adjacent room slots.
const (
	// FloorTravelMinutes is the cost of moving one floor up or down.
	FloorTravelMinutes = 2
	// RoomTravelMinutes is the cost of moving one room slot along a corridor.
	RoomTravelMinutes = 1
)

// SameFloorCost computes the travel cost of a candidate set whose rooms all
// share one floor: the horizontal index span max(index) - min(index).
// Pure function; the caller guarantees the same-floor precondition.
func SameFloorCost(rooms []*Room) int {
	if len(rooms) == 0 {
		return 0
	}
	minIdx, maxIdx := rooms[0].Index, rooms[0].Index
	for _, r := range rooms[1:] {
		if r.Index < minIdx {
			minIdx = r.Index
		}
		if r.Index > maxIdx {
			maxIdx = r.Index
		}
	}
	return (maxIdx - minIdx) * RoomTravelMinutes
}

// CrossFloorCost computes the travel cost of a candidate set spanning
// floors: weighted bounding-box extents in (floor, index) space. Vertical
// and horizontal spans are measured independently; this is not a path
// length. Pure function.
func CrossFloorCost(rooms []*Room) int {
	if len(rooms) == 0 {
		return 0
	}
	minF, maxF := rooms[0].Floor, rooms[0].Floor
	minI, maxI := rooms[0].Index, rooms[0].Index
	for _, r := range rooms[1:] {
		if r.Floor < minF {
			minF = r.Floor
		}
		if r.Floor > maxF {
			maxF = r.Floor
		}
		if r.Index < minI {
			minI = r.Index
		}
		if r.Index > maxI {
			maxI = r.Index
		}
	}
	return (maxF-minF)*FloorTravelMinutes + (maxI-minI)*RoomTravelMinutes
}

// proximityScore linearizes the 2D grid for the cross-floor search.
// Rooms physically close to the lift sort together: one floor of vertical
// distance counts as much as FloorTravelMinutes room slots.
func proximityScore(r *Room) int {
	return r.Floor*FloorTravelMinutes + r.Index*RoomTravelMinutes
}
