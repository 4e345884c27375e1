package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomgrid/roomgrid/booking"
)

// TestFrame_SmallBuilding_ExactOutput pins the frame byte for byte on a
// small topology: header, legend, top-down floor rows with per-state cells,
// and the lift marker.
func TestFrame_SmallBuilding_ExactOutput(t *testing.T) {
	topo := booking.Topology{Floors: 3, RoomsPerFloor: 4, TopFloorRooms: 2}
	g, err := booking.NewGrid(topo)
	require.NoError(t, err)

	g.SetBooked([]*booking.Room{g.RoomAt(2, 1), g.RoomAt(1, 0), g.RoomAt(1, 1)})
	justBooked := map[string]bool{"1-0": true, "1-1": true}

	got := Frame(g.Snapshot(), topo, justBooked)

	want := "\n--- HOTEL VISUALIZATION ---\n" +
		"[ ]=Available  [X]=Booked  [*]=Just Booked\n\n" +
		"Floor  3 | [ ] [ ] \n" +
		"Floor  2 | [ ] [X] [ ] [ ] \n" +
		"Floor  1 | [*] [*] [ ] [ ] \n" +
		"          ^ LIFT ^\n\n"
	assert.Equal(t, want, got)
}

func TestFrame_DefaultTopology_RowShape(t *testing.T) {
	topo := booking.DefaultTopology()
	g, err := booking.NewGrid(topo)
	require.NoError(t, err)

	frame := Frame(g.Snapshot(), topo, nil)
	lines := strings.Split(frame, "\n")

	var floorRows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "Floor") {
			floorRows = append(floorRows, l)
		}
	}
	require.Len(t, floorRows, 10)

	// Top floor renders first and carries 7 cells; the rest carry 10.
	assert.Equal(t, "Floor 10 | "+strings.Repeat("[ ] ", 7), floorRows[0])
	assert.Equal(t, "Floor  9 | "+strings.Repeat("[ ] ", 10), floorRows[1])
	assert.Equal(t, "Floor  1 | "+strings.Repeat("[ ] ", 10), floorRows[9])
	assert.Contains(t, frame, "          ^ LIFT ^\n")
}

// TestFrame_HighlightBeatsBookedMarker verifies precedence: a room that is
// both booked and in the just-booked set renders as [*], never [X].
func TestFrame_HighlightBeatsBookedMarker(t *testing.T) {
	topo := booking.Topology{Floors: 1, RoomsPerFloor: 2, TopFloorRooms: 2}
	g, err := booking.NewGrid(topo)
	require.NoError(t, err)
	g.SetBooked([]*booking.Room{g.RoomAt(1, 0)})

	frame := Frame(g.Snapshot(), topo, map[string]bool{"1-0": true})

	assert.Contains(t, frame, "Floor  1 | [*] [ ] \n")
	assert.NotContains(t, frame, "[X]")
}

func TestFrame_NilHighlightSet_RendersBookedOnly(t *testing.T) {
	topo := booking.Topology{Floors: 1, RoomsPerFloor: 3, TopFloorRooms: 3}
	g, err := booking.NewGrid(topo)
	require.NoError(t, err)
	g.SetBooked([]*booking.Room{g.RoomAt(1, 2)})

	frame := Frame(g.Snapshot(), topo, nil)

	assert.Contains(t, frame, "Floor  1 | [ ] [ ] [X] \n")
}

func TestWrite_EmitsSameBytesAsFrame(t *testing.T) {
	topo := booking.Topology{Floors: 2, RoomsPerFloor: 3, TopFloorRooms: 1}
	g, err := booking.NewGrid(topo)
	require.NoError(t, err)
	g.SetBooked([]*booking.Room{g.RoomAt(1, 1)})

	var buf strings.Builder
	require.NoError(t, Write(&buf, g.Snapshot(), topo, map[string]bool{"1-1": true}))

	assert.Equal(t, Frame(g.Snapshot(), topo, map[string]bool{"1-1": true}), buf.String())
}
