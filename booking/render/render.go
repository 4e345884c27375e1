// Package render draws a booking grid as fixed-width console art.
//
// The frame format is stable output consumed by golden tests: a header,
// a legend, one row per floor from the top floor down to floor 1, and a
// lift marker under the left edge of the rows. Free rooms print as "[ ]",
// booked as "[X]", and rooms named in the just-booked set as "[*]".
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roomgrid/roomgrid/booking"
)

// Frame renders one snapshot. justBooked holds room IDs to highlight; nil
// means highlight nothing. Rooms must be in floor-major order as produced
// by Session.Snapshot.
func Frame(rooms []booking.Room, topo booking.Topology, justBooked map[string]bool) string {
	var b strings.Builder
	b.WriteString("\n--- HOTEL VISUALIZATION ---\n")
	b.WriteString("[ ]=Available  [X]=Booked  [*]=Just Booked\n\n")

	byFloor := make(map[int][]booking.Room)
	for _, r := range rooms {
		byFloor[r.Floor] = append(byFloor[r.Floor], r)
	}

	for f := topo.Floors; f >= 1; f-- {
		fmt.Fprintf(&b, "Floor %2d | ", f)
		for _, r := range byFloor[f] {
			switch {
			case justBooked[r.ID()]:
				b.WriteString("[*] ")
			case r.Booked:
				b.WriteString("[X] ")
			default:
				b.WriteString("[ ] ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("          ^ LIFT ^\n\n")
	return b.String()
}

// Write renders one snapshot directly to w. See Frame for the format.
func Write(w io.Writer, rooms []booking.Room, topo booking.Topology, justBooked map[string]bool) error {
	_, err := io.WriteString(w, Frame(rooms, topo, justBooked))
	return err
}
