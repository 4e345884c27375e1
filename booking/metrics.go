// Tracks session-wide booking metrics such as:

package booking

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about a booking session for final
// reporting. Useful for evaluating allocation behavior over many
// requests and debugging occupancy experiments.
type Metrics struct {
	AllocationRequests int // Number of Allocate calls observed
	SameFloorBookings  int // Successful bookings resolved on a single floor
	CrossFloorBookings int // Successful bookings resolved across floors
	RoomsBooked        int // Total rooms committed across all successes
	CostSum            int // Sum of travel costs across all successes

	InvalidCount      int // Requests rejected for count outside [1,5]
	InsufficientRooms int // Requests rejected for lack of free rooms
	NoFeasibleSet     int // Requests where neither tier produced a set

	Resets         int // Times the grid was reset to fully free
	Randomizations int // Times random occupancy was generated
}

// RecordResult folds one allocation result into the counters.
func (m *Metrics) RecordResult(res AllocationResult) {
	m.AllocationRequests++
	switch res.Outcome {
	case OutcomeSuccess:
		switch res.Tier {
		case TierSameFloor:
			m.SameFloorBookings++
		case TierCrossFloor:
			m.CrossFloorBookings++
		}
		m.RoomsBooked += len(res.Rooms)
		m.CostSum += res.Cost
	case OutcomeInvalidCount:
		m.InvalidCount++
	case OutcomeInsufficientRooms:
		m.InsufficientRooms++
	case OutcomeNoFeasibleSet:
		m.NoFeasibleSet++
	}
}

// Successes returns the number of successful bookings recorded.
func (m *Metrics) Successes() int {
	return m.SameFloorBookings + m.CrossFloorBookings
}

// Print displays aggregated metrics at the end of a session.
// Includes the outcome breakdown and the average travel cost per success.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Session Metrics ===")
	fmt.Fprintf(w, "Allocation Requests  : %d\n", m.AllocationRequests)
	fmt.Fprintf(w, "Successful Bookings  : %d\n", m.Successes())
	if m.Successes() > 0 {
		avgCost := float64(m.CostSum) / float64(m.Successes())
		fmt.Fprintf(w, "Same-Floor Bookings  : %d\n", m.SameFloorBookings)
		fmt.Fprintf(w, "Cross-Floor Bookings : %d\n", m.CrossFloorBookings)
		fmt.Fprintf(w, "Rooms Booked         : %d\n", m.RoomsBooked)
		fmt.Fprintf(w, "Average Travel Cost  : %.2f minutes\n", avgCost)
	}
	fmt.Fprintf(w, "Invalid Counts       : %d\n", m.InvalidCount)
	fmt.Fprintf(w, "Insufficient Rooms   : %d\n", m.InsufficientRooms)
	fmt.Fprintf(w, "No Feasible Set      : %d\n", m.NoFeasibleSet)
	fmt.Fprintf(w, "Resets               : %d\n", m.Resets)
	fmt.Fprintf(w, "Randomizations       : %d\n", m.Randomizations)
}
