package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{Seed: seed})
	require.NoError(t, err)
	return s
}

func TestNewSession_ZeroTopologyDefaults(t *testing.T) {
	s := newTestSession(t, 1)
	assert.Equal(t, DefaultTopology(), s.Topology())
	assert.Equal(t, 97, s.FreeCount())
}

func TestNewSession_InvalidTopology_ReturnsError(t *testing.T) {
	_, err := NewSession(SessionConfig{Topology: Topology{Floors: 3, RoomsPerFloor: 0, TopFloorRooms: 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rooms_per_floor must be > 0")
}

func TestNewSession_UnknownTraceLevel_ReturnsError(t *testing.T) {
	_, err := NewSession(SessionConfig{TraceLevel: "everything"})
	assert.EqualError(t, err, `unknown trace level "everything"`)
}

func TestSessionBook_StampsUniqueRefs(t *testing.T) {
	s := newTestSession(t, 1)

	first := s.Book(2)
	second := s.Book(2)

	require.True(t, first.Succeeded())
	require.True(t, second.Succeeded())
	assert.NotEmpty(t, first.Ref)
	assert.NotEmpty(t, second.Ref)
	assert.NotEqual(t, first.Ref, second.Ref, "booking references must be unique")
}

func TestSessionBook_FailureLeavesRefEmptyAndHighlightIntact(t *testing.T) {
	s := newTestSession(t, 1)

	ok := s.Book(3)
	require.True(t, ok.Succeeded())
	highlightBefore := s.LastBooked()

	bad := s.Book(9)
	assert.Equal(t, OutcomeInvalidCount, bad.Outcome)
	assert.Empty(t, bad.Ref)
	assert.Equal(t, highlightBefore, s.LastBooked(), "failed booking must keep the previous highlight")
}

func TestSessionLastBooked_TracksLatestSuccess(t *testing.T) {
	s := newTestSession(t, 1)

	res := s.Book(3)
	require.True(t, res.Succeeded())

	last := s.LastBooked()
	require.Len(t, last, 3)
	for _, id := range res.RoomIDs() {
		assert.True(t, last[id], "room %s missing from highlight set", id)
	}

	next := s.Book(2)
	require.True(t, next.Succeeded())
	last = s.LastBooked()
	require.Len(t, last, 2)
	for _, id := range res.RoomIDs() {
		assert.False(t, last[id], "stale highlight for %s", id)
	}
}

func TestSessionLastBooked_ReturnsCopy(t *testing.T) {
	s := newTestSession(t, 1)
	require.True(t, s.Book(1).Succeeded())

	got := s.LastBooked()
	for id := range got {
		delete(got, id)
	}
	assert.Len(t, s.LastBooked(), 1, "mutating the returned set must not touch the session")
}

func TestSessionReset_FreesEverythingAndClearsHighlight(t *testing.T) {
	s := newTestSession(t, 1)
	require.True(t, s.Book(5).Succeeded())

	s.Reset()

	assert.Equal(t, 97, s.FreeCount())
	assert.Empty(t, s.LastBooked())
	assert.Equal(t, 1, s.Metrics().Resets)
}

func TestSessionRandomize_SameSeedSameOccupancy(t *testing.T) {
	s1 := newTestSession(t, 77)
	s2 := newTestSession(t, 77)

	s1.Randomize(DefaultOccupancyP)
	s2.Randomize(DefaultOccupancyP)

	assert.Equal(t, s1.Snapshot(), s2.Snapshot())
}

func TestSessionRandomize_ClearsHighlightAndCounts(t *testing.T) {
	s := newTestSession(t, 3)
	require.True(t, s.Book(2).Succeeded())

	s.Randomize(DefaultOccupancyP)

	assert.Empty(t, s.LastBooked())
	assert.Equal(t, 1, s.Metrics().Randomizations)
}

// TestSession_FullReplayIsDeterministic drives an identical mixed command
// sequence through two sessions and expects identical observable state.
func TestSession_FullReplayIsDeterministic(t *testing.T) {
	drive := func(s *Session) []AllocationResult {
		var out []AllocationResult
		s.Randomize(DefaultOccupancyP)
		out = append(out, s.Book(3), s.Book(5), s.Book(1))
		s.Randomize(0.6)
		out = append(out, s.Book(4), s.Book(2))
		return out
	}

	s1 := newTestSession(t, 2024)
	s2 := newTestSession(t, 2024)
	r1 := drive(s1)
	r2 := drive(s2)

	require.Len(t, r2, len(r1))
	for i := range r1 {
		assert.Equal(t, r1[i].Outcome, r2[i].Outcome, "request %d outcome", i)
		assert.Equal(t, r1[i].Tier, r2[i].Tier, "request %d tier", i)
		assert.Equal(t, r1[i].Cost, r2[i].Cost, "request %d cost", i)
		assert.Equal(t, r1[i].RoomIDs(), r2[i].RoomIDs(), "request %d rooms", i)
	}
	assert.Equal(t, s1.Snapshot(), s2.Snapshot())
}

func TestSessionMetrics_AccumulateAcrossBookings(t *testing.T) {
	s := newTestSession(t, 1)

	s.Book(3) // success
	s.Book(0) // invalid
	s.Book(5) // success

	m := s.Metrics()
	assert.Equal(t, 3, m.AllocationRequests)
	assert.Equal(t, 2, m.Successes())
	assert.Equal(t, 1, m.InvalidCount)
	assert.Equal(t, 8, m.RoomsBooked)
}

func TestSessionTrace_CapturesWhenEnabled(t *testing.T) {
	s, err := NewSession(SessionConfig{Seed: 1, TraceLevel: TraceLevelDecisions})
	require.NoError(t, err)

	require.True(t, s.Book(2).Succeeded())
	assert.NotEmpty(t, s.Trace().Candidates)

	chosen := 0
	for _, c := range s.Trace().Candidates {
		if c.Chosen {
			chosen++
		}
	}
	assert.Equal(t, 1, chosen)
}

func TestSessionSeed_RoundTrips(t *testing.T) {
	s := newTestSession(t, 555)
	assert.Equal(t, int64(555), s.Seed())
}
