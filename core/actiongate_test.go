package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dayFrom(t *testing.T, events ...Event) DaySummary {
	t.Helper()
	return ReconstructDay("2025-03-10", events)
}

func TestAvailability_Sequence(t *testing.T) {
	arrival := evt(t, KindArrival, "2025-03-10T09:00:00")
	breakStart := evt(t, KindBreakStart, "2025-03-10T12:00:00")
	breakEnd := evt(t, KindBreakEnd, "2025-03-10T13:00:00")
	departure := evt(t, KindDeparture, "2025-03-10T17:00:00")

	tests := []struct {
		name     string
		day      DaySummary
		expected ActionAvailability
	}{
		{
			name:     "not clocked in",
			day:      dayFrom(t),
			expected: ActionAvailability{CanClockIn: true},
		},
		{
			name:     "arrived",
			day:      dayFrom(t, arrival),
			expected: ActionAvailability{CanStartBreak: true, CanClockOut: true},
		},
		{
			name:     "on break",
			day:      dayFrom(t, arrival, breakStart),
			expected: ActionAvailability{CanEndBreak: true},
		},
		{
			name:     "back from break",
			day:      dayFrom(t, arrival, breakStart, breakEnd),
			expected: ActionAvailability{CanStartBreak: true, CanClockOut: true},
		},
		{
			name:     "departed",
			day:      dayFrom(t, arrival, breakStart, breakEnd, departure),
			expected: ActionAvailability{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Availability(tt.day, false))
		})
	}
}

func TestAvailability_InFlightBlocksEverything(t *testing.T) {
	day := dayFrom(t, evt(t, KindArrival, "2025-03-10T09:00:00"))
	assert.Equal(t, ActionAvailability{}, Availability(day, true))
}

func TestAuthorize_Rejections(t *testing.T) {
	arrival := evt(t, KindArrival, "2025-03-10T09:00:00")
	breakStart := evt(t, KindBreakStart, "2025-03-10T12:00:00")
	departure := evt(t, KindDeparture, "2025-03-10T17:00:00")

	tests := []struct {
		name string
		day  DaySummary
		kind string
	}{
		{"double clock in", dayFrom(t, arrival), KindArrival},
		{"clock out while on break", dayFrom(t, arrival, breakStart), KindDeparture},
		{"break before arrival", dayFrom(t), KindBreakStart},
		{"end break without break", dayFrom(t, arrival), KindBreakEnd},
		{"clock in after departure", dayFrom(t, arrival, departure), KindArrival},
		{"reopen closed day", dayFrom(t, arrival, departure), KindDeparture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Authorize(tt.day, tt.kind, false)
			assert.False(t, ok)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestAuthorize_LegalActions(t *testing.T) {
	arrival := evt(t, KindArrival, "2025-03-10T09:00:00")
	breakStart := evt(t, KindBreakStart, "2025-03-10T12:00:00")

	ok, reason := Authorize(dayFrom(t), KindArrival, false)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, _ = Authorize(dayFrom(t, arrival), KindDeparture, false)
	assert.True(t, ok)

	ok, _ = Authorize(dayFrom(t, arrival, breakStart), KindBreakEnd, false)
	assert.True(t, ok)
}

func TestAuthorize_InFlight(t *testing.T) {
	ok, reason := Authorize(dayFrom(t), KindArrival, true)
	assert.False(t, ok)
	assert.Equal(t, "another clock action is already in flight", reason)
}

func TestAuthorize_UnknownKind(t *testing.T) {
	ok, reason := Authorize(dayFrom(t), "lunch", false)
	assert.False(t, ok)
	assert.Equal(t, "unknown tracking type", reason)
}

func TestStateOf(t *testing.T) {
	arrival := evt(t, KindArrival, "2025-03-10T09:00:00")
	breakStart := evt(t, KindBreakStart, "2025-03-10T12:00:00")
	breakEnd := evt(t, KindBreakEnd, "2025-03-10T13:00:00")
	departure := evt(t, KindDeparture, "2025-03-10T17:00:00")

	assert.Equal(t, StateNotClockedIn, StateOf(dayFrom(t)))
	assert.Equal(t, StateArrived, StateOf(dayFrom(t, arrival)))
	assert.Equal(t, StateOnBreak, StateOf(dayFrom(t, arrival, breakStart)))
	assert.Equal(t, StateArrived, StateOf(dayFrom(t, arrival, breakStart, breakEnd)))
	assert.Equal(t, StateDeparted, StateOf(dayFrom(t, arrival, breakStart, breakEnd, departure)))
}

// Walking every legal sequence from the initial state: clocking in is never
// offered twice, and clocking out is never offered while on break.
func TestGate_OrderingInvariants(t *testing.T) {
	for state, allowed := range transitions {
		if allowed[KindArrival] {
			assert.Equal(t, StateNotClockedIn, state, "arrival only legal before clocking in")
		}
		if state == StateOnBreak {
			assert.False(t, allowed[KindDeparture], "clock out must be illegal while on break")
		}
	}
}
