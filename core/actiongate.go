package core

// GateState is the position of a user in the daily clock sequence
// arrival -> (break_start -> break_end)* -> departure.
type GateState string

const (
	StateNotClockedIn GateState = "not_clocked_in"
	StateArrived      GateState = "arrived"
	StateOnBreak      GateState = "on_break"
	StateDeparted     GateState = "departed" // terminal for the day
)

// transitions is the single source of truth for which action is legal in
// which state. The same rules used to be re-derived inline by every screen;
// keeping them in one table is what stops the call sites from drifting.
var transitions = map[GateState]map[string]bool{
	StateNotClockedIn: {KindArrival: true},
	StateArrived:      {KindBreakStart: true, KindDeparture: true},
	StateOnBreak:      {KindBreakEnd: true},
	StateDeparted:     {},
}

var rejectionReasons = map[GateState]map[string]string{
	StateNotClockedIn: {
		KindBreakStart: "cannot start a break before clocking in",
		KindBreakEnd:   "no break in progress",
		KindDeparture:  "cannot clock out before clocking in",
	},
	StateArrived: {
		KindArrival:  "already clocked in today",
		KindBreakEnd: "no break in progress",
	},
	StateOnBreak: {
		KindArrival:    "already clocked in today",
		KindBreakStart: "a break is already in progress",
		KindDeparture:  "cannot clock out while on break",
	},
	StateDeparted: {
		KindArrival:    "day already closed; cannot clock in again",
		KindBreakStart: "day already closed",
		KindBreakEnd:   "day already closed",
		KindDeparture:  "already clocked out today",
	},
}

// StateOf projects today's derived summary onto a gate state.
func StateOf(day DaySummary) GateState {
	switch {
	case day.Departure != nil:
		return StateDeparted
	case day.Arrival == nil:
		return StateNotClockedIn
	case day.OpenBreak() != nil:
		return StateOnBreak
	default:
		return StateArrived
	}
}

// ActionAvailability reports which clock actions are currently legal.
type ActionAvailability struct {
	CanClockIn    bool `json:"can_clock_in"`
	CanStartBreak bool `json:"can_start_break"`
	CanEndBreak   bool `json:"can_end_break"`
	CanClockOut   bool `json:"can_clock_out"`
}

// Availability projects today's summary onto the four action flags. When a
// submission is already in flight every action is reported illegal, which is
// what prevents a double click from recording two arrivals.
func Availability(day DaySummary, inFlight bool) ActionAvailability {
	if inFlight {
		return ActionAvailability{}
	}
	allowed := transitions[StateOf(day)]
	return ActionAvailability{
		CanClockIn:    allowed[KindArrival],
		CanStartBreak: allowed[KindBreakStart],
		CanEndBreak:   allowed[KindBreakEnd],
		CanClockOut:   allowed[KindDeparture],
	}
}

// Authorize decides whether the proposed action may be submitted right now.
// A refusal comes back as a human-readable reason, never a panic; the caller
// decides how to surface it.
func Authorize(day DaySummary, kind string, inFlight bool) (bool, string) {
	if !ValidKind(kind) {
		return false, "unknown tracking type"
	}
	if inFlight {
		return false, "another clock action is already in flight"
	}
	state := StateOf(day)
	if transitions[state][kind] {
		return true, ""
	}
	if reason, ok := rejectionReasons[state][kind]; ok {
		return false, reason
	}
	return false, "action not allowed in current state"
}
