package core

import (
	"fmt"
	"time"

	"gardiendutemps.fr/gardien/model"
	"gardiendutemps.fr/gardien/utils"
)

// Event kinds, bit-compatible with the tracking_type literals stored by the
// REST layer.
const (
	KindArrival    = "arrival"
	KindBreakStart = "break_start"
	KindBreakEnd   = "break_end"
	KindDeparture  = "departure"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindArrival, KindBreakStart, KindBreakEnd, KindDeparture:
		return true
	}
	return false
}

// Event is the parsed form of a stored time entry. Everything in this package
// operates on Events; raw entries pass through FromEntries exactly once.
type Event struct {
	ID     string
	Kind   string
	At     time.Time
	TaskID *int32
}

// FromEntries parses raw entries into Events in the given location.
// Entries with an unknown tracking_type or an unparsable timestamp are
// skipped: the engine never fails a whole query because one record is bad.
// The number of skipped entries is returned so callers can log it.
func FromEntries(entries []model.TimeEntry, loc *time.Location) ([]Event, int) {
	events := make([]Event, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		if !ValidKind(e.TrackingType) {
			skipped++
			continue
		}
		t, err := utils.ParseISOTime(e.DateTime)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, Event{
			ID:     e.ID,
			Kind:   e.TrackingType,
			At:     t.In(loc),
			TaskID: e.TaskID,
		})
	}
	return events, skipped
}

// Proposal is a clock action a caller would like to record. The Action Gate
// decides whether it is currently legal; the engine itself never writes.
type Proposal struct {
	Kind   string
	At     time.Time
	TaskID *int32
}

func (p Proposal) Validate() error {
	if !ValidKind(p.Kind) {
		return fmt.Errorf("unknown tracking type %q", p.Kind)
	}
	if p.At.IsZero() {
		return fmt.Errorf("missing timestamp")
	}
	return nil
}
