package core

import (
	"sort"
	"time"
)

// LiveElapsed computes the real-time worked minutes for a day still in
// progress. It is a today-only approximation: only the most recent break pair
// is considered, so once a departure exists the reconstructed DaySummary is
// authoritative and is what this function returns.
func LiveElapsed(today []Event, now time.Time) int {
	sorted := make([]Event, len(today))
	copy(sorted, today)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	var arrival *time.Time
	var departed bool
	var lastBreakStart *time.Time
	var lastBreakEnd *time.Time

	for _, e := range sorted {
		switch e.Kind {
		case KindArrival:
			if arrival == nil {
				at := e.At
				arrival = &at
			}
		case KindDeparture:
			departed = true
		case KindBreakStart:
			at := e.At
			lastBreakStart = &at
			lastBreakEnd = nil
		case KindBreakEnd:
			if lastBreakStart != nil && lastBreakEnd == nil {
				at := e.At
				lastBreakEnd = &at
			}
		}
	}

	if arrival == nil {
		return 0
	}
	if departed {
		key := arrival.Format("2006-01-02")
		return ReconstructDay(key, today).WorkedMinutes
	}

	elapsed := int(now.Sub(*arrival) / time.Minute)

	if lastBreakStart != nil {
		if lastBreakEnd != nil {
			elapsed -= int(lastBreakEnd.Sub(*lastBreakStart) / time.Minute)
		} else {
			// currently on break; time on break does not count as worked
			elapsed -= int(now.Sub(*lastBreakStart) / time.Minute)
		}
	}

	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
