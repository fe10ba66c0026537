package core

import (
	"sort"
	"time"
)

type DayStatus string

const (
	StatusNotStarted DayStatus = "not_started"
	StatusInProgress DayStatus = "in_progress"
	StatusOnBreak    DayStatus = "on_break"
	StatusCompleted  DayStatus = "completed"
)

// BreakInterval is one break within a day. End is nil while the break is
// still open (break_start recorded, no break_end yet).
type BreakInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

func (b BreakInterval) Closed() bool {
	return b.End != nil
}

func (b BreakInterval) Minutes() int {
	if b.End == nil {
		return 0
	}
	return int(b.End.Sub(b.Start) / time.Minute)
}

// DaySummary is the derived reconstruction of one calendar day. It is
// recomputed on every query and never persisted.
type DaySummary struct {
	Date             string          `json:"date"`
	Arrival          *time.Time      `json:"arrival"`
	Departure        *time.Time      `json:"departure"`
	Breaks           []BreakInterval `json:"breaks"`
	WorkedMinutes    int             `json:"worked_minutes"`
	BreakMinutes     int             `json:"break_minutes"`
	TotalSpanMinutes int             `json:"total_span_minutes"`
	IsComplete       bool            `json:"is_complete"`
	IsInProgress     bool            `json:"is_in_progress"`
	Status           DayStatus       `json:"status"`
}

// OpenBreak returns the last break interval if it is still open.
func (d DaySummary) OpenBreak() *BreakInterval {
	if n := len(d.Breaks); n > 0 && !d.Breaks[n-1].Closed() {
		return &d.Breaks[n-1]
	}
	return nil
}

// ReconstructDay derives a DaySummary from one day's events. The input may be
// empty, unordered or incomplete; incompleteness is a normal result, not an
// error. Duplicate arrivals collapse to the earliest, duplicate departures to
// the latest, which also makes a retried submission harmless.
func ReconstructDay(date string, events []Event) DaySummary {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	summary := DaySummary{Date: date, Status: StatusNotStarted}

	for _, e := range sorted {
		switch e.Kind {
		case KindArrival:
			if summary.Arrival == nil {
				at := e.At
				summary.Arrival = &at
			}
		case KindDeparture:
			at := e.At
			summary.Departure = &at
		case KindBreakStart:
			summary.Breaks = append(summary.Breaks, BreakInterval{Start: e.At})
		case KindBreakEnd:
			// close the pending break; a break_end with no open break is ignored
			if n := len(summary.Breaks); n > 0 && !summary.Breaks[n-1].Closed() {
				at := e.At
				summary.Breaks[n-1].End = &at
			}
		}
	}

	if summary.Arrival != nil && summary.Departure != nil {
		summary.TotalSpanMinutes = int(summary.Departure.Sub(*summary.Arrival) / time.Minute)
	}
	for _, b := range summary.Breaks {
		summary.BreakMinutes += b.Minutes()
	}
	summary.WorkedMinutes = summary.TotalSpanMinutes - summary.BreakMinutes
	if summary.WorkedMinutes < 0 {
		summary.WorkedMinutes = 0
	}

	summary.IsComplete = summary.Arrival != nil && summary.Departure != nil
	summary.IsInProgress = summary.Arrival != nil && summary.Departure == nil

	switch {
	case summary.Arrival == nil:
		summary.Status = StatusNotStarted
	case summary.IsComplete:
		summary.Status = StatusCompleted
	case summary.OpenBreak() != nil:
		summary.Status = StatusOnBreak
	default:
		summary.Status = StatusInProgress
	}

	return summary
}
