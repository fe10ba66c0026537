package core

import (
	"time"

	"gardiendutemps.fr/gardien/utils"
)

// PeriodSummary aggregates DaySummary values over an inclusive date range.
// Totals and the average only count completed days; days without any event do
// not appear in Days at all.
type PeriodSummary struct {
	RangeStart                string       `json:"range_start"`
	RangeEnd                  string       `json:"range_end"`
	Days                      []DaySummary `json:"days"`
	TotalWorkedHours          float64      `json:"total_worked_hours"`
	TotalBreakHours           float64      `json:"total_break_hours"`
	WorkingDaysCount          int          `json:"working_days_count"`
	AverageHoursPerWorkingDay float64      `json:"average_hours_per_working_day"`
	ExpectedHours             float64      `json:"expected_hours"`
	DeltaHours                float64      `json:"delta_hours"`
}

// SummarizePeriod reconstructs every day in [start, end] that has at least one
// event and rolls up the totals. Days is sorted date descending; that order is
// a display convention, nothing downstream depends on it.
func SummarizePeriod(events []Event, start, end time.Time, cal ExpectedHoursCalendar) PeriodSummary {
	startKey := start.Format(utils.DateLayout)
	endKey := end.Format(utils.DateLayout)

	inRange := utils.Filter(events, func(e Event) bool {
		key := e.At.Format(utils.DateLayout)
		return key >= startKey && key <= endKey
	})

	buckets := GroupByDay(inRange)

	summary := PeriodSummary{
		RangeStart: startKey,
		RangeEnd:   endKey,
		Days:       make([]DaySummary, 0, len(buckets)),
	}

	for _, date := range DayKeys(buckets) {
		day := ReconstructDay(date, buckets[date])
		summary.Days = append(summary.Days, day)

		if day.IsComplete {
			summary.TotalWorkedHours += float64(day.WorkedMinutes) / 60
			summary.TotalBreakHours += float64(day.BreakMinutes) / 60
			summary.WorkingDaysCount++
		}
	}

	// explicit guard: an empty period averages to 0, never NaN
	if summary.WorkingDaysCount > 0 {
		summary.AverageHoursPerWorkingDay = summary.TotalWorkedHours / float64(summary.WorkingDaysCount)
	}

	summary.ExpectedHours = cal.ForRange(start, end)
	summary.DeltaHours = summary.TotalWorkedHours - summary.ExpectedHours

	return summary
}

// DaySummaries reconstructs every day present in the event list, sorted date
// descending.
func DaySummaries(events []Event) []DaySummary {
	buckets := GroupByDay(events)
	days := make([]DaySummary, 0, len(buckets))
	for _, date := range DayKeys(buckets) {
		days = append(days, ReconstructDay(date, buckets[date]))
	}
	return days
}

// WeekOf returns the Monday-to-Sunday range containing t.
func WeekOf(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthOf returns the first and last day of the month containing t.
func MonthOf(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, -1)
}
