package core

import "time"

// ExpectedHoursCalendar is a weekday-keyed lookup of contractual hours, used
// only for the worked-vs-expected delta display. It never blocks an action.
type ExpectedHoursCalendar struct {
	Hours [7]float64 // indexed by time.Weekday (Sunday = 0)
}

// DefaultCalendar is the standard 35-hour French week: 7h Monday to Friday,
// nothing on weekends.
func DefaultCalendar() ExpectedHoursCalendar {
	var cal ExpectedHoursCalendar
	for d := time.Monday; d <= time.Friday; d++ {
		cal.Hours[d] = 7
	}
	return cal
}

// CalendarFromWeekly spreads a weekly contractual total evenly over Monday to
// Friday.
func CalendarFromWeekly(weeklyHours float64) ExpectedHoursCalendar {
	var cal ExpectedHoursCalendar
	for d := time.Monday; d <= time.Friday; d++ {
		cal.Hours[d] = weeklyHours / 5
	}
	return cal
}

func (c ExpectedHoursCalendar) ForDate(t time.Time) float64 {
	return c.Hours[t.Weekday()]
}

// ForRange sums the per-day lookup over every calendar day in [start, end].
func (c ExpectedHoursCalendar) ForRange(start, end time.Time) float64 {
	total := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total += c.ForDate(d)
	}
	return total
}
