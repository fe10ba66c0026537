package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func workday(t *testing.T, date, arrival, departure string) []Event {
	t.Helper()
	return []Event{
		evt(t, KindArrival, date+"T"+arrival),
		evt(t, KindDeparture, date+"T"+departure),
	}
}

func TestSummarizePeriod_WeekWithShortWednesday(t *testing.T) {
	// Mon-Fri, 7h each day except Wednesday (3h)
	var events []Event
	events = append(events, workday(t, "2025-03-10", "09:00:00", "16:00:00")...)
	events = append(events, workday(t, "2025-03-11", "09:00:00", "16:00:00")...)
	events = append(events, workday(t, "2025-03-12", "09:00:00", "12:00:00")...)
	events = append(events, workday(t, "2025-03-13", "09:00:00", "16:00:00")...)
	events = append(events, workday(t, "2025-03-14", "09:00:00", "16:00:00")...)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	summary := SummarizePeriod(events, start, end, DefaultCalendar())

	assert.InDelta(t, 31.0, summary.TotalWorkedHours, 1e-9)
	assert.Equal(t, 5, summary.WorkingDaysCount)
	assert.InDelta(t, 6.2, summary.AverageHoursPerWorkingDay, 1e-9)
	assert.InDelta(t, 35.0, summary.ExpectedHours, 1e-9)
	assert.InDelta(t, -4.0, summary.DeltaHours, 1e-9)
}

func TestSummarizePeriod_EmptyRange(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	summary := SummarizePeriod(nil, start, end, ExpectedHoursCalendar{})

	assert.Empty(t, summary.Days)
	assert.Equal(t, 0, summary.WorkingDaysCount)
	assert.Equal(t, 0.0, summary.TotalWorkedHours)
	// guard: average must be 0, not NaN, when no day is complete
	assert.Equal(t, 0.0, summary.AverageHoursPerWorkingDay)
}

func TestSummarizePeriod_IncompleteDaysExcludedFromTotals(t *testing.T) {
	events := append(
		workday(t, "2025-03-10", "09:00:00", "17:00:00"),
		evt(t, KindArrival, "2025-03-11T09:00:00"), // no departure
	)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	summary := SummarizePeriod(events, start, end, ExpectedHoursCalendar{})

	assert.Len(t, summary.Days, 2) // the incomplete day still appears
	assert.Equal(t, 1, summary.WorkingDaysCount)
	assert.InDelta(t, 8.0, summary.TotalWorkedHours, 1e-9)
	assert.InDelta(t, 8.0, summary.AverageHoursPerWorkingDay, 1e-9)
}

func TestSummarizePeriod_DaysSortedDescending(t *testing.T) {
	events := append(
		workday(t, "2025-03-10", "09:00:00", "17:00:00"),
		workday(t, "2025-03-12", "09:00:00", "17:00:00")...,
	)

	start := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	summary := SummarizePeriod(events, start, end, ExpectedHoursCalendar{})

	assert.Len(t, summary.Days, 2)
	assert.Equal(t, "2025-03-12", summary.Days[0].Date)
	assert.Equal(t, "2025-03-10", summary.Days[1].Date)
}

func TestSummarizePeriod_EventsOutsideRangeIgnored(t *testing.T) {
	events := append(
		workday(t, "2025-03-10", "09:00:00", "17:00:00"),
		workday(t, "2025-04-01", "09:00:00", "17:00:00")...,
	)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	summary := SummarizePeriod(events, start, end, ExpectedHoursCalendar{})

	assert.Len(t, summary.Days, 1)
	assert.Equal(t, 1, summary.WorkingDaysCount)
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		start string
		end   string
	}{
		{
			name:  "Wednesday",
			input: time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC),
			start: "2025-03-10",
			end:   "2025-03-16",
		},
		{
			name:  "Monday",
			input: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			start: "2025-03-10",
			end:   "2025-03-16",
		},
		{
			name:  "Sunday belongs to the preceding Monday week",
			input: time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC),
			start: "2025-03-10",
			end:   "2025-03-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekOf(tt.input)
			assert.Equal(t, tt.start, start.Format("2006-01-02"))
			assert.Equal(t, tt.end, end.Format("2006-01-02"))
		})
	}
}

func TestMonthOf(t *testing.T) {
	start, end := MonthOf(time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-02-28", end.Format("2006-01-02"))
}

func TestDaySummaries_AllDaysPresent(t *testing.T) {
	events := append(
		workday(t, "2025-03-10", "09:00:00", "17:00:00"),
		evt(t, KindArrival, "2025-03-11T09:00:00"),
	)

	days := DaySummaries(events)

	assert.Len(t, days, 2)
	assert.Equal(t, "2025-03-11", days[0].Date)
	assert.Equal(t, "2025-03-10", days[1].Date)
}
