package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByDay_EveryEventInExactlyOneBucket(t *testing.T) {
	events := []Event{
		evt(t, KindArrival, "2025-03-10T09:00:00"),
		evt(t, KindDeparture, "2025-03-10T17:00:00"),
		evt(t, KindArrival, "2025-03-11T08:30:00"),
		evt(t, KindArrival, "2025-03-12T00:10:00"), // just after midnight
	}

	buckets := GroupByDay(events)

	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	assert.Equal(t, len(events), total)
	assert.Len(t, buckets["2025-03-10"], 2)
	assert.Len(t, buckets["2025-03-11"], 1)
	// literal date component, no business-day shifting
	assert.Len(t, buckets["2025-03-12"], 1)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}

func TestDayKeys_SortedDescending(t *testing.T) {
	buckets := map[string][]Event{
		"2025-03-10": nil,
		"2025-03-12": nil,
		"2025-03-11": nil,
	}

	assert.Equal(t, []string{"2025-03-12", "2025-03-11", "2025-03-10"}, DayKeys(buckets))
}
