package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gardiendutemps.fr/gardien/utils"
)

func TestTimePerTask(t *testing.T) {
	task1 := utils.Ptr(int32(1))
	task2 := utils.Ptr(int32(2))

	events := []Event{
		{Kind: KindArrival, At: ts(t, "2025-03-10T09:00:00"), TaskID: task1},
		{Kind: KindDeparture, At: ts(t, "2025-03-10T17:00:00")},
		{Kind: KindArrival, At: ts(t, "2025-03-11T09:00:00"), TaskID: task2},
		{Kind: KindDeparture, At: ts(t, "2025-03-11T13:00:00")},
		// incomplete day: not attributed
		{Kind: KindArrival, At: ts(t, "2025-03-12T09:00:00"), TaskID: task1},
	}

	totals := TimePerTask(events)

	assert.Equal(t, 480, totals[1])
	assert.Equal(t, 240, totals[2])
}

func TestTimePerTask_NoTaskRef(t *testing.T) {
	events := []Event{
		evt(t, KindArrival, "2025-03-10T09:00:00"),
		evt(t, KindDeparture, "2025-03-10T17:00:00"),
	}

	assert.Empty(t, TimePerTask(events))
}

func TestTaskTimeMemo_CachesWithinGeneration(t *testing.T) {
	memo := NewTaskTimeMemo()
	calls := 0
	compute := func() int {
		calls++
		return 120
	}

	assert.Equal(t, 120, memo.Minutes(7, compute))
	assert.Equal(t, 120, memo.Minutes(7, compute))
	assert.Equal(t, 1, calls)
}

func TestTaskTimeMemo_BumpInvalidates(t *testing.T) {
	memo := NewTaskTimeMemo()
	calls := 0
	compute := func() int {
		calls++
		return calls * 10
	}

	assert.Equal(t, 10, memo.Minutes(7, compute))
	memo.Bump()
	// stale value must not survive a fresh fetch of the underlying data
	assert.Equal(t, 20, memo.Minutes(7, compute))
	assert.Equal(t, 2, calls)
}
