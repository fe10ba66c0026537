package core

import "sync"

// TimePerTask attributes each completed day's worked minutes to the task
// referenced by that day's arrival event. Days whose arrival carries no task
// reference are not attributed.
func TimePerTask(events []Event) map[int32]int {
	totals := make(map[int32]int)
	buckets := GroupByDay(events)
	for date, dayEvents := range buckets {
		day := ReconstructDay(date, dayEvents)
		if !day.IsComplete {
			continue
		}
		for _, e := range dayEvents {
			if e.Kind == KindArrival && e.TaskID != nil && day.Arrival != nil && e.At.Equal(*day.Arrival) {
				totals[*e.TaskID] += day.WorkedMinutes
				break
			}
		}
	}
	return totals
}

type taskMemoEntry struct {
	generation uint64
	minutes    int
}

// TaskTimeMemo caches per-task worked totals. It replaces the old time-based
// expiry: the owner bumps the generation whenever the underlying event list is
// re-fetched, so a cached value can never outlive the data it was built from.
type TaskTimeMemo struct {
	mu         sync.Mutex
	generation uint64
	entries    map[int32]taskMemoEntry
}

func NewTaskTimeMemo() *TaskTimeMemo {
	return &TaskTimeMemo{entries: make(map[int32]taskMemoEntry)}
}

// Bump invalidates every cached value. Call it after each fresh fetch.
func (m *TaskTimeMemo) Bump() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
}

// Minutes returns the cached total for taskID, recomputing through compute
// when the cache is stale or cold.
func (m *TaskTimeMemo) Minutes(taskID int32, compute func() int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.entries[taskID]; ok && entry.generation == m.generation {
		return entry.minutes
	}
	minutes := compute()
	m.entries[taskID] = taskMemoEntry{generation: m.generation, minutes: minutes}
	return minutes
}
