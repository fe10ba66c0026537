package core

import (
	"sort"

	"gardiendutemps.fr/gardien/utils"
)

// GroupByDay partitions events into calendar-day buckets keyed by the local
// date component ("2006-01-02") of each event. Every event lands in exactly
// one bucket; input order is irrelevant.
//
// The key is the literal date of the timestamp, not a shifted business day:
// an event at 00:10 belongs to that calendar day even when the session started
// the previous evening. Overnight shifts therefore split across two buckets.
func GroupByDay(events []Event) map[string][]Event {
	return utils.GroupBy(events, func(e Event) string {
		return e.At.Format(utils.DateLayout)
	})
}

// DayKeys returns the bucket keys sorted descending (most recent first, the
// display convention used by the period views).
func DayKeys(buckets map[string][]Event) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
