package attendance

import (
	"sort"
	"time"
)

type minuteKey struct {
	id     int64
	minute time.Time
}

// DedupePerMinute keeps the earliest scan per employee per wall-clock
// minute. Among scans with identical timestamps the first in input order
// survives. The input slice is not modified.
func DedupePerMinute(events []ScanEvent) []ScanEvent {
	sorted := make([]ScanEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		return a.Timestamp.Before(b.Timestamp)
	})

	seen := make(map[minuteKey]struct{}, len(sorted))
	res := sorted[:0]
	for _, ev := range sorted {
		key := minuteKey{ev.EmployeeID, ev.Timestamp.Truncate(time.Minute)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, ev)
	}

	sortByTime(res)
	return res
}
