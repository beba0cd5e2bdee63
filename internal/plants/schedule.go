package plants

import (
	"sort"
	"time"
)

// Schedule is the per-county view over a set of stocking events, keyed
// by water body name.
type Schedule map[string]WaterBodyResult

// Group buckets events by water body and computes, per water body, the
// latest event dated on or before today (Recent) and the earliest event
// dated after today (Upcoming). Events are compared on calendar dates
// only; today should be a midnight-truncated date.
func Group(events []StockingEvent, today time.Time) Schedule {
	byWater := make(map[string][]StockingEvent)
	for _, ev := range events {
		byWater[ev.Water] = append(byWater[ev.Water], ev)
	}

	results := make(Schedule, len(byWater))
	for water, group := range byWater {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		var res WaterBodyResult
		for i := len(group) - 1; i >= 0; i-- {
			if !group[i].Date.After(today) {
				ev := group[i]
				res.Recent = &ev
				break
			}
		}
		for i := range group {
			if group[i].Date.After(today) {
				ev := group[i]
				res.Upcoming = &ev
				break
			}
		}
		results[water] = res
	}
	return results
}

// Waters returns the schedule's water body names in lexicographic
// order, the order the results view renders them in.
func (s Schedule) Waters() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
