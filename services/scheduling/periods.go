package scheduling

import "strconv"

// Period is a coarse time-of-day label used for display grouping.
type Period string

const (
	Morning   Period = "Morning"
	Afternoon Period = "Afternoon"
	Evening   Period = "Evening"
	Night     Period = "Night"
)

// Periods is the fixed display order of the period buckets.
var Periods = []Period{Morning, Afternoon, Evening, Night}

// GroupByPeriod buckets "HH:MM" slots by the hour component: Morning
// before 12:00, Afternoon 12:00-16:59, Evening 17:00-19:59, Night from
// 20:00. Input order is preserved within each bucket. Every period is
// present in the returned map; presentation decides whether to show empty
// buckets.
func GroupByPeriod(slots []string) map[Period][]string {
	groups := map[Period][]string{
		Morning:   {},
		Afternoon: {},
		Evening:   {},
		Night:     {},
	}
	for _, slot := range slots {
		p := periodOf(slot)
		groups[p] = append(groups[p], slot)
	}
	return groups
}

func periodOf(slot string) Period {
	hour := 0
	if len(slot) >= 2 {
		if h, err := strconv.Atoi(slot[:2]); err == nil {
			hour = h
		}
	}
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	case hour < 20:
		return Evening
	default:
		return Night
	}
}
