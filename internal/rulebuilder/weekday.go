package rulebuilder

import "sort"

// DaysOfWeek lists weekday names in canonical week order.
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// weekdayIndex fixes the canonical position of each weekday.
var weekdayIndex = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// ValidDay reports whether day is a known weekday name.
func ValidDay(day string) bool {
	_, ok := weekdayIndex[day]
	return ok
}

// SortDays returns the known weekdays of days in Monday→Sunday order.
// Unknown names are dropped; the input slice is not modified.
func SortDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if ValidDay(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return weekdayIndex[out[i]] < weekdayIndex[out[j]]
	})
	return out
}

// ToggleDay adds day to the selection if absent, removes it if present,
// and returns the result in canonical week order.
func ToggleDay(days []string, day string) []string {
	if !ValidDay(day) {
		return SortDays(days)
	}
	out := make([]string, 0, len(days)+1)
	removed := false
	for _, d := range days {
		if d == day {
			removed = true
			continue
		}
		out = append(out, d)
	}
	if !removed {
		out = append(out, day)
	}
	return SortDays(out)
}
