package service

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"campusplan/backend/internal/model"
	"campusplan/backend/internal/rulebuilder"
)

// ── ICS availability parser ──────────────────────────────────
//
// Turns a standard iCalendar (RFC 5545) feed into a weekly blocked-time
// grid: weekday name → sorted "HH:MM-HH:MM" windows. Each VEVENT marks
// time the lecturer is NOT available.
//
//   - DTSTART/DTEND fix the window and, absent an RRULE, the weekday
//   - a weekly RRULE with BYDAY spreads the window over those weekdays
//   - duplicate windows on the same day collapse to one
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize = 5 * 1024 * 1024 // 5MB
	berlinTimezone = "Europe/Berlin"
)

// byDayNames maps RFC 5545 BYDAY codes to weekday names.
var byDayNames = map[string]string{
	"MO": "Monday",
	"TU": "Tuesday",
	"WE": "Wednesday",
	"TH": "Thursday",
	"FR": "Friday",
	"SA": "Saturday",
	"SU": "Sunday",
}

// ParseAvailabilityICS parses an ICS stream into a schedule grid and
// reports how many events contributed to it.
func ParseAvailabilityICS(reader io.Reader) (model.JSONMap, int, error) {
	cal, err := ics.ParseCalendar(io.LimitReader(reader, icsMaxFileSize))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrICSInvalid, err)
	}

	loc := campusLocation()

	windows := make(map[string]map[string]bool) // weekday → window set
	parsed := 0
	for _, evt := range cal.Events() {
		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
		if err != nil {
			continue
		}
		dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd, loc)
		if err != nil {
			dtEnd = dtStart.Add(time.Hour)
		}

		window := dtStart.Format("15:04") + "-" + dtEnd.Format("15:04")
		for _, day := range eventWeekdays(evt, dtStart) {
			if windows[day] == nil {
				windows[day] = make(map[string]bool)
			}
			windows[day][window] = true
		}
		parsed++
	}

	schedule := model.JSONMap{}
	for _, day := range rulebuilder.DaysOfWeek {
		set := windows[day]
		if len(set) == 0 {
			continue
		}
		list := make([]string, 0, len(set))
		for w := range set {
			list = append(list, w)
		}
		sort.Strings(list)
		schedule[day] = list
	}
	return schedule, parsed, nil
}

// campusLocation resolves the campus timezone, falling back to UTC on
// hosts without tzdata.
func campusLocation() *time.Location {
	loc, err := time.LoadLocation(berlinTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// eventWeekdays resolves which weekdays an event blocks: the BYDAY list
// of a weekly RRULE when present, otherwise the DTSTART weekday.
func eventWeekdays(evt *ics.VEvent, dtStart time.Time) []string {
	if prop := evt.GetProperty(ics.ComponentPropertyRrule); prop != nil {
		if days := parseByDay(prop.Value); len(days) > 0 {
			return days
		}
	}
	return []string{dtStart.Weekday().String()}
}

// parseByDay extracts weekday names from an RRULE's BYDAY part
// (e.g. FREQ=WEEKLY;BYDAY=MO,WE,FR). Ordinal prefixes like 1MO are
// stripped.
func parseByDay(rrule string) []string {
	for _, part := range strings.Split(rrule, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || strings.ToUpper(kv[0]) != "BYDAY" {
			continue
		}
		var days []string
		for _, code := range strings.Split(kv[1], ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			if len(code) > 2 {
				code = code[len(code)-2:]
			}
			if name, ok := byDayNames[code]; ok {
				days = append(days, name)
			}
		}
		return rulebuilder.SortDays(days)
	}
	return nil
}

// parseICSDateTime reads a date-time property, honoring an explicit TZID
// parameter and falling back to the campus timezone.
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "Z") {
			return t.In(loc), nil
		}
		if tzid != "" {
			if tzLoc, err := time.LoadLocation(tzid); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc).In(loc), nil
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("unparseable date: %s", val)
}
