package rulebuilder

import (
	"fmt"
	"strings"
	"time"
)

// BuilderParams holds the category-specific structured inputs used to
// generate rule text. Each category reads only the subset it needs.
type BuilderParams struct {
	Day            string   `json:"day"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	SlotDuration   string   `json:"slot_duration"`
	BreakDuration  string   `json:"break_duration"`
	WorkloadLimit  string   `json:"workload_limit"`
	SemesterSeason string   `json:"semester_season"`
	SemesterYear   int      `json:"semester_year"`
	DeliveryMode   string   `json:"delivery_mode"`
	HolidayName    string   `json:"holiday_name"`
	CustomDuration string   `json:"custom_duration"`
	RoomType       string   `json:"room_type"`
	SelectedDays   []string `json:"selected_days"`
}

// DefaultBuilderParams returns the builder defaults for a fresh draft.
func DefaultBuilderParams() BuilderParams {
	return BuilderParams{
		Day:            "Friday",
		StartTime:      "08:00",
		EndTime:        "20:00",
		SlotDuration:   "90",
		BreakDuration:  "15",
		WorkloadLimit:  "18",
		SemesterSeason: "Winter",
		SemesterYear:   time.Now().Year(),
		DeliveryMode:   "Onsite",
		HolidayName:    "Public Holiday",
		CustomDuration: "180",
		SelectedDays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

// CustomPlaceholder is shown for an empty Custom rule. It is display-only
// and is never accepted as persisted rule text.
const CustomPlaceholder = "Use the text box below to describe a custom rule."

// datePlaceholder substitutes for a missing validity date in generated text.
const datePlaceholder = "[Date]"

// EntityPhrase resolves the subject of a generated sentence.
//
// University scope: target "0" is "The University"; campus pseudo-targets
// become "The <name> Campus" with any "Campus: " prefix stripped. For every
// other scope, target "0" reads "All <scope>s" and a concrete target reads
// `<scope> "<name>"`.
func EntityPhrase(scope Scope, targetID, targetName string) string {
	if scope == ScopeUniversity {
		if targetID == GlobalTargetID {
			return "The University"
		}
		name := strings.TrimPrefix(targetName, "Campus: ")
		if name == "" {
			name = "Campus"
		}
		return fmt.Sprintf("The %s Campus", name)
	}
	if targetID == GlobalTargetID {
		return fmt.Sprintf("All %ss", scope)
	}
	if targetName == "" {
		targetName = "Unknown"
	}
	return fmt.Sprintf("%s %q", scope, targetName)
}

// Generate produces the canonical rule description for the given inputs.
// The second return value is false when the category has no generator
// branch (Custom or unknown), in which case the text is user-owned.
func Generate(scope Scope, targetID, targetName, category, validFrom, validTo string, p BuilderParams) (string, bool) {
	entity := EntityPhrase(scope, targetID, targetName)

	switch category {
	case CategoryOpenDays:
		days := SortDays(p.SelectedDays)
		daysText := "No Days"
		if len(days) > 0 {
			daysText = strings.Join(days, ", ")
		}
		return fmt.Sprintf("%s is open on: %s.", entity, daysText), true

	case CategoryPolicy:
		return fmt.Sprintf("%s is open from %s to %s.", entity, p.StartTime, p.EndTime), true

	case CategoryAcademicCalendar:
		return fmt.Sprintf("%s Semester %d starts on %s and ends on %s.",
			p.SemesterSeason, p.SemesterYear, orDate(validFrom), orDate(validTo)), true

	case CategoryHoliday:
		return fmt.Sprintf("Holiday '%s' is from %s to %s.",
			p.HolidayName, orDate(validFrom), orDate(validTo)), true

	case CategoryTimeDefinition:
		return fmt.Sprintf("Standard lecture slots are %s minutes long with a %s minute break.",
			p.SlotDuration, p.BreakDuration), true

	case CategoryUnavailableDays:
		return fmt.Sprintf("%s is unavailable on %ss.", entity, p.Day), true

	case CategoryLegalRequirement:
		return fmt.Sprintf("Lecturers must not exceed %s teaching units per week.", p.WorkloadLimit), true

	case CategoryDeliveryMode:
		return fmt.Sprintf("%s must be conducted %s.", entity, p.DeliveryMode), true

	case CategoryDuration:
		return fmt.Sprintf("%s has a specific duration of %s minutes.", entity, p.CustomDuration), true

	case CategoryRoomRequirement:
		return fmt.Sprintf("%s requires a room of type '%s'.", entity, p.RoomType), true
	}

	return "", false
}

func orDate(s string) string {
	if s == "" {
		return datePlaceholder
	}
	return s
}
