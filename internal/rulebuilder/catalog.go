package rulebuilder

// Scope is the kind of entity a scheduler constraint applies to.
type Scope string

const (
	ScopeUniversity Scope = "University"
	ScopeLecturer   Scope = "Lecturer"
	ScopeModule     Scope = "Module"
	ScopeGroup      Scope = "Group"
	ScopeRoom       Scope = "Room"
	ScopeProgram    Scope = "Program"
)

// Scopes lists all valid scopes in display order.
var Scopes = []Scope{ScopeUniversity, ScopeLecturer, ScopeModule, ScopeGroup, ScopeRoom, ScopeProgram}

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	for _, v := range Scopes {
		if s == v {
			return true
		}
	}
	return false
}

// Rule categories. Each category drives one sentence-generator branch.
const (
	CategoryOpenDays         = "University Open Days"
	CategoryPolicy           = "University Policy"
	CategoryAcademicCalendar = "Academic Calendar"
	CategoryHoliday          = "Holiday"
	CategoryTimeDefinition   = "Time Definition"
	CategoryUnavailableDays  = "Unavailable Days"
	CategoryLegalRequirement = "Legal Requirement"
	CategoryDeliveryMode     = "Delivery Mode"
	CategoryDuration         = "Duration"
	CategoryRoomRequirement  = "Room Requirement"
	CategoryCustom           = "Custom"
)

// CategoryOption is one selectable category with its display label.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// scopeCategories maps each scope to its allowed categories.
// The first entry is the default selection after a scope change;
// every scope ends with Custom as the escape hatch.
var scopeCategories = map[Scope][]CategoryOption{
	ScopeUniversity: {
		{Value: CategoryOpenDays, Label: "University Open Days"},
		{Value: CategoryPolicy, Label: "University Policy (Opening Hours)"},
		{Value: CategoryAcademicCalendar, Label: "Academic Calendar (Semester Dates)"},
		{Value: CategoryHoliday, Label: "Holiday / Break"},
		{Value: CategoryTimeDefinition, Label: "Time Definition (Lecture Slots)"},
		{Value: CategoryCustom, Label: "Custom"},
	},
	ScopeLecturer: {
		{Value: CategoryUnavailableDays, Label: "Unavailable Days"},
		{Value: CategoryLegalRequirement, Label: "Legal Requirement (Workload)"},
		{Value: CategoryCustom, Label: "Custom"},
	},
	ScopeModule: {
		{Value: CategoryDeliveryMode, Label: "Delivery Mode"},
		{Value: CategoryDuration, Label: "Duration"},
		{Value: CategoryRoomRequirement, Label: "Room Requirement"},
		{Value: CategoryCustom, Label: "Custom"},
	},
	ScopeGroup: {
		{Value: CategoryCustom, Label: "Custom"},
	},
	ScopeRoom: {
		{Value: CategoryUnavailableDays, Label: "Availability"},
		{Value: CategoryCustom, Label: "Custom"},
	},
	ScopeProgram: {
		{Value: CategoryDeliveryMode, Label: "Delivery Mode"},
		{Value: CategoryCustom, Label: "Custom"},
	},
}

// Categories returns the ordered category options for a scope.
// Unknown scopes fall back to the University catalog.
func Categories(scope Scope) []CategoryOption {
	opts, ok := scopeCategories[scope]
	if !ok {
		opts = scopeCategories[ScopeUniversity]
	}
	out := make([]CategoryOption, len(opts))
	copy(out, opts)
	return out
}

// DefaultCategory returns the category selected by default for a scope.
func DefaultCategory(scope Scope) string {
	return Categories(scope)[0].Value
}

// CategoryAllowed reports whether category belongs to the scope's catalog.
func CategoryAllowed(scope Scope, category string) bool {
	for _, opt := range Categories(scope) {
		if opt.Value == category {
			return true
		}
	}
	return false
}

// Catalog returns the full scope → categories table.
func Catalog() map[Scope][]CategoryOption {
	out := make(map[Scope][]CategoryOption, len(scopeCategories))
	for scope := range scopeCategories {
		out[scope] = Categories(scope)
	}
	return out
}
