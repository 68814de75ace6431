package rulebuilder

import "testing"

func testDirectory() Directory {
	return BuildDirectory(
		[]NamedEntry{{ID: 1, Name: "Ada Lovelace"}, {ID: 2, Name: "Alan Turing"}},
		[]NamedEntry{{ID: 5, Name: "GD-23"}},
		[]ModuleEntry{
			{Code: "SE101", Name: "Intro to Software", ProgramName: "Software Engineering"},
			{Code: "GD200", Name: "Level Design", ProgramName: "Game Design"},
		},
		[]RoomEntry{
			{ID: 7, Name: "R1.01", Location: "Berlin"},
			{ID: 8, Name: "Lab A", Location: "Munich"},
			{ID: 9, Name: "R2.05", Location: "Berlin"},
		},
		[]ProgramEntry{
			{ID: 3, Name: "Software Engineering", DegreeType: "BSc"},
			{ID: 4, Name: "Game Design", DegreeType: "BA"},
		},
	)
}

// ── entity naming ──

func TestEntityPhrase_Deterministic(t *testing.T) {
	cases := []struct {
		scope    Scope
		targetID string
		name     string
		want     string
	}{
		{ScopeUniversity, "0", "Entire University", "The University"},
		{ScopeUniversity, "10000", "Campus: Berlin", "The Berlin Campus"},
		{ScopeLecturer, "0", "", "All Lecturers"},
		{ScopeRoom, "0", "", "All Rooms"},
		{ScopeLecturer, "1", "Ada Lovelace", `Lecturer "Ada Lovelace"`},
		{ScopeModule, "SE101", "Software Engineering: Intro to Software", `Module "Software Engineering: Intro to Software"`},
	}
	for _, c := range cases {
		got := EntityPhrase(c.scope, c.targetID, c.name)
		if got != c.want {
			t.Errorf("EntityPhrase(%s, %s): expected %q, got %q", c.scope, c.targetID, c.want, got)
		}
		// Pure function: a second call with identical inputs is identical.
		if again := EntityPhrase(c.scope, c.targetID, c.name); again != got {
			t.Errorf("EntityPhrase not deterministic for (%s, %s)", c.scope, c.targetID)
		}
	}
}

// ── generator branches, one per category ──

func TestGenerate_OpenDays(t *testing.T) {
	p := DefaultBuilderParams()
	p.SelectedDays = []string{"Wednesday", "Monday"}
	got, ok := Generate(ScopeUniversity, "0", "Entire University", CategoryOpenDays, "", "", p)
	if !ok {
		t.Fatal("expected a generated sentence")
	}
	want := "The University is open on: Monday, Wednesday."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_OpenDays_Empty(t *testing.T) {
	p := DefaultBuilderParams()
	p.SelectedDays = nil
	got, _ := Generate(ScopeUniversity, "0", "", CategoryOpenDays, "", "", p)
	want := "The University is open on: No Days."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_Policy_CampusTarget(t *testing.T) {
	p := DefaultBuilderParams()
	p.StartTime, p.EndTime = "08:00", "20:00"
	got, _ := Generate(ScopeUniversity, "10000", "Campus: Berlin", CategoryPolicy, "", "", p)
	want := "The Berlin Campus is open from 08:00 to 20:00."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_AcademicCalendar(t *testing.T) {
	p := DefaultBuilderParams()
	p.SemesterSeason, p.SemesterYear = "Winter", 2026
	got, _ := Generate(ScopeUniversity, "0", "", CategoryAcademicCalendar, "2026-10-01", "2027-02-15", p)
	want := "Winter Semester 2026 starts on 2026-10-01 and ends on 2027-02-15."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_Holiday_MissingDates(t *testing.T) {
	p := DefaultBuilderParams()
	p.HolidayName = "Christmas Break"
	got, _ := Generate(ScopeUniversity, "0", "", CategoryHoliday, "", "", p)
	want := "Holiday 'Christmas Break' is from [Date] to [Date]."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_TimeDefinition(t *testing.T) {
	p := DefaultBuilderParams()
	p.SlotDuration, p.BreakDuration = "90", "15"
	got, _ := Generate(ScopeUniversity, "0", "", CategoryTimeDefinition, "", "", p)
	want := "Standard lecture slots are 90 minutes long with a 15 minute break."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_UnavailableDays_AllRooms(t *testing.T) {
	p := DefaultBuilderParams()
	p.Day = "Friday"
	got, _ := Generate(ScopeRoom, "0", "", CategoryUnavailableDays, "", "", p)
	want := "All Rooms is unavailable on Fridays."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_LegalRequirement(t *testing.T) {
	p := DefaultBuilderParams()
	p.WorkloadLimit = "18"
	got, _ := Generate(ScopeLecturer, "0", "", CategoryLegalRequirement, "", "", p)
	want := "Lecturers must not exceed 18 teaching units per week."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_DeliveryMode(t *testing.T) {
	p := DefaultBuilderParams()
	p.DeliveryMode = "Online"
	got, _ := Generate(ScopeModule, "SE101", "Software Engineering: Intro to Software", CategoryDeliveryMode, "", "", p)
	want := `Module "Software Engineering: Intro to Software" must be conducted Online.`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_Duration(t *testing.T) {
	p := DefaultBuilderParams()
	p.CustomDuration = "180"
	got, _ := Generate(ScopeModule, "0", "", CategoryDuration, "", "", p)
	want := "All Modules has a specific duration of 180 minutes."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_RoomRequirement(t *testing.T) {
	p := DefaultBuilderParams()
	p.RoomType = "Computer Lab"
	got, _ := Generate(ScopeModule, "0", "", CategoryRoomRequirement, "", "", p)
	want := "All Modules requires a room of type 'Computer Lab'."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_Custom_NoGeneration(t *testing.T) {
	if _, ok := Generate(ScopeGroup, "0", "", CategoryCustom, "", "", DefaultBuilderParams()); ok {
		t.Error("Custom category must not generate text")
	}
}

// ── catalog validity ──

func TestCategories_EveryScopeEndsWithCustom(t *testing.T) {
	for _, scope := range Scopes {
		opts := Categories(scope)
		if len(opts) == 0 {
			t.Fatalf("scope %s has no categories", scope)
		}
		if opts[len(opts)-1].Value != CategoryCustom {
			t.Errorf("scope %s: last category should be Custom, got %s", scope, opts[len(opts)-1].Value)
		}
		for _, opt := range opts {
			if !CategoryAllowed(scope, opt.Value) {
				t.Errorf("scope %s: offered category %s not reported as allowed", scope, opt.Value)
			}
		}
	}
}

func TestCategoryAllowed_RejectsForeignCategory(t *testing.T) {
	if CategoryAllowed(ScopeGroup, CategoryOpenDays) {
		t.Error("Group scope must not allow University Open Days")
	}
	if CategoryAllowed(ScopeRoom, CategoryLegalRequirement) {
		t.Error("Room scope must not allow Legal Requirement")
	}
}
