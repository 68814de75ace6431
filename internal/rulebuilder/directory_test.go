package rulebuilder

import "testing"

func TestBuildDirectory_UniversityCampuses(t *testing.T) {
	dir := testDirectory()

	uni := dir[ScopeUniversity]
	if len(uni) != 3 {
		t.Fatalf("expected Entire University + 2 campuses, got %d entries", len(uni))
	}
	if uni[0].ID != GlobalTargetID || uni[0].Name != EntireUniversityName {
		t.Errorf("first University entry should be the global one, got %+v", uni[0])
	}
	if uni[1].ID != "10000" || uni[1].Name != "Campus: Berlin" {
		t.Errorf("expected synthetic Berlin campus at 10000, got %+v", uni[1])
	}
	if uni[2].ID != "10001" || uni[2].Name != "Campus: Munich" {
		t.Errorf("expected synthetic Munich campus at 10001, got %+v", uni[2])
	}
}

func TestBuildDirectory_ModulesGroupedByProgram(t *testing.T) {
	dir := testDirectory()

	mods := dir[ScopeModule]
	if len(mods) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(mods))
	}
	// Sorted by (program name, module code): Game Design before Software Engineering.
	if mods[0].ID != "GD200" || mods[0].Name != "Game Design: Level Design" {
		t.Errorf("unexpected first module entry: %+v", mods[0])
	}
	if mods[1].ID != "SE101" || mods[1].Name != "Software Engineering: Intro to Software" {
		t.Errorf("unexpected second module entry: %+v", mods[1])
	}
}

func TestBuildDirectory_RoomsPrefixedByLocation(t *testing.T) {
	dir := testDirectory()

	rooms := dir[ScopeRoom]
	want := []string{"Berlin: R1.01", "Berlin: R2.05", "Munich: Lab A"}
	if len(rooms) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(rooms))
	}
	for i, w := range want {
		if rooms[i].Name != w {
			t.Errorf("room %d: expected %q, got %q", i, w, rooms[i].Name)
		}
	}
}

func TestBuildDirectory_ProgramsTaggedWithDegree(t *testing.T) {
	dir := testDirectory()

	programs := dir[ScopeProgram]
	if programs[0].Name != "[BA] Game Design" || programs[1].Name != "[BSc] Software Engineering" {
		t.Errorf("unexpected program entries: %+v", programs)
	}
}

func TestBuildDirectory_UnnamedSentinel(t *testing.T) {
	dir := BuildDirectory([]NamedEntry{{ID: 1}}, nil, nil, nil, nil)
	if dir[ScopeLecturer][0].Name != UnnamedEntity {
		t.Errorf("expected %q for a nameless lecturer, got %q", UnnamedEntity, dir[ScopeLecturer][0].Name)
	}
}

func TestBuildDirectory_EmptyInputsDegradeToEmptyLists(t *testing.T) {
	// A failed fetch degrades to an empty slice; the directory must still
	// produce the fixed University entry.
	dir := BuildDirectory(nil, nil, nil, nil, nil)
	for _, scope := range []Scope{ScopeLecturer, ScopeGroup, ScopeModule, ScopeRoom, ScopeProgram} {
		if len(dir[scope]) != 0 {
			t.Errorf("scope %s: expected empty target list", scope)
		}
	}
	if len(dir[ScopeUniversity]) != 1 || dir[ScopeUniversity][0].Name != EntireUniversityName {
		t.Errorf("University scope should keep its global entry, got %+v", dir[ScopeUniversity])
	}
}

func TestDirectory_ResolveGlobalSentinel(t *testing.T) {
	dir := testDirectory()
	for _, scope := range Scopes {
		if !dir.Contains(scope, GlobalTargetID) {
			t.Errorf("scope %s: global sentinel must always resolve", scope)
		}
	}
	if dir.Contains(ScopeLecturer, "999") {
		t.Error("unknown target id must not resolve")
	}
	if !dir.Contains(ScopeModule, "SE101") {
		t.Error("module code target must resolve")
	}
}
