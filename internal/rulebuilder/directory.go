package rulebuilder

import (
	"fmt"
	"sort"
	"strconv"
)

// GlobalTargetID is the sentinel target meaning "all / global within scope".
const GlobalTargetID = "0"

// EntireUniversityName labels the global entry of the University scope.
const EntireUniversityName = "Entire University"

// campusIDBase offsets synthetic campus ids so they never collide with
// real entity ids. Campus entries exist only inside the directory; they
// do not round-trip to any backend resource.
const campusIDBase = 10000

// UnnamedEntity substitutes for an entity whose backend record carries no
// usable name. Explicit sentinel rather than a silent empty string.
const UnnamedEntity = "Unnamed"

// Target is one selectable entry of the directory.
type Target struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Directory maps each scope to its ordered list of selectable targets.
type Directory map[Scope][]Target

// NamedEntry is the minimal shape for lecturer and group entries.
type NamedEntry struct {
	ID   int
	Name string
}

// ModuleEntry carries a module plus its owning program name.
type ModuleEntry struct {
	Code        string
	Name        string
	ProgramName string
}

// RoomEntry carries a room plus its campus location.
type RoomEntry struct {
	ID       int
	Name     string
	Location string
}

// ProgramEntry carries a study program plus its degree-type tag.
type ProgramEntry struct {
	ID         int
	Name       string
	DegreeType string
}

// BuildDirectory assembles the per-scope target lists.
//
// Modules are prefixed with their program name and grouped by it, rooms
// with their location, programs with a degree tag. The University scope
// gets the fixed "Entire University" entry followed by synthetic campus
// entries derived from the distinct room locations.
func BuildDirectory(lecturers, groups []NamedEntry, modules []ModuleEntry, rooms []RoomEntry, programs []ProgramEntry) Directory {
	dir := Directory{
		ScopeLecturer: namedTargets(lecturers),
		ScopeGroup:    namedTargets(groups),
	}

	// Modules: "<program>: <name>", sorted by (program name, module code).
	ms := make([]ModuleEntry, len(modules))
	copy(ms, modules)
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].ProgramName != ms[j].ProgramName {
			return ms[i].ProgramName < ms[j].ProgramName
		}
		return ms[i].Code < ms[j].Code
	})
	moduleTargets := make([]Target, 0, len(ms))
	for _, m := range ms {
		name := m.Name
		if name == "" {
			name = UnnamedEntity
		}
		program := m.ProgramName
		if program == "" {
			program = "Unassigned"
		}
		moduleTargets = append(moduleTargets, Target{ID: m.Code, Name: fmt.Sprintf("%s: %s", program, name)})
	}
	dir[ScopeModule] = moduleTargets

	// Rooms: "<location>: <name>", sorted by (location, room name).
	rs := make([]RoomEntry, len(rooms))
	copy(rs, rooms)
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Location != rs[j].Location {
			return rs[i].Location < rs[j].Location
		}
		return rs[i].Name < rs[j].Name
	})
	roomTargets := make([]Target, 0, len(rs))
	for _, r := range rs {
		name := r.Name
		if name == "" {
			name = UnnamedEntity
		}
		location := r.Location
		if location == "" {
			location = "Unassigned"
		}
		roomTargets = append(roomTargets, Target{ID: strconv.Itoa(r.ID), Name: fmt.Sprintf("%s: %s", location, name)})
	}
	dir[ScopeRoom] = roomTargets

	// Programs: "[<degree>] <name>", sorted by raw program name.
	ps := make([]ProgramEntry, len(programs))
	copy(ps, programs)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	programTargets := make([]Target, 0, len(ps))
	for _, p := range ps {
		name := p.Name
		if name == "" {
			name = UnnamedEntity
		}
		if p.DegreeType != "" {
			name = fmt.Sprintf("[%s] %s", p.DegreeType, name)
		}
		programTargets = append(programTargets, Target{ID: strconv.Itoa(p.ID), Name: name})
	}
	dir[ScopeProgram] = programTargets

	// University: global entry plus one synthetic entry per campus.
	university := []Target{{ID: GlobalTargetID, Name: EntireUniversityName}}
	seen := make(map[string]bool)
	var locations []string
	for _, r := range rooms {
		if r.Location == "" || seen[r.Location] {
			continue
		}
		seen[r.Location] = true
		locations = append(locations, r.Location)
	}
	sort.Strings(locations)
	for i, loc := range locations {
		university = append(university, Target{
			ID:   strconv.Itoa(campusIDBase + i),
			Name: "Campus: " + loc,
		})
	}
	dir[ScopeUniversity] = university

	return dir
}

func namedTargets(entries []NamedEntry) []Target {
	es := make([]NamedEntry, len(entries))
	copy(es, entries)
	sort.Slice(es, func(i, j int) bool { return es[i].Name < es[j].Name })
	out := make([]Target, 0, len(es))
	for _, e := range es {
		name := e.Name
		if name == "" {
			name = UnnamedEntity
		}
		out = append(out, Target{ID: strconv.Itoa(e.ID), Name: name})
	}
	return out
}

// Resolve looks up a target by scope and id. The global sentinel resolves
// for every scope even when it has no explicit directory entry.
func (d Directory) Resolve(scope Scope, targetID string) (Target, bool) {
	for _, t := range d[scope] {
		if t.ID == targetID {
			return t, true
		}
	}
	if targetID == GlobalTargetID {
		return Target{ID: GlobalTargetID, Name: "All"}, true
	}
	return Target{}, false
}

// Contains reports whether targetID is selectable within scope.
func (d Directory) Contains(scope Scope, targetID string) bool {
	_, ok := d.Resolve(scope, targetID)
	return ok
}
