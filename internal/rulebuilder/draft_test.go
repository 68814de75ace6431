package rulebuilder

import (
	"errors"
	"testing"
)

// ── open / defaults ──

func TestOpenAdd_Defaults(t *testing.T) {
	d := OpenAdd(testDirectory())

	if d.State() != StateEditing {
		t.Fatalf("expected Editing state, got %v", d.State())
	}
	f := d.Fields()
	if f.Scope != ScopeUniversity {
		t.Errorf("expected University scope, got %s", f.Scope)
	}
	if f.Category != DefaultCategory(ScopeUniversity) {
		t.Errorf("expected default University category, got %s", f.Category)
	}
	if f.TargetID != GlobalTargetID {
		t.Errorf("expected global target, got %s", f.TargetID)
	}
	if !f.IsEnabled {
		t.Error("new drafts should start enabled")
	}
	if f.RuleText == "" {
		t.Error("default category should have generated text immediately")
	}
}

// ── scope-change cascade ──

func TestSetScope_CascadeReset(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetScope(ScopeLecturer)
	d.SetTarget("1")
	d.SetCategory(CategoryCustom)

	for _, next := range []Scope{ScopeModule, ScopeRoom, ScopeGroup, ScopeProgram, ScopeUniversity} {
		d.SetScope(next)
		f := d.Fields()
		if f.TargetID != GlobalTargetID {
			t.Errorf("scope %s: target not reset to global, got %s", next, f.TargetID)
		}
		if f.Category != DefaultCategory(next) {
			t.Errorf("scope %s: category not reset to default, got %s", next, f.Category)
		}
	}
}

func TestSetCategory_KeepsTarget(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetScope(ScopeModule)
	d.SetTarget("SE101")
	d.SetCategory(CategoryDuration)
	if d.Fields().TargetID != "SE101" {
		t.Errorf("category change must not reset the target, got %s", d.Fields().TargetID)
	}
}

// ── auto-sync ──

func TestAutoSync_TracksBuilderChanges(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetCategory(CategoryPolicy)

	p := d.Builder()
	p.StartTime, p.EndTime = "09:00", "18:00"
	d.SetBuilder(p)

	want := "The University is open from 09:00 to 18:00."
	if d.RuleText() != want {
		t.Errorf("expected %q, got %q", want, d.RuleText())
	}

	d.SetTarget("10000") // Berlin campus
	want = "The Berlin Campus is open from 09:00 to 18:00."
	if d.RuleText() != want {
		t.Errorf("expected %q after target change, got %q", want, d.RuleText())
	}
}

func TestAutoSync_ManualOverrideSuspendsTracking(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetCategory(CategoryPolicy)

	d.SetRuleText("Opening hours are negotiated per semester.")

	p := d.Builder()
	p.StartTime = "07:00"
	d.SetBuilder(p)

	if d.RuleText() != "Opening hours are negotiated per semester." {
		t.Errorf("manual edit was clobbered: %q", d.RuleText())
	}

	// A category change clears the override and resumes generation.
	d.SetCategory(CategoryTimeDefinition)
	if d.RuleText() == "Opening hours are negotiated per semester." {
		t.Error("category change should re-attach the generated text")
	}
}

func TestAutoSync_RetypingGeneratedValueStaysAttached(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetCategory(CategoryPolicy)

	// Retype exactly what the generator produced: no divergence, so the
	// text keeps tracking.
	d.SetRuleText(d.RuleText())

	p := d.Builder()
	p.StartTime = "10:00"
	d.SetBuilder(p)

	want := "The University is open from 10:00 to 20:00."
	if d.RuleText() != want {
		t.Errorf("expected tracking to continue, got %q", d.RuleText())
	}
}

func TestCustomCategory_TextNeverTouched(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetScope(ScopeGroup) // Group only offers Custom
	d.SetRuleText("Group GD-23 prefers morning sessions.")

	d.SetTarget("5")
	d.SetValidity("2026-01-01", "2026-06-30")
	p := d.Builder()
	p.Day = "Monday"
	d.SetBuilder(p)
	d.ToggleDay("Tuesday")

	if d.RuleText() != "Group GD-23 prefers morning sessions." {
		t.Errorf("Custom text was modified automatically: %q", d.RuleText())
	}
}

func TestDisplayText_CustomPlaceholder(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetCategory(CategoryCustom)
	if d.DisplayText() != CustomPlaceholder {
		t.Errorf("expected placeholder for empty Custom text, got %q", d.DisplayText())
	}
	if d.RuleText() != "" {
		t.Error("placeholder must not leak into the draft fields")
	}
}

// ── save / validation ──

func TestSave_RequiresName(t *testing.T) {
	d := OpenAdd(testDirectory())
	if _, err := d.Save(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	// Validation failure keeps the draft editable.
	if d.State() != StateEditing {
		t.Errorf("draft should remain Editing after a rejected save, got %v", d.State())
	}
}

func TestSave_RejectsEmptyCustomText(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetName("Group preference")
	d.SetScope(ScopeGroup)
	if _, err := d.Save(); !errors.Is(err, ErrCustomTextMissing) {
		t.Errorf("expected ErrCustomTextMissing, got %v", err)
	}
}

func TestSave_RejectsForeignTarget(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetName("Bad target")
	d.SetScope(ScopeLecturer)
	d.SetTarget("999")
	if _, err := d.Save(); !errors.Is(err, ErrTargetNotInScope) {
		t.Errorf("expected ErrTargetNotInScope, got %v", err)
	}
}

func TestSave_TransitionsAndRetry(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.SetName("Opening hours")

	fields, err := d.Save()
	if err != nil {
		t.Fatalf("save should succeed: %v", err)
	}
	if d.State() != StateSaving {
		t.Errorf("expected Saving, got %v", d.State())
	}
	if fields.Name != "Opening hours" {
		t.Errorf("unexpected payload: %+v", fields)
	}

	// Backend rejected the save: back to Editing, fields untouched.
	d.SaveFailed()
	if d.State() != StateEditing {
		t.Errorf("expected Editing after SaveFailed, got %v", d.State())
	}
	if _, err := d.Save(); err != nil {
		t.Errorf("retry should succeed: %v", err)
	}
}

func TestCancel_Discards(t *testing.T) {
	d := OpenAdd(testDirectory())
	d.Cancel()
	if d.State() != StateCancelled {
		t.Errorf("expected Cancelled, got %v", d.State())
	}
	if _, err := d.Save(); !errors.Is(err, ErrNotEditing) {
		t.Errorf("expected ErrNotEditing after cancel, got %v", err)
	}
}

// ── round-trip idempotence ──

func TestOpenEdit_RoundTripUnchanged(t *testing.T) {
	dir := testDirectory()
	existing := RuleFields{
		ID:        42,
		Name:      "Berlin opening hours",
		Scope:     ScopeUniversity,
		TargetID:  "10000",
		Category:  CategoryPolicy,
		ValidFrom: "2026-01-01",
		ValidTo:   "2026-12-31",
		RuleText:  "The Berlin Campus is open from 07:30 to 21:00.",
		IsEnabled: true,
	}

	d := OpenEdit(dir, existing)
	fields, err := d.Save()
	if err != nil {
		t.Fatalf("unmodified save should succeed: %v", err)
	}
	if fields != existing {
		t.Errorf("round trip changed the rule:\n  before %+v\n  after  %+v", existing, fields)
	}
}

func TestOpenEdit_DivergentTextIsUserOwned(t *testing.T) {
	dir := testDirectory()
	d := OpenEdit(dir, RuleFields{
		ID:       7,
		Name:     "Hand-tuned rule",
		Scope:    ScopeUniversity,
		TargetID: "0",
		Category: CategoryPolicy,
		RuleText: "Doors open whenever the caretaker arrives.",
	})

	p := d.Builder()
	p.StartTime = "06:00"
	d.SetBuilder(p)

	if d.RuleText() != "Doors open whenever the caretaker arrives." {
		t.Errorf("hydrated text was clobbered: %q", d.RuleText())
	}
}
