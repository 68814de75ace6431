package rulebuilder

import (
	"reflect"
	"testing"
)

// ── weekday ordering ──

func TestToggleDay_CanonicalOrder(t *testing.T) {
	var days []string
	// Toggle in deliberately scrambled order.
	for _, d := range []string{"Friday", "Monday", "Sunday", "Wednesday"} {
		days = ToggleDay(days, d)
	}
	want := []string{"Monday", "Wednesday", "Friday", "Sunday"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}
}

func TestToggleDay_RemovesSelectedDay(t *testing.T) {
	days := []string{"Monday", "Wednesday", "Friday"}
	days = ToggleDay(days, "Wednesday")
	want := []string{"Monday", "Friday"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}
}

func TestToggleDay_OrderIndependent(t *testing.T) {
	// Any toggle sequence producing the same subset yields the same order.
	a := ToggleDay(ToggleDay(ToggleDay(nil, "Saturday"), "Tuesday"), "Thursday")
	b := ToggleDay(ToggleDay(ToggleDay(nil, "Thursday"), "Saturday"), "Tuesday")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("toggle order leaked into result: %v vs %v", a, b)
	}
}

func TestToggleDay_IgnoresUnknownDay(t *testing.T) {
	days := ToggleDay([]string{"Monday"}, "Funday")
	want := []string{"Monday"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}
}

func TestSortDays_FullWeek(t *testing.T) {
	scrambled := []string{"Sunday", "Thursday", "Monday", "Saturday", "Wednesday", "Friday", "Tuesday"}
	if !reflect.DeepEqual(SortDays(scrambled), DaysOfWeek) {
		t.Errorf("expected canonical week order, got %v", SortDays(scrambled))
	}
}
