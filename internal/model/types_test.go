package model

import "testing"

func TestParseFilterMode(t *testing.T) {
	cases := map[string]FilterMode{
		"":         FilterAll,
		"all":      FilterAll,
		"Known":    FilterKnown,
		" unknown": FilterUnknown,
	}
	for in, want := range cases {
		got, err := ParseFilterMode(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseFilterMode("learned"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestFilterModeNextCycles(t *testing.T) {
	mode := FilterAll
	seen := []FilterMode{mode}
	for i := 0; i < 3; i++ {
		mode = mode.Next()
		seen = append(seen, mode)
	}
	want := []FilterMode{FilterAll, FilterUnknown, FilterKnown, FilterAll}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("unexpected cycle: %v", seen)
		}
	}
}

func TestFilterModeMatch(t *testing.T) {
	known := Card{ID: 1, Known: true}
	unknown := Card{ID: 2}
	if !FilterAll.Match(known) || !FilterAll.Match(unknown) {
		t.Fatalf("all should match every card")
	}
	if !FilterKnown.Match(known) || FilterKnown.Match(unknown) {
		t.Fatalf("known filter mismatch")
	}
	if FilterUnknown.Match(known) || !FilterUnknown.Match(unknown) {
		t.Fatalf("unknown filter mismatch")
	}
}
