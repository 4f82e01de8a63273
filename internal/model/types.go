// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Card is a single vocabulary entry.
type Card struct {
	ID      int    `toml:"id"`
	Chinese string `toml:"chinese"`
	Pinyin  string `toml:"pinyin"`
	English string `toml:"english"`
	Known   bool   `toml:"known"`
}

// FilterMode selects which cards are navigable.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterUnknown
	FilterKnown
)

// FilterModes lists the modes in selector order.
var FilterModes = []FilterMode{FilterAll, FilterUnknown, FilterKnown}

// String returns the config/flag spelling of the mode.
func (f FilterMode) String() string {
	switch f {
	case FilterKnown:
		return "known"
	case FilterUnknown:
		return "unknown"
	default:
		return "all"
	}
}

// Label returns the selector label shown in the UI.
func (f FilterMode) Label() string {
	switch f {
	case FilterKnown:
		return "Known"
	case FilterUnknown:
		return "Unknown"
	default:
		return "All Cards"
	}
}

// Next returns the following mode in selector order, wrapping around.
func (f FilterMode) Next() FilterMode {
	for i, mode := range FilterModes {
		if mode == f {
			return FilterModes[(i+1)%len(FilterModes)]
		}
	}
	return FilterAll
}

// Match reports whether a card belongs to the mode's view.
func (f FilterMode) Match(c Card) bool {
	switch f {
	case FilterKnown:
		return c.Known
	case FilterUnknown:
		return !c.Known
	default:
		return true
	}
}

// ParseFilterMode parses "all", "known" or "unknown" (case-insensitive).
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "known":
		return FilterKnown, nil
	case "unknown":
		return FilterUnknown, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q (use all, known, unknown)", s)
	}
}

// Config defines study settings.
type Config struct {
	Filter     FilterMode
	ShowPinyin bool
	DeckPath   string
}
