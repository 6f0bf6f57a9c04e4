// Package theme resolves the light/dark display preference the globe palette
// depends on.
package theme

import (
	"fmt"
	"strings"
)

// Theme is a resolved display preference. The zero value is Unresolved.
type Theme int

const (
	Unresolved Theme = iota
	Light
	Dark
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unresolved"
	}
}

// Toggle flips light and dark. An unresolved theme renders dark, so it
// toggles to light.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Parse accepts "light", "dark", and "" / "system" / "auto" for Unresolved.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "", "system", "auto", "unresolved":
		return Unresolved, nil
	}
	return Unresolved, fmt.Errorf("unknown theme %q", s)
}

// Source is an observable theme value.
type Source interface {
	Current() Theme
	// Changes delivers every newly resolved value. It may be nil for sources
	// that never change.
	Changes() <-chan Theme
}

// Static is a Source that never changes.
type Static Theme

func (s Static) Current() Theme        { return Theme(s) }
func (s Static) Changes() <-chan Theme { return nil }
