// Package theme resolves, applies, and persists the light/dark display
// preference for a single page mount.
package theme

import "errors"

// Theme is the resolved display preference. Only Light and Dark are valid.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the fixed key the persisted preference lives under.
const StorageKey = "theme"

// ErrInvalidTheme is returned by Parse for anything other than "light" or "dark".
var ErrInvalidTheme = errors.New("invalid theme: must be light or dark")

// Parse converts a submitted value into a Theme. Only the exact strings
// "light" and "dark" are accepted.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", ErrInvalidTheme
	}
}

// FromStored interprets a persisted value. An empty value is no record; any
// other value than "dark" reads as Light.
func FromStored(s string) (Theme, bool) {
	switch {
	case s == "":
		return "", false
	case Theme(s) == Dark:
		return Dark, true
	default:
		return Light, true
	}
}

// Valid reports whether t is Light or Dark.
func (t Theme) Valid() bool { return t == Light || t == Dark }

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ToggleLabel is the caption of the control that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "☀️ Light Mode"
	}
	return "🌙 Dark Mode"
}

func (t Theme) String() string { return string(t) }

// Source records where a resolved preference came from.
type Source string

const (
	SourceStored   Source = "stored"
	SourceSystem   Source = "system"
	SourceFallback Source = "fallback"
	SourceUser     Source = "user"
)
