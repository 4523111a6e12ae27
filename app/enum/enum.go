// Package enum provides typed enumerations shared across the application.
package enum

import "fmt"

// Theme is the two-valued visual mode. The zero value is ThemeLight,
// the application default.
type Theme int

// valid themes, the only two values the rest of the code accepts
const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns the string identifier of the theme.
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme converts a string identifier to a Theme.
// Anything other than "light" or "dark" is rejected.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("invalid theme %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(b []byte) error {
	parsed, err := ParseTheme(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
