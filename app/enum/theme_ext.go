package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon returns the glyph shown on the toggle control while t is applied.
// Dark shows the sun, light shows the moon, hinting at the switch target.
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// Label returns the accessible label for the toggle control while t is applied.
// The label names the action target, not the current state.
func (t Theme) Label() string {
	if t == ThemeDark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}
