package domain

// Theme is the stored appearance preference. ThemeSystem defers to the
// platform color-scheme signal at resolve time, so a stored "system" value
// follows the platform when it changes.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}

	return false
}

// Resolve maps the preference to a concrete light/dark choice, using
// systemDark as the platform signal when the preference is ThemeSystem.
func (t Theme) Resolve(systemDark bool) Theme {
	if t != ThemeSystem {
		return t
	}
	if systemDark {
		return ThemeDark
	}

	return ThemeLight
}
