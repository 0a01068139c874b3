package prefs

import (
	"github.com/sevigo/review-analyzer/internal/core"
)

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when nothing valid is stored.
const DefaultTheme = ThemeLight

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	default:
		return "", false
	}
}

// Other returns the theme a toggle switches to.
func (t Theme) Other() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ListThemes returns the supported themes.
func ListThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// Preferences is the current theme and language.
type Preferences struct {
	Theme    Theme
	Language core.Language
}

// Manager keeps the current preferences and writes every change through to
// its Store. It is not safe for concurrent use; the UI loop owns it.
type Manager struct {
	store   Store
	current Preferences
}

// NewManager loads the stored preferences, substituting defaults for absent
// or invalid values.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	m.Load()
	return m
}

// Load re-reads the store into the in-memory preferences and returns them.
func (m *Manager) Load() Preferences {
	p := Preferences{Theme: DefaultTheme, Language: core.DefaultLanguage}
	if v, ok := m.store.Get(KeyTheme); ok {
		if theme, ok := ParseTheme(v); ok {
			p.Theme = theme
		}
	}
	if v, ok := m.store.Get(KeyLanguage); ok {
		if lang, ok := core.ParseLanguage(v); ok {
			p.Language = lang
		}
	}
	m.current = p
	return p
}

// Current returns the in-memory preferences.
func (m *Manager) Current() Preferences {
	return m.current
}

func (m *Manager) SetTheme(t Theme) {
	m.current.Theme = t
	m.store.Set(KeyTheme, string(t))
}

func (m *Manager) SetLanguage(l core.Language) {
	m.current.Language = l
	m.store.Set(KeyLanguage, string(l))
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme() Theme {
	m.SetTheme(m.current.Theme.Other())
	return m.current.Theme
}

// ToggleLanguage flips between the two languages and returns the new one.
func (m *Manager) ToggleLanguage() core.Language {
	m.SetLanguage(m.current.Language.Other())
	return m.current.Language
}
