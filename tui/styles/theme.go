package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// defaultSlug is the theme used when the configured slug is unknown.
const defaultSlug = "solarized-dark"

// Theme is a Base16 palette. The board maps Base00/Base05 to the surface
// background and foreground; accents come from the Base08-0E slots.
type Theme struct {
	Name   string
	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection
	Base03 lipgloss.Color // Comments / dim
	Base04 lipgloss.Color // Light foreground
	Base05 lipgloss.Color // Foreground
	Base06 lipgloss.Color // Light foreground
	Base07 lipgloss.Color // Light background
	Base08 lipgloss.Color // Red
	Base09 lipgloss.Color // Orange
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Magenta
	Base0F lipgloss.Color // Brown
}

var (
	DefaultTheme Theme
	sortedSlugs  []string
)

func init() {
	sortedSlugs = make([]string, 0, len(Themes))
	for slug := range Themes {
		sortedSlugs = append(sortedSlugs, slug)
	}
	sort.Strings(sortedSlugs)
	DefaultTheme = Themes[defaultSlug]
}

// SetTheme replaces the process-wide default theme.
func SetTheme(theme Theme) {
	DefaultTheme = theme
}

// GetThemeByName returns the theme for a slug, or nil when the slug is
// unknown (a stale config value, for example).
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// ListThemes returns the theme slugs in sorted order.
func ListThemes() []string {
	return sortedSlugs
}

// GetThemeByIndex returns the theme at idx in sorted-slug order, or nil out
// of range.
func GetThemeByIndex(idx int) *Theme {
	if idx < 0 || idx >= len(sortedSlugs) {
		return nil
	}
	t := Themes[sortedSlugs[idx]]
	return &t
}

// GetThemeIndex returns the sorted index of slug, or -1 when unknown.
func GetThemeIndex(slug string) int {
	for i, s := range sortedSlugs {
		if s == slug {
			return i
		}
	}
	return -1
}
