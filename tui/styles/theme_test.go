package styles

import (
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestListThemes(t *testing.T) {
	themes := ListThemes()
	if len(themes) < 5 {
		t.Errorf("expected at least 5 themes, got %d", len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1] >= themes[i] {
			t.Fatalf("theme slugs not sorted: %q >= %q", themes[i-1], themes[i])
		}
	}
}

func TestGetThemeByIndex(t *testing.T) {
	theme := GetThemeByIndex(0)
	if theme == nil {
		t.Fatal("GetThemeByIndex(0) returned nil")
	}
	if GetThemeByIndex(-1) != nil || GetThemeByIndex(len(ListThemes())) != nil {
		t.Error("out-of-range index should return nil")
	}
}

func TestGetThemeIndexRoundTrip(t *testing.T) {
	idx := GetThemeIndex("dracula")
	if idx < 0 {
		t.Fatal("dracula not found")
	}
	if got := GetThemeByIndex(idx); got == nil || got.Name != "Dracula" {
		t.Errorf("index %d resolved to %+v", idx, got)
	}
}
