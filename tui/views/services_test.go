package views

import (
	"strings"
	"testing"
	"unicode/utf8"

	"netboard/internal/settings"
	"netboard/internal/topology"
	"netboard/tui/styles"
)

func TestServicesResultTruncationIsRuneSafe(t *testing.T) {
	store := topology.NewStore()
	d := topology.NewDevice(topology.KindRouter, topology.Point{X: 100, Y: 100}, 1)
	d.Service(topology.CheckPing).LastResult = strings.Repeat("ç", 40)
	store.Add(d)

	v := NewServicesView(styles.DefaultTheme, store, d, settings.Defaults, nil)
	v.SetSize(80, 24)
	if out := v.View(); !utf8.ValidString(out) {
		t.Error("view output is not valid UTF-8")
	}
}
