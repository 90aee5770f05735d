package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netboard/internal/config"
	"netboard/internal/settings"
	"netboard/tui/keys"
	"netboard/tui/styles"
)

// SettingsAction describes what the app should do after a settings update.
type SettingsAction int

const (
	// SettingsNone means continue in the settings view.
	SettingsNone SettingsAction = iota
	// SettingsClose means the user cancelled without saving.
	SettingsClose
	// SettingsSaved means the globals were persisted; the app should apply
	// changes.
	SettingsSaved
)

// Settings field indices.
const (
	settingsFieldTheme = iota
	settingsFieldPingInterval
	settingsFieldPingAttempts
	settingsFieldSNMPInterval
	settingsFieldCommunity
	settingsFieldVendor
	settingsFieldAutoStart
	settingsFieldCount
)

// SettingsView is a full-screen editor for the global defaults with a live
// theme preview. Globals persist to the settings store; the theme slug
// goes to the config file.
type SettingsView struct {
	theme styles.Theme
	sty   *styles.Styles

	config *config.Config
	global settings.Global
	save   func(settings.Global) error

	themeIndex int
	cursor     int
	autoStart  bool

	pingIntervalInput textinput.Model
	pingAttemptsInput textinput.Model
	snmpIntervalInput textinput.Model
	communityInput    textinput.Model
	vendorInput       textinput.Model

	width  int
	height int
	err    string

	// Saved state, read by the app after SettingsSaved.
	SavedTheme  string
	SavedGlobal settings.Global
}

// NewSettingsView creates a SettingsView populated from the current config
// and global settings. save persists the globals.
func NewSettingsView(theme styles.Theme, cfg *config.Config, global settings.Global, save func(settings.Global) error) SettingsView {
	themeIdx := styles.GetThemeIndex(cfg.Theme)
	if themeIdx < 0 {
		themeIdx = 0
	}

	numInput := func(val int, placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 8
		in.Width = 40
		in.SetValue(strconv.Itoa(val))
		return in
	}
	strInput := func(val, placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 64
		in.Width = 40
		in.SetValue(val)
		return in
	}

	return SettingsView{
		theme:             theme,
		sty:               styles.NewStyles(theme),
		config:            cfg,
		global:            global,
		save:              save,
		themeIndex:        themeIdx,
		autoStart:         global.AutoStartServices,
		pingIntervalInput: numInput(global.DefaultPingInterval, "5"),
		pingAttemptsInput: numInput(global.DefaultPingAttempts, "4"),
		snmpIntervalInput: numInput(global.DefaultSNMPInterval, "300"),
		communityInput:    strInput(global.DefaultSNMPCommunity, "public"),
		vendorInput:       strInput(global.DefaultVendor, "unknown"),
	}
}

// SetSize updates the available dimensions for the settings view.
func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// selectedThemeSlug returns the slug of the currently selected theme.
func (s SettingsView) selectedThemeSlug() string {
	themes := styles.ListThemes()
	if s.themeIndex >= 0 && s.themeIndex < len(themes) {
		return themes[s.themeIndex]
	}
	return ""
}

func (s SettingsView) selectedTheme() styles.Theme {
	t := styles.GetThemeByIndex(s.themeIndex)
	if t != nil {
		return *t
	}
	return styles.DefaultTheme
}

// focusInput blurs all inputs and focuses the one at the cursor position.
func (s *SettingsView) focusInput() {
	s.pingIntervalInput.Blur()
	s.pingAttemptsInput.Blur()
	s.snmpIntervalInput.Blur()
	s.communityInput.Blur()
	s.vendorInput.Blur()

	switch s.cursor {
	case settingsFieldPingInterval:
		s.pingIntervalInput.Focus()
	case settingsFieldPingAttempts:
		s.pingAttemptsInput.Focus()
	case settingsFieldSNMPInterval:
		s.snmpIntervalInput.Focus()
	case settingsFieldCommunity:
		s.communityInput.Focus()
	case settingsFieldVendor:
		s.vendorInput.Focus()
	}
}

// Update handles messages for the settings view.
func (s SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, SettingsNone
	}

	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.Escape):
		return s, nil, SettingsClose

	case key.Matches(keyMsg, keys.DefaultKeyMap.Enter):
		if s.cursor == settingsFieldAutoStart {
			s.autoStart = !s.autoStart
			return s, nil, SettingsNone
		}
		return s.saveAll()

	case key.Matches(keyMsg, keys.DefaultKeyMap.Up):
		if s.cursor > 0 {
			s.cursor--
			s.focusInput()
		}
		return s, nil, SettingsNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Down):
		if s.cursor < settingsFieldCount-1 {
			s.cursor++
			s.focusInput()
		}
		return s, nil, SettingsNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Tab):
		s.cursor = (s.cursor + 1) % settingsFieldCount
		s.focusInput()
		return s, nil, SettingsNone

	case keyMsg.String() == " ":
		if s.cursor == settingsFieldAutoStart {
			s.autoStart = !s.autoStart
			return s, nil, SettingsNone
		}
		return s.updateTextInput(msg)

	case key.Matches(keyMsg, keys.DefaultKeyMap.Left):
		if s.cursor == settingsFieldTheme {
			s.themeIndex--
			if s.themeIndex < 0 {
				s.themeIndex = len(styles.ListThemes()) - 1
			}
			s.theme = s.selectedTheme()
			s.sty = styles.NewStyles(s.theme)
			return s, nil, SettingsNone
		}
		return s.updateTextInput(msg)

	case key.Matches(keyMsg, keys.DefaultKeyMap.Right):
		if s.cursor == settingsFieldTheme {
			s.themeIndex++
			if s.themeIndex >= len(styles.ListThemes()) {
				s.themeIndex = 0
			}
			s.theme = s.selectedTheme()
			s.sty = styles.NewStyles(s.theme)
			return s, nil, SettingsNone
		}
		return s.updateTextInput(msg)
	}

	return s.updateTextInput(msg)
}

// updateTextInput dispatches a key message to the focused text input.
func (s SettingsView) updateTextInput(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	var cmd tea.Cmd
	switch s.cursor {
	case settingsFieldPingInterval:
		s.pingIntervalInput, cmd = s.pingIntervalInput.Update(msg)
	case settingsFieldPingAttempts:
		s.pingAttemptsInput, cmd = s.pingAttemptsInput.Update(msg)
	case settingsFieldSNMPInterval:
		s.snmpIntervalInput, cmd = s.snmpIntervalInput.Update(msg)
	case settingsFieldCommunity:
		s.communityInput, cmd = s.communityInput.Update(msg)
	case settingsFieldVendor:
		s.vendorInput, cmd = s.vendorInput.Update(msg)
	}
	return s, cmd, SettingsNone
}

// saveAll validates the fields and persists globals plus the theme choice.
func (s SettingsView) saveAll() (SettingsView, tea.Cmd, SettingsAction) {
	parse := func(in textinput.Model, name string) (int, bool) {
		n, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil || n < 1 {
			s.err = fmt.Sprintf("%s must be a positive integer", name)
			return 0, false
		}
		return n, true
	}

	pingInterval, ok := parse(s.pingIntervalInput, "Ping interval")
	if !ok {
		return s, nil, SettingsNone
	}
	pingAttempts, ok := parse(s.pingAttemptsInput, "Ping attempts")
	if !ok {
		return s, nil, SettingsNone
	}
	snmpInterval, ok := parse(s.snmpIntervalInput, "SNMP interval")
	if !ok {
		return s, nil, SettingsNone
	}

	g := s.global
	g.DefaultPingInterval = pingInterval
	g.DefaultPingAttempts = pingAttempts
	g.DefaultSNMPInterval = snmpInterval
	g.DefaultSNMPCommunity = strings.TrimSpace(s.communityInput.Value())
	g.DefaultVendor = strings.TrimSpace(s.vendorInput.Value())
	g.AutoStartServices = s.autoStart

	if err := s.save(g); err != nil {
		s.err = fmt.Sprintf("Failed to save settings: %v", err)
		return s, nil, SettingsNone
	}

	s.config.Theme = s.selectedThemeSlug()
	if err := config.EnsureDirs(); err == nil {
		if path, err := config.GetConfigPath(); err == nil {
			// Theme persistence is best effort; globals already saved.
			_ = config.SaveConfig(s.config, path)
		}
	}

	s.global = g
	s.SavedGlobal = g
	s.SavedTheme = s.config.Theme
	s.err = ""
	return s, nil, SettingsSaved
}

// View renders the settings screen.
func (s SettingsView) View() string {
	activeLabel := lipgloss.NewStyle().
		Foreground(s.theme.Base0D).
		Bold(true)

	label := func(idx int, text string) string {
		if idx == s.cursor {
			return activeLabel.Render("> " + text)
		}
		return s.sty.FormLabel.Render("  " + text)
	}

	themeName := s.selectedTheme().Name
	autoStr := "off"
	if s.autoStart {
		autoStr = "on"
	}

	var lines []string
	lines = append(lines,
		s.sty.ModalTitle.Render("Global Settings"),
		"",
		label(settingsFieldTheme, fmt.Sprintf("Theme: < %s >", themeName)),
		"",
		label(settingsFieldPingInterval, "Default ping interval (s)"),
		"    "+s.pingIntervalInput.View(),
		label(settingsFieldPingAttempts, "Ping attempts before offline"),
		"    "+s.pingAttemptsInput.View(),
		label(settingsFieldSNMPInterval, "Default service interval (s)"),
		"    "+s.snmpIntervalInput.View(),
		label(settingsFieldCommunity, "Default SNMP community"),
		"    "+s.communityInput.View(),
		label(settingsFieldVendor, "Default vendor"),
		"    "+s.vendorInput.View(),
		label(settingsFieldAutoStart, fmt.Sprintf("Auto-start services on new devices: %s", autoStr)),
	)
	if s.err != "" {
		lines = append(lines, "", s.sty.ErrorText.Render(s.err))
	}
	lines = append(lines, "", s.sty.FooterDesc.Render("enter: save   esc: cancel   left/right: theme"))

	modal := s.sty.ModalBorder.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, modal)
}
