package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netboard/internal/board"
	"netboard/internal/config"
	"netboard/internal/monitor"
	"netboard/internal/settings"
	"netboard/internal/topology"
	"netboard/tui/components"
	"netboard/tui/keys"
	"netboard/tui/styles"
	"netboard/tui/views"
)

// AppState represents the current screen/view of the application.
type AppState int

const (
	StateBoard AppState = iota
	StateEditor
	StateServices
	StateSettings
	StateInfo
)

// FrameMsg drives the render loop; the board is redrawn once per frame.
type FrameMsg struct{}

// DiagnosticMsg delivers the result of a one-shot diagnostic.
type DiagnosticMsg struct {
	Check  topology.CheckType
	Output string
	Err    error
}

const headerHeight = 1
const footerHeight = 2

// AppModel is the root Bubble Tea model that manages all views and state.
type AppModel struct {
	state   AppState
	theme   styles.Theme
	config  *config.Config
	store   *topology.Store
	machine *board.Machine
	sched   *monitor.Scheduler
	globals *settings.Holder
	diag    monitor.Runner

	saveGlobal func(settings.Global) error

	boardView    views.BoardView
	editorView   views.EditorView
	servicesView views.ServicesView
	settingsView views.SettingsView
	infoView     views.InfoView
	helpView     views.HelpView

	width   int
	height  int
	version string
	build   string
}

// NewAppModel wires the root model. saveGlobal persists global settings;
// diag executes one-shot diagnostics.
func NewAppModel(cfg *config.Config, store *topology.Store, sched *monitor.Scheduler, globals *settings.Holder, saveGlobal func(settings.Global) error, diag monitor.Runner, version, build string) AppModel {
	theme := styles.DefaultTheme
	if t := styles.GetThemeByName(cfg.Theme); t != nil {
		theme = *t
	}
	machine := board.NewMachine(store)
	return AppModel{
		state:      StateBoard,
		theme:      theme,
		config:     cfg,
		store:      store,
		machine:    machine,
		sched:      sched,
		globals:    globals,
		diag:       diag,
		saveGlobal: saveGlobal,
		boardView:  views.NewBoardView(theme, store, machine, globals.Get),
		infoView:   views.NewInfoView(theme),
		helpView:   views.NewHelpView(theme),
		version:    version,
		build:      build,
	}
}

// Init returns the initial command to start the frame loop.
func (m AppModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m AppModel) frameCmd() tea.Cmd {
	return tea.Tick(m.config.FrameInterval(), func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

func (m AppModel) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		body := m.bodyHeight()
		m.boardView.SetSize(msg.Width, body)
		m.editorView.SetSize(msg.Width, body)
		m.servicesView.SetSize(msg.Width, body)
		m.settingsView.SetSize(msg.Width, body)
		m.infoView.SetSize(msg.Width, body)
		m.helpView.SetSize(msg.Width, body)
		return m, nil

	case FrameMsg:
		// The poll scheduler mutates the store on its own cadence; each
		// frame just repaints from the current snapshot.
		return m, m.frameCmd()

	case DiagnosticMsg:
		m.infoView.SetResult(msg.Check, msg.Output, msg.Err)
		return m, nil

	case tea.MouseMsg:
		if m.state != StateBoard || m.helpView.IsVisible() {
			return m, nil
		}
		msg.Y -= headerHeight
		if msg.Y < 0 || msg.Y >= m.bodyHeight() {
			return m, nil
		}
		var action views.BoardAction
		m.boardView, action = m.boardView.Update(msg)
		if action == views.BoardOpenEditor {
			m.openEditor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, even inside a form.
	if msg.String() == "ctrl+c" {
		m.sched.Stop()
		return m, tea.Quit
	}

	if m.helpView.IsVisible() {
		if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
			m.helpView.Toggle()
		}
		return m, nil
	}

	switch m.state {
	case StateBoard:
		return m.handleBoardKey(msg)

	case StateEditor:
		var cmd tea.Cmd
		var action views.EditorAction
		m.editorView, cmd, action = m.editorView.Update(msg)
		if action != views.EditorNone {
			m.state = StateBoard
		}
		return m, cmd

	case StateServices:
		var action views.ServicesAction
		m.servicesView, action = m.servicesView.Update(msg)
		if action == views.ServicesClose {
			m.state = StateBoard
		}
		return m, nil

	case StateSettings:
		var cmd tea.Cmd
		var action views.SettingsAction
		m.settingsView, cmd, action = m.settingsView.Update(msg)
		switch action {
		case views.SettingsSaved:
			m.globals.Set(m.settingsView.SavedGlobal)
			if t := styles.GetThemeByName(m.settingsView.SavedTheme); t != nil {
				m.applyTheme(*t)
			}
			m.state = StateBoard
		case views.SettingsClose:
			m.state = StateBoard
		}
		return m, cmd

	case StateInfo:
		if key.Matches(msg, keys.DefaultKeyMap.Escape) || key.Matches(msg, keys.DefaultKeyMap.Enter) {
			m.state = StateBoard
		}
		return m, nil
	}
	return m, nil
}

func (m AppModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(msg, km.Quit):
		m.sched.Stop()
		return m, tea.Quit

	case key.Matches(msg, km.Help):
		m.helpView.Toggle()

	case key.Matches(msg, km.Escape):
		m.machine.Cancel()

	case key.Matches(msg, km.AddRouter):
		m.boardView.AddDevice(topology.KindRouter)
	case key.Matches(msg, km.AddSwitch):
		m.boardView.AddDevice(topology.KindSwitch)
	case key.Matches(msg, km.AddAP):
		m.boardView.AddDevice(topology.KindAccessPoint)
	case key.Matches(msg, km.AddServer):
		m.boardView.AddDevice(topology.KindServer)
	case key.Matches(msg, km.AddClient):
		m.boardView.AddDevice(topology.KindClient)

	case key.Matches(msg, km.Connect):
		m.machine.StartConnect()

	case key.Matches(msg, km.Delete):
		m.machine.Delete()

	case key.Matches(msg, km.Edit):
		m.openEditor()

	case key.Matches(msg, km.Services):
		if d, ok := m.machine.Selected(); ok {
			m.servicesView = views.NewServicesView(m.theme, m.store, d, m.globals.Get, m.sched.Window)
			m.servicesView.SetSize(m.width, m.bodyHeight())
			m.state = StateServices
		}

	case key.Matches(msg, km.Settings):
		m.settingsView = views.NewSettingsView(m.theme, m.config, m.globals.Get(), m.saveGlobal)
		m.settingsView.SetSize(m.width, m.bodyHeight())
		m.state = StateSettings

	case key.Matches(msg, km.Ping):
		return m.runDiagnostic(topology.CheckPing)
	case key.Matches(msg, km.Traceroute):
		return m.runDiagnostic(topology.CheckTraceroute)
	case key.Matches(msg, km.SNMPTest):
		return m.runDiagnostic(topology.CheckSNMP)
	}
	return m, nil
}

func (m *AppModel) openEditor() {
	if d, ok := m.machine.Selected(); ok {
		m.editorView = views.NewEditorView(m.theme, m.store, d)
		m.editorView.SetSize(m.width, m.bodyHeight())
		m.state = StateEditor
	}
}

// runDiagnostic fires a one-shot check against the selected device and
// shows the result view once the collaborator answers.
func (m AppModel) runDiagnostic(check topology.CheckType) (tea.Model, tea.Cmd) {
	d, ok := m.machine.Selected()
	if !ok {
		return m, nil
	}
	if d.Address == "" {
		m.infoView.Start(check, d.Name)
		m.infoView.SetResult(check, "Device has no address configured.", nil)
		m.state = StateInfo
		return m, nil
	}

	community := monitor.Resolve(d, m.globals.Get()).SNMPCommunity
	address := d.Address
	diag := m.diag

	m.infoView.Start(check, d.Name)
	m.state = StateInfo
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		out, err := diag.Run(ctx, check, address, community)
		return DiagnosticMsg{Check: check, Output: out, Err: err}
	}
}

func (m *AppModel) applyTheme(theme styles.Theme) {
	m.theme = theme
	styles.SetTheme(theme)
	m.boardView.SetTheme(theme)
	m.infoView = views.NewInfoView(theme)
	m.helpView = views.NewHelpView(theme)
	m.infoView.SetSize(m.width, m.bodyHeight())
	m.helpView.SetSize(m.width, m.bodyHeight())
}

// View renders the full application UI by composing header, body, and
// status bar.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	devices := m.store.All()
	edges := 0
	for _, d := range devices {
		edges += len(d.Connections)
	}
	edges /= 2

	info := m.sched.Info()
	header := components.RenderHeader(m.theme, len(devices), edges, !info.LastTick.IsZero(), m.width, m.version, m.build)

	var body string
	switch m.state {
	case StateBoard:
		body = m.boardView.View()
	case StateEditor:
		body = m.editorView.View()
	case StateServices:
		body = m.servicesView.View()
	case StateSettings:
		body = m.settingsView.View()
	case StateInfo:
		body = m.infoView.View()
	}
	if m.helpView.IsVisible() {
		body = m.helpView.View()
	}

	selection := ""
	if d, ok := m.machine.Selected(); ok {
		selection = d.Name
	}
	statusBar := components.RenderStatusBar(m.theme, m.machine.State().String(), selection,
		info.LastTick, info.Checks, info.Errors, m.width)

	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
