package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"netboard/cmd"
	"netboard/internal/config"
	"netboard/internal/monitor"
	"netboard/internal/probe"
	"netboard/internal/settings"
	"netboard/internal/topology"
	"netboard/tui"
)

func main() {
	if len(os.Args) > 1 && cmd.IsSubcommand(os.Args[1]) {
		cmd.Execute(os.Args[1:])
		return
	}

	cfg := config.DefaultConfig()
	if path, err := config.GetConfigPath(); err == nil {
		if loaded, loadErr := config.LoadConfig(path); loadErr == nil {
			cfg = loaded
		}
	}

	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	holder, saveGlobal, err := openSettings(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := topology.NewStore()
	client := probe.NewClient(cfg.ProbeURL)

	sched := monitor.NewScheduler(store, client, holder.Get, log)
	go sched.Run()
	defer sched.Stop()

	model := tui.NewAppModel(cfg, store, sched, holder, saveGlobal, client, cmd.Version, cmd.Build)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger routes logs to the configured file; the terminal belongs to the
// board, so a failed open falls back to discarding rather than stderr.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	path := cfg.LogFile
	if path == "" {
		if p, err := config.GetLogPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			log.SetOutput(f)
		}
	}
	return log
}

// openSettings loads the persisted global settings and returns a shared
// holder plus a save function that writes through to the database.
func openSettings(log *logrus.Logger) (*settings.Holder, func(settings.Global) error, error) {
	dbPath, err := config.GetSettingsDBPath()
	if err != nil {
		return nil, nil, err
	}
	st, err := settings.OpenStore(dbPath)
	if err != nil {
		return nil, nil, err
	}

	g, err := st.Load(context.Background())
	if err != nil {
		log.WithError(err).Warn("settings load failed, using defaults")
		g = settings.Defaults()
	}
	holder := settings.NewHolder(g)

	save := func(g settings.Global) error {
		if err := st.Save(context.Background(), g); err != nil {
			return err
		}
		holder.Set(g)
		return nil
	}
	return holder, save, nil
}
