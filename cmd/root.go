package cmd

import (
	"fmt"
	"os"
)

// Version and Build are stamped at link time.
var (
	Version = "0.1.0"
	Build   = ""
)

// knownSubcommands is the set of CLI subcommands that bypass the TUI.
var knownSubcommands = map[string]bool{
	"probe":   true,
	"config":  true,
	"themes":  true,
	"version": true,
	"help":    true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "probe":
		probeCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Printf("netboard v%s\n", Version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`netboard - interactive network topology board

Usage:
  netboard                  Launch the topology board
  netboard probe [ADDR]     Run the diagnostic probe service
  netboard config <cmd>     Manage configuration
  netboard themes           List available themes
  netboard version          Show version
  netboard help             Show this help

Probe:
  netboard probe            Listen on the configured probe address
  netboard probe :9000      Listen on a specific address

Config Commands:
  netboard config path          Show config directory path
  netboard config theme NAME    Set default theme
  netboard config probe URL     Set the probe service URL`)
}
