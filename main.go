// ramo TUI - a terminal client for the RAMO chat assistant.
//
// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/cli"
	"github.com/ramolabs/ramo-tui/internal/config"
	"github.com/ramolabs/ramo-tui/internal/credentials"
	"github.com/ramolabs/ramo-tui/internal/storage"
	"github.com/ramolabs/ramo-tui/internal/ui/chat"
	"github.com/ramolabs/ramo-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdLogin:
		cli.HandleLogin(args)
	case cli.CmdRegister:
		cli.HandleRegister(args)
	case cli.CmdLogout:
		cli.HandleLogout(args)
	case cli.CmdProfile:
		cli.HandleProfile(args)
	case cli.CmdSubscribe:
		cli.HandleSubscribe(args)
	case cli.CmdAPIKey:
		cli.HandleAPIKey(args)
	case cli.CmdConfigs:
		cli.HandleConfigs(args)
	case cli.CmdIngest:
		cli.HandleIngest(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdSessions:
		cli.HandleSessions(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	baseURL := cfg.API.BaseURL
	if args.BaseURL != "" {
		baseURL = args.BaseURL
	}

	client := api.New(baseURL, credentials.NewStore())
	if args.Verbose || cfg.API.Verbose {
		client.WithVerbose(true)
	}

	history, err := storage.NewHistoryStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: conversation history unavailable: %v\n", err)
		history = nil
	}

	// Reload the backend URL when the config file changes on disk. The flag
	// override wins for the lifetime of the process.
	if args.BaseURL == "" {
		if path, err := config.Path(); err == nil {
			if watcher, err := config.NewWatcher(path, func(c *config.Config) {
				client.SetBaseURL(c.API.BaseURL)
			}); err == nil {
				defer watcher.Close()
			}
		}
	}

	m := chat.New(client, history, cfg, styles.NewTheme())

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
