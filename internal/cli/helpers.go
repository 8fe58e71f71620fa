// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared wiring for CLI command handlers.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/config"
	"github.com/ramolabs/ramo-tui/internal/credentials"
)

// newClient builds an API client from config, flags, and stored credentials.
func newClient(args Args) (*api.Client, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v (using defaults)\n", warningStyle.Render("[config]"), err)
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
	return client, cfg
}

// promptLine reads a single line from stdin with a styled prompt.
func promptLine(label string) (string, error) {
	fmt.Print(promptStyle.Render(label + ": "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo.
func promptPassword(label string) (string, error) {
	fmt.Print(promptStyle.Render(label + ": "))
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}

// fail prints an error message and exits non-zero.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("Error:"), err)
	os.Exit(1)
}
