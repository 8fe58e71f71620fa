// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for ramo.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdLogin
	CmdRegister
	CmdLogout
	CmdProfile
	CmdSubscribe
	CmdAPIKey
	CmdConfigs
	CmdIngest
	CmdConfig
	CmdSessions
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	BaseURL string

	// Command-specific
	Query      string
	File       string
	Mode       string
	MaxPairs   int
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `ramo %s - chat assistant for your company knowledge

Usage:
  ramo                        Start TUI (default)
  ramo ask "question"         Ask a single question
  ramo chat                   Interactive chat REPL
  ramo register               Create an account
  ramo login                  Log in and store your session token
  ramo logout                 Discard the stored session token
  ramo profile                Show your account profile
  ramo subscribe              Activate your subscription
  ramo apikey                 Issue a fresh API key
  ramo configs [list|add|update]  Manage canned Q&A pairs
  ramo ingest [FILE]          Ingest company knowledge (stdin by default)
  ramo config [show|set K V]  Local configuration
  ramo sessions               List saved conversations
  ramo version                Show version
  ramo help                   Show this help

Flags:
  --base-url URL     Override the backend base URL
  --mode NAME        Chat mode for ask/chat: standard or smart
  --max-pairs N      Cap on generated Q&A pairs for ingest (default 10)
  -f, --file FILE    Input file for ingest
  -v, --verbose      Verbose request logging
  -q, --quiet        Minimal output

Environment:
  RAMO_API_BASE_URL  Backend base URL
  RAMO_DEFAULT_MODE  Default chat mode
`

// PrintUsage prints the top-level usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("ramo version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse for testing.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		args.Query = strings.Join(remaining, " ")
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "login":
		return CmdLogin, args

	case "register", "signup":
		return CmdRegister, args

	case "logout":
		return CmdLogout, args

	case "profile", "whoami":
		return CmdProfile, args

	case "subscribe":
		return CmdSubscribe, args

	case "apikey", "key":
		return CmdAPIKey, args

	case "configs":
		if len(remaining) > 0 {
			args.Subcommand = strings.ToLower(remaining[0])
			args.Raw = remaining[1:]
		}
		return CmdConfigs, args

	case "ingest":
		if len(remaining) > 0 && args.File == "" {
			args.File = remaining[0]
		}
		return CmdIngest, args

	case "config":
		if len(remaining) > 0 {
			args.Subcommand = strings.ToLower(remaining[0])
			args.Raw = remaining[1:]
		}
		return CmdConfig, args

	case "sessions", "session":
		return CmdSessions, args

	case "version", "--version", "-V":
		return CmdVersion, args

	case "help", "--help", "-h":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	args := Args{MaxPairs: 10}
	var remaining []string

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-v", "--verbose":
			args.Verbose = true
		case "-q", "--quiet":
			args.Quiet = true
		case "--base-url":
			if i+1 < len(argv) {
				i++
				args.BaseURL = argv[i]
			}
		case "--mode":
			if i+1 < len(argv) {
				i++
				args.Mode = strings.ToLower(argv[i])
			}
		case "--max-pairs":
			if i+1 < len(argv) {
				i++
				fmt.Sscanf(argv[i], "%d", &args.MaxPairs)
			}
		case "-f", "--file":
			if i+1 < len(argv) {
				i++
				args.File = argv[i]
			}
		default:
			if strings.HasPrefix(arg, "--base-url=") {
				args.BaseURL = strings.TrimPrefix(arg, "--base-url=")
			} else if strings.HasPrefix(arg, "--mode=") {
				args.Mode = strings.ToLower(strings.TrimPrefix(arg, "--mode="))
			} else if strings.HasPrefix(arg, "--max-pairs=") {
				fmt.Sscanf(strings.TrimPrefix(arg, "--max-pairs="), "%d", &args.MaxPairs)
			} else if strings.HasPrefix(arg, "--file=") {
				args.File = strings.TrimPrefix(arg, "--file=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, args
}

// HandleVersion prints version info.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp prints usage.
func HandleHelp() {
	PrintUsage()
}
