// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args starts tui", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "hello"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"login", []string{"login"}, CmdLogin},
		{"register", []string{"register"}, CmdRegister},
		{"signup alias", []string{"signup"}, CmdRegister},
		{"logout", []string{"logout"}, CmdLogout},
		{"profile", []string{"profile"}, CmdProfile},
		{"whoami alias", []string{"whoami"}, CmdProfile},
		{"subscribe", []string{"subscribe"}, CmdSubscribe},
		{"apikey", []string{"apikey"}, CmdAPIKey},
		{"key alias", []string{"key"}, CmdAPIKey},
		{"configs", []string{"configs"}, CmdConfigs},
		{"ingest", []string{"ingest"}, CmdIngest},
		{"config", []string{"config"}, CmdConfig},
		{"sessions", []string{"sessions"}, CmdSessions},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"unknown falls back to help", []string{"frobnicate"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ParseArgs(tt.argv)
			if got != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseArgs_AskQuery(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "what", "is", "ramo"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Query != "what is ramo" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--verbose", "--base-url", "http://example.com", "ask", "hi"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v", cmd)
	}
	if !args.Verbose {
		t.Error("Verbose should be set")
	}
	if args.BaseURL != "http://example.com" {
		t.Errorf("BaseURL = %q", args.BaseURL)
	}
}

func TestParseArgs_EqualsFlags(t *testing.T) {
	_, args := ParseArgs([]string{"--mode=standard", "--max-pairs=5", "--file=notes.txt", "ingest"})
	if args.Mode != "standard" {
		t.Errorf("Mode = %q", args.Mode)
	}
	if args.MaxPairs != 5 {
		t.Errorf("MaxPairs = %d", args.MaxPairs)
	}
	if args.File != "notes.txt" {
		t.Errorf("File = %q", args.File)
	}
}

func TestParseArgs_ConfigsSubcommand(t *testing.T) {
	cmd, args := ParseArgs([]string{"configs", "update", "abc123"})
	if cmd != CmdConfigs {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Subcommand != "update" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
	if len(args.Raw) != 1 || args.Raw[0] != "abc123" {
		t.Errorf("Raw = %v", args.Raw)
	}
}

func TestParseArgs_IngestPositionalFile(t *testing.T) {
	_, args := ParseArgs([]string{"ingest", "notes.txt"})
	if args.File != "notes.txt" {
		t.Errorf("File = %q", args.File)
	}
}

func TestParseArgs_MaxPairsDefault(t *testing.T) {
	_, args := ParseArgs([]string{"ingest"})
	if args.MaxPairs != 10 {
		t.Errorf("MaxPairs default = %d, want 10", args.MaxPairs)
	}
}
