// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file implements the slash command registry and the backend send
// command. Each command is an individual, testable handler function.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramolabs/ramo-tui/internal/credentials"
	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/storage"
)

// =============================================================================
// BACKEND SEND
// =============================================================================

// sendCmd performs the chat request off the update loop. The mode and key are
// captured at dispatch time, so toggling mode mid-flight has no effect on the
// pending request.
func (m Model) sendCmd(mode model.Mode, apiKey, message string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		if mode == model.ModeSmart {
			resp, err := client.ChatSmart(ctx, apiKey, message)
			if err != nil {
				return ChatErrorMsg{Err: err}
			}
			meta := &model.Meta{Cached: resp.Cached}
			if resp.RelevantStoresFound != nil {
				meta.Note = fmt.Sprintf("Relevant stores: %d", *resp.RelevantStoresFound)
			}
			return ChatReplyMsg{Content: resp.Response, Meta: meta}
		}

		resp, err := client.Chat(ctx, apiKey, message)
		if err != nil {
			return ChatErrorMsg{Err: err}
		}
		return ChatReplyMsg{Content: resp.Response, Meta: &model.Meta{Cached: resp.Cached}}
	}
}

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// CommandHandler handles a specific slash command.
type CommandHandler func(m *Model, args []string) (tea.Model, tea.Cmd)

var commandHandlers = map[string]CommandHandler{
	"help": handleHelpCommand,
	"h":    handleHelpCommand,
	"?":    handleHelpCommand,
	"quit": handleQuitCommand,
	"q":    handleQuitCommand,
	"exit": handleQuitCommand,

	"new":      handleNewCommand,
	"n":        handleNewCommand,
	"save":     handleSaveCommand,
	"s":        handleSaveCommand,
	"load":     handleLoadCommand,
	"sessions": handleSessionsCommand,
	"list":     handleSessionsCommand,

	"key":  handleKeyCommand,
	"mode": handleModeCommand,
}

// handleCommand processes slash commands using the registry.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return m, nil
	}

	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	if handler, ok := commandHandlers[cmdName]; ok {
		return handler(&m, args)
	}

	m.transcript.AppendAssistant(
		"Unknown command '"+content+"'. Type /help for available commands.", nil)
	m.updateViewport()
	return m, nil
}

// =============================================================================
// HELP AND META COMMANDS
// =============================================================================

func handleHelpCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	help := strings.Join([]string{
		"Commands:",
		"  /key <value>      store your API key",
		"  /mode [name]      show or set the chat mode (standard, smart)",
		"  /new              start a fresh conversation",
		"  /save             save this conversation",
		"  /sessions         list saved conversations",
		"  /load <id>        restore a saved conversation",
		"  /quit             exit",
		"",
		"Keys: tab toggles mode, ctrl+c quits.",
	}, "\n")
	m.transcript.AppendAssistant(help, nil)
	m.updateViewport()
	return *m, nil
}

func handleQuitCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	return *m, tea.Quit
}

// =============================================================================
// SESSION COMMANDS
// =============================================================================

func handleNewCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	m.transcript = model.NewTranscript()
	m.lastError = ""
	m.updateViewport()
	return *m, nil
}

func handleSaveCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	history := m.history
	transcript := m.transcript
	return *m, func() tea.Msg {
		if history == nil {
			return TranscriptSavedMsg{Err: fmt.Errorf("history store unavailable")}
		}
		id, err := history.Save(transcript)
		if err != nil {
			return TranscriptSavedMsg{Err: err}
		}
		return TranscriptSavedMsg{ID: id}
	}
}

func handleSessionsCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	history := m.history
	return *m, func() tea.Msg {
		if history == nil {
			return SessionListMsg{Err: fmt.Errorf("history store unavailable")}
		}
		sessions, err := history.List()
		return SessionListMsg{Sessions: sessions, Err: err}
	}
}

func handleLoadCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.transcript.AppendAssistant("Usage: /load <id>. Use /sessions to list saved conversations.", nil)
		m.updateViewport()
		return *m, nil
	}
	history := m.history
	id := args[0]
	return *m, func() tea.Msg {
		if history == nil {
			return TranscriptLoadedMsg{Err: fmt.Errorf("history store unavailable")}
		}
		transcript, err := history.Load(id)
		return TranscriptLoadedMsg{Transcript: transcript, Err: err}
	}
}

// =============================================================================
// KEY AND MODE COMMANDS
// =============================================================================

func handleKeyCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		if m.client.Credentials().APIKey() != "" {
			m.transcript.AppendAssistant("An API key is stored. Use /key <value> to replace it.", nil)
		} else {
			m.transcript.AppendAssistant("No API key stored. Use /key <value> to set one.", nil)
		}
		m.updateViewport()
		return *m, nil
	}

	m.client.Credentials().Set(credentials.KeyAPIKey, args[0])
	m.statusbar.SetAPIKey(true)
	m.transcript.AppendAssistant("API key stored.", nil)
	m.updateViewport()
	return *m, nil
}

func handleModeCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.transcript.AppendAssistant("Current mode: "+m.mode.String()+". Use /mode standard or /mode smart.", nil)
		m.updateViewport()
		return *m, nil
	}

	switch strings.ToLower(args[0]) {
	case "standard":
		m.mode = model.ModeStandard
	case "smart":
		m.mode = model.ModeSmart
	default:
		m.transcript.AppendAssistant("Unknown mode '"+args[0]+"'. Modes: standard, smart.", nil)
		m.updateViewport()
		return *m, nil
	}

	m.header.SetMode(m.mode)
	m.statusbar.SetMode(m.mode)
	m.transcript.AppendAssistant("Mode set to "+m.mode.String()+".", nil)
	m.updateViewport()
	return *m, nil
}

// formatSessionList renders the stored transcript listing for the viewport.
func formatSessionList(sessions []storage.TranscriptMeta) string {
	if len(sessions) == 0 {
		return "No saved conversations yet. Use /save to keep this one."
	}

	var b strings.Builder
	b.WriteString("Saved conversations:\n")
	for _, s := range sessions {
		fmt.Fprintf(&b, "  %s  %s  (%d messages, %s)\n",
			s.ID, s.Preview, s.MessageCount, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("Use /load <id> to restore one.")
	return b.String()
}
