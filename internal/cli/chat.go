// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler.
//
// Handles "ramo chat" which provides an interactive REPL against the backend
// chat endpoints, with readline-style history via liner.
//
// Interactive commands:
//   /help, /h           Show available commands
//   /mode [name]        Show or switch chat mode (standard, smart)
//   /new                Start a fresh conversation
//   /save               Save the conversation to history
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/config"
	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/storage"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *ChatCLI) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *ChatCLI) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// chatSession holds the state for an interactive chat session.
type chatSession struct {
	client     *api.Client
	history    *storage.HistoryStore
	transcript *model.Transcript
	mode       model.Mode
	quiet      bool
	input      *ChatCLI
}

// HandleChat runs the interactive chat REPL.
func HandleChat(args Args) {
	client, cfg := newClient(args)

	if client.Credentials().APIKey() == "" {
		fail(fmt.Errorf("no API key stored; run 'ramo apikey' after logging in"))
	}

	mode := model.ModeSmart
	name := cfg.Chat.DefaultMode
	if args.Mode != "" {
		name = args.Mode
	}
	if strings.EqualFold(name, "standard") {
		mode = model.ModeStandard
	}

	history, err := storage.NewHistoryStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v (saving disabled)\n", warningStyle.Render("[history]"), err)
	}

	session := &chatSession{
		client:     client,
		history:    history,
		transcript: model.NewTranscript(),
		mode:       mode,
		quiet:      args.Quiet,
		input:      NewChatCLI(),
	}
	defer session.input.Close()

	if !args.Quiet {
		fmt.Println(welcomeStyle.Render("RAMO chat") + infoStyle.Render("  ("+session.mode.String()+" mode, /help for commands)"))
		fmt.Println(renderMarkdown(model.Greeting))
	}

	for {
		input, err := session.input.ReadInput(promptStyle.Render("ramo> "))
		if err != nil {
			// liner.ErrPromptAborted (Ctrl+C) and EOF (Ctrl+D) both exit.
			fmt.Println()
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if !session.handleSlashCommand(input) {
				return
			}
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return
		}

		if err := session.send(input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// send dispatches one message and prints the reply.
func (s *chatSession) send(input string) error {
	s.transcript.AppendUser(input)

	apiKey := s.client.Credentials().APIKey()
	ctx := context.Background()

	var content string
	var meta model.Meta
	if s.mode == model.ModeSmart {
		resp, err := s.client.ChatSmart(ctx, apiKey, input)
		if err != nil {
			return err
		}
		content = resp.Response
		meta.Cached = resp.Cached
		if resp.RelevantStoresFound != nil {
			meta.Note = fmt.Sprintf("Relevant stores: %d", *resp.RelevantStoresFound)
		}
	} else {
		resp, err := s.client.Chat(ctx, apiKey, input)
		if err != nil {
			return err
		}
		content = resp.Response
		meta.Cached = resp.Cached
	}

	s.transcript.AppendAssistant(content, &meta)
	fmt.Print(renderMarkdown(content))
	if !s.quiet {
		if meta.Note != "" {
			fmt.Println(metaStyle.Render(meta.Note))
		}
		if meta.Cached {
			fmt.Println(metaStyle.Render("(cached)"))
		}
	}
	return nil
}

// handleSlashCommand processes a REPL command. Returns false to exit.
func (s *chatSession) handleSlashCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	switch cmd {
	case "help", "h", "?":
		fmt.Println(infoStyle.Render(strings.Join([]string{
			"/mode [name]   show or switch mode (standard, smart)",
			"/new           start a fresh conversation",
			"/save          save this conversation",
			"/quit          exit",
		}, "\n")))

	case "mode":
		if len(args) == 0 {
			fmt.Println(infoStyle.Render("Current mode: " + s.mode.String()))
			break
		}
		switch strings.ToLower(args[0]) {
		case "standard":
			s.mode = model.ModeStandard
		case "smart":
			s.mode = model.ModeSmart
		default:
			fmt.Println(warningStyle.Render("Unknown mode; use standard or smart."))
			return true
		}
		fmt.Println(successStyle.Render("Mode: " + s.mode.String()))

	case "new", "n":
		s.transcript = model.NewTranscript()
		fmt.Println(successStyle.Render("Started a fresh conversation."))

	case "save", "s":
		if s.history == nil {
			fmt.Println(warningStyle.Render("History store unavailable."))
			break
		}
		id, err := s.history.Save(s.transcript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			break
		}
		fmt.Println(successStyle.Render("Saved (" + id + ")."))

	case "quit", "q", "exit":
		return false

	default:
		fmt.Println(warningStyle.Render("Unknown command; /help lists commands."))
	}
	return true
}

// HandleSessions lists saved conversations.
func HandleSessions(args Args) {
	history, err := storage.NewHistoryStore()
	if err != nil {
		fail(err)
	}
	sessions, err := history.List()
	if err != nil {
		fail(err)
	}
	if len(sessions) == 0 {
		fmt.Println(infoStyle.Render("No saved conversations."))
		return
	}
	for _, s := range sessions {
		fmt.Printf("%s  %s  %s\n",
			metaStyle.Render(s.UpdatedAt.Format("2006-01-02 15:04")),
			s.ID,
			s.Preview)
	}
}
