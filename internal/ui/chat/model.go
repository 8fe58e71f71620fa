// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramolabs/ramo-tui/internal/api"
	"github.com/ramolabs/ramo-tui/internal/config"
	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/storage"
	"github.com/ramolabs/ramo-tui/internal/ui/components"
	"github.com/ramolabs/ramo-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateIdle    State = iota // Ready for input
	StateSending              // Waiting on a backend reply
)

// FallbackReply is appended to the transcript when a send fails, so the
// exchange stays visible even without a real answer.
const FallbackReply = "Something went wrong. Double-check your API key and that the backend is running."

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state     State
	lastError string

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	transcript *model.Transcript
	mode       model.Mode

	// Backend
	client  *api.Client
	history *storage.HistoryStore

	// UI Components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	header    *components.Header
	statusbar *components.StatusBar
}

// New creates the chat view wired to the given API client and history store.
func New(client *api.Client, history *storage.HistoryStore, cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask me anything..."
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	mode := model.ModeSmart
	if cfg != nil && strings.EqualFold(cfg.Chat.DefaultMode, "standard") {
		mode = model.ModeStandard
	}

	header := components.NewHeader(theme)
	header.SetMode(mode)

	bar := components.NewStatusBar(theme)
	bar.SetMode(mode)
	bar.SetAPIKey(client.Credentials().APIKey() != "")

	return Model{
		state:      StateIdle,
		theme:      theme,
		transcript: model.NewTranscript(),
		mode:       mode,
		client:     client,
		history:    history,
		viewport:   viewport.New(80, 20),
		input:      input,
		spinner:    sp,
		header:     header,
		statusbar:  bar,
	}
}

// Transcript exposes the conversation for inspection.
func (m Model) Transcript() *model.Transcript { return m.transcript }

// Mode returns the current chat mode.
func (m Model) Mode() model.Mode { return m.mode }

// Sending reports whether a request is in flight.
func (m Model) Sending() bool { return m.state == StateSending }

// LastError returns the message of the most recent failed send, if any.
func (m Model) LastError() string { return m.lastError }

// canSend is the dispatch guard: idle, key stored, input non-empty.
func (m Model) canSend() bool {
	return m.state == StateIdle &&
		strings.TrimSpace(m.client.Credentials().APIKey()) != "" &&
		strings.TrimSpace(m.input.Value()) != ""
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChatReplyMsg:
		return m.handleReply(msg)

	case ChatErrorMsg:
		return m.handleSendError(msg)

	case TranscriptSavedMsg:
		return m.handleSaved(msg)

	case SessionListMsg:
		return m.handleSessionList(msg)

	case TranscriptLoadedMsg:
		return m.handleLoaded(msg)

	case spinner.TickMsg:
		if m.state == StateSending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	default:
		if m.state == StateIdle {
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			cmds = append(cmds, inputCmd)
		}

		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)

		return m, tea.Batch(cmds...)
	}
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// header + viewport + input area + status bar
	const (
		headerHeight    = 3
		inputAreaHeight = 2
		statusBarHeight = 1
	)

	viewportHeight := m.height - headerHeight - inputAreaHeight - statusBarHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := m.width
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight

	inputWidth := m.width - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m.header.SetWidth(m.width)
	m.statusbar.SetWidth(m.width)

	m.updateViewport()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "tab":
		// Mode switches take effect on the next send and never touch the
		// transcript or an in-flight request.
		m.mode = m.mode.Toggle()
		m.header.SetMode(m.mode)
		m.statusbar.SetMode(m.mode)
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.input.Value())
		if strings.HasPrefix(content, "/") {
			return m.handleCommand(content)
		}
		return m.handleSubmit(content)
	}

	if m.state == StateIdle {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleSubmit dispatches a chat message if the guard allows it.
// A blocked submission is a silent no-op; the input keeps its text.
func (m Model) handleSubmit(content string) (tea.Model, tea.Cmd) {
	if !m.canSend() {
		return m, nil
	}

	m.transcript.AppendUser(content)
	m.input.Reset()
	m.state = StateSending
	m.lastError = ""
	m.statusbar.SetStatus(components.StatusThinking)
	m.updateViewport()

	return m, tea.Batch(
		m.spinner.Tick,
		m.sendCmd(m.mode, m.client.Credentials().APIKey(), content),
	)
}

func (m Model) handleReply(msg ChatReplyMsg) (tea.Model, tea.Cmd) {
	m.transcript.AppendAssistant(msg.Content, msg.Meta)
	m.state = StateIdle
	m.statusbar.SetStatus(components.StatusReady)
	m.input.Focus()
	m.updateViewport()
	return m, textinput.Blink
}

func (m Model) handleSendError(msg ChatErrorMsg) (tea.Model, tea.Cmd) {
	m.transcript.AppendAssistant(FallbackReply, nil)
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
	}
	m.state = StateIdle
	m.statusbar.SetStatus(components.StatusError)
	m.input.Focus()
	m.updateViewport()
	return m, textinput.Blink
}

func (m Model) handleSaved(msg TranscriptSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		m.statusbar.SetStatus(components.StatusError)
	} else {
		m.transcript.AppendAssistant("Conversation saved ("+msg.ID+").", nil)
	}
	m.updateViewport()
	return m, nil
}

func (m Model) handleSessionList(msg SessionListMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		m.statusbar.SetStatus(components.StatusError)
		return m, nil
	}
	m.transcript.AppendAssistant(formatSessionList(msg.Sessions), nil)
	m.updateViewport()
	return m, nil
}

func (m Model) handleLoaded(msg TranscriptLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		m.statusbar.SetStatus(components.StatusError)
		return m, nil
	}
	m.transcript = msg.Transcript
	m.updateViewport()
	return m, nil
}
