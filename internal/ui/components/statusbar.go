// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar represents the bottom status bar.
type StatusBar struct {
	Mode          model.Mode
	HasAPIKey     bool
	Status        Status
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Mode:          model.ModeStandard,
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetMode updates the chat mode indicator.
func (s *StatusBar) SetMode(mode model.Mode) {
	s.Mode = mode
}

// SetAPIKey updates the API key presence indicator.
func (s *StatusBar) SetAPIKey(present bool) {
	s.HasAPIKey = present
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var modeText string
	switch s.Mode {
	case model.ModeSmart:
		modeText = s.theme.ModeSmart.Render("SMART")
	default:
		modeText = s.theme.ModeStandard.Render("STANDARD")
	}

	keyText := s.theme.ShortcutDesc.Render("key set")
	if !s.HasAPIKey {
		keyText = s.theme.KeyWarning.Render("no API key")
	}

	var statusText string
	switch s.Status {
	case StatusError:
		statusText = lipgloss.NewStyle().Foreground(styles.Rose).Render(s.Status.String())
	case StatusThinking:
		statusText = s.theme.ThinkingText.Render(s.Status.String())
	default:
		statusText = s.theme.ShortcutDesc.Render(s.Status.String())
	}

	left := strings.Join([]string{modeText, keyText, statusText}, "  |  ")

	right := ""
	if s.ShowShortcuts && s.Width >= 80 {
		right = s.renderShortcuts()
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	line := left + strings.Repeat(" ", gap) + right
	if lipgloss.Width(line) > s.Width-2 && s.Width > 2 {
		line = runewidth.Truncate(line, s.Width-2, "")
	}

	return s.theme.StatusBar.Width(s.Width).Render(line)
}

func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct{ key, desc string }{
		{"tab", "mode"},
		{"/help", "commands"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+" "+s.theme.ShortcutDesc.Render(sc.desc))
	}
	return strings.Join(parts, "  ")
}
