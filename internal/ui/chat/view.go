// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the rendering logic for the chat interface: the main
// layout, message bubbles, the input area, and the thinking indicator.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramolabs/ramo-tui/internal/model"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the chat view.
// Layout: header + messages (viewport) + input area + status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.header.View()
	input := m.renderInput()
	status := m.statusbar.View()

	var errLine string
	if m.lastError != "" {
		errLine = m.theme.ErrorBanner.Width(m.width - 2).Render(m.lastError)
	}

	availableHeight := m.height - lipgloss.Height(header) - lipgloss.Height(input) - lipgloss.Height(status)
	if errLine != "" {
		availableHeight -= lipgloss.Height(errLine)
	}
	if availableHeight < 1 {
		availableHeight = 1
	}

	messages := m.viewport.View()
	if lipgloss.Height(messages) != availableHeight {
		messages = lipgloss.NewStyle().
			Height(availableHeight).
			MaxHeight(availableHeight).
			Width(m.width).
			Render(messages)
	}

	if errLine != "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, messages, errLine, input, status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, messages, input, status)
}

// updateViewport re-renders the transcript into the viewport and scrolls to
// the bottom.
func (m *Model) updateViewport() {
	var sections []string
	for _, msg := range m.transcript.Messages {
		sections = append(sections, m.renderMessage(msg))
	}

	if m.state == StateSending {
		sections = append(sections, m.renderThinking())
	}

	m.viewport.SetContent(strings.Join(sections, "\n\n"))
	m.viewport.GotoBottom()
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

func (m *Model) renderMessage(msg *model.Message) string {
	switch msg.Role {
	case model.RoleUser:
		return m.renderUserMessage(msg)
	default:
		return m.renderAssistantMessage(msg)
	}
}

func (m *Model) bubbleWidth() int {
	w := m.width - 12
	if w < 20 {
		w = 20
	}
	return w
}

// renderUserMessage renders a user message right-aligned in blue.
func (m *Model) renderUserMessage(msg *model.Message) string {
	label := m.theme.RoleLabelUser.Render(msg.Role.DisplayName())
	bubble := m.theme.UserBubble.MaxWidth(m.bubbleWidth()).Render(msg.Content)

	block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
}

// renderAssistantMessage renders an assistant message left-aligned in purple,
// with an optional meta line for cache hits and retrieval notes.
func (m *Model) renderAssistantMessage(msg *model.Message) string {
	label := m.theme.RoleLabelBot.Render(msg.Role.DisplayName())
	bubble := m.theme.AssistantBubble.MaxWidth(m.bubbleWidth()).Render(msg.Content)

	parts := []string{label, bubble}
	if meta := m.renderMeta(msg.Meta); meta != "" {
		parts = append(parts, meta)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderMeta(meta *model.Meta) string {
	if meta == nil {
		return ""
	}

	var parts []string
	if meta.Note != "" {
		parts = append(parts, m.theme.MessageMeta.Render(meta.Note))
	}
	if meta.Cached {
		parts = append(parts, m.theme.CacheBadge.Render("(cached)"))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderThinking() string {
	return m.spinner.View() + " " + m.theme.ThinkingText.Render("Thinking...")
}

// =============================================================================
// INPUT AREA
// =============================================================================

func (m Model) renderInput() string {
	line := m.input.View()
	if m.state == StateSending {
		line = m.theme.InputPlaceholder.Render("Waiting for reply...")
	} else if m.client.Credentials().APIKey() == "" {
		line += "  " + m.theme.KeyWarning.Render("set a key with /key <value>")
	}

	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return m.theme.InputContainer.Width(width).Render(line)
}
