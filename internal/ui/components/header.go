// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with RAMO branding
// =============================================================================

// Header represents the title bar component.
type Header struct {
	Title    string
	Subtitle string
	Mode     model.Mode
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "RAMO",
		Subtitle: "your AI assistant",
		Mode:     model.ModeStandard,
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetMode updates the chat mode shown next to the brand.
func (h *Header) SetMode(mode model.Mode) {
	h.Mode = mode
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	brand := h.theme.HeaderBrand.Render(h.Title)
	subtitle := h.theme.MessageMeta.Render(h.Subtitle)

	var modeBadge string
	switch h.Mode {
	case model.ModeSmart:
		modeBadge = h.theme.ModeSmart.Render("SMART")
	default:
		modeBadge = h.theme.ModeStandard.Render("STANDARD")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		brand, "  ", subtitle, "  ", modeBadge)

	return h.theme.Header.Width(width - 2).Render(line)
}
