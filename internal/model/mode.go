// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// CHAT MODE
// =============================================================================

// Mode selects which backend path a send uses. It is pure selection state:
// it does not persist across runs and never affects the transcript.
type Mode int

const (
	// ModeStandard uses the plain /chat path.
	ModeStandard Mode = iota

	// ModeSmart uses the vector-search augmented /chat-smart path.
	ModeSmart
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeSmart:
		return "smart"
	default:
		return "standard"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeStandard {
		return ModeSmart
	}
	return ModeStandard
}
