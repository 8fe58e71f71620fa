// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/storage"
)

// =============================================================================
// SEND LIFECYCLE MESSAGES
// =============================================================================

// ChatReplyMsg delivers a completed assistant reply.
type ChatReplyMsg struct {
	Content string
	Meta    *model.Meta
}

// ChatErrorMsg signals that a send failed. The transcript still receives a
// fallback assistant message so the exchange stays visible.
type ChatErrorMsg struct {
	Err error
}

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// TranscriptSavedMsg reports the outcome of a /save.
type TranscriptSavedMsg struct {
	ID  string
	Err error
}

// SessionListMsg delivers the stored transcript listing for /sessions.
type SessionListMsg struct {
	Sessions []storage.TranscriptMeta
	Err      error
}

// TranscriptLoadedMsg delivers a restored transcript for /load.
type TranscriptLoadedMsg struct {
	Transcript *model.Transcript
	Err        error
}
