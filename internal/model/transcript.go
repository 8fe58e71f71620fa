// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// Greeting is the assistant message every new transcript starts with.
const Greeting = "Hey! I'm RAMO, your AI assistant. Add an API key, then ask me anything. Try Smart mode for vector-search powered answers."

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds one conversation in visible order.
//
// It is append-only: messages are added by the dispatcher on send and on
// response arrival, and nothing ever edits, reorders, or removes them.
// Insertion order is the conversation order.
type Transcript struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewTranscript creates a transcript seeded with the assistant greeting.
func NewTranscript() *Transcript {
	now := time.Now()
	t := &Transcript{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.Append(NewAssistantMessage(Greeting, nil))
	return t
}

// NewEmptyTranscript creates a transcript with no seeded greeting. Used when
// restoring a saved conversation from disk.
func NewEmptyTranscript() *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// APPEND OPERATIONS
// =============================================================================

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg *Message) {
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
}

// AppendUser creates and appends a user message.
func (t *Transcript) AppendUser(content string) *Message {
	msg := NewUserMessage(content)
	t.Append(msg)
	return msg
}

// AppendAssistant creates and appends an assistant message.
func (t *Transcript) AppendAssistant(content string, meta *Meta) *Message {
	msg := NewAssistantMessage(content, meta)
	t.Append(msg)
	return msg
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// Last returns the most recent message, or nil if the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.Messages) == 0 {
		return nil
	}
	return t.Messages[len(t.Messages)-1]
}

// FirstUserContent returns the content of the earliest user message, or ""
// if the user has not said anything yet. Used for history previews.
func (t *Transcript) FirstUserContent() string {
	for _, msg := range t.Messages {
		if msg.Role == RoleUser {
			return msg.Content
		}
	}
	return ""
}
