// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "RAMO"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Meta carries backend-reported metadata surfaced under an assistant bubble.
type Meta struct {
	// Cached is true when the backend served the reply from its
	// precomputed store instead of generating it fresh.
	Cached bool `json:"cached,omitempty"`

	// Note is a short annotation, currently the smart-mode relevance
	// count ("Relevant stores: N").
	Note string `json:"note,omitempty"`
}

// Message is a single transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Meta      *Meta     `json:"meta,omitempty"`
}

// NewMessage creates a message with a generated ID.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates an assistant message with optional metadata.
func NewAssistantMessage(content string, meta *Meta) *Message {
	msg := NewMessage(RoleAssistant, content)
	msg.Meta = meta
	return msg
}
