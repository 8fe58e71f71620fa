// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation data structures: message roles,
// chat modes, and the append-only transcript.
//
// The transcript is the single source of truth for what the user sees. It
// only ever grows; no component edits, reorders, or removes entries once
// they are appended.
package model
