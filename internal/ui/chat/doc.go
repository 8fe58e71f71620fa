// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The view owns the conversation transcript and drives the send lifecycle:
// a message is dispatched to the backend only when the view is idle, an API
// key is stored, and the input is non-empty. While a request is in flight
// the view shows a thinking indicator and ignores further submissions; every
// completion path, success or failure, returns the view to idle.
package chat
