// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package credentials provides durable storage for the two client
// credentials: the session token obtained from login and the per-workspace
// API key used by the chat endpoints.
//
// The two keys are independent: clearing the token (logout) never touches the
// API key. Values are plain strings persisted as JSON under ~/.ramo with 0600
// permissions; there is no encryption and no cross-device sync.
package credentials
