// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the RAMO TUI.
package components
