// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for ramo-tui.
//
// It contains:
//   - Atomic file writes (write-temp, fsync, rename) used by the credential
//     store, the config layer, and transcript persistence.
//   - Width-aware string truncation for terminal rendering, built on
//     go-runewidth so CJK and other double-width characters are not split.
package util
