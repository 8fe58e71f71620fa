// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for ramo.
//
// The default invocation starts the TUI. Subcommands cover account management
// (register, login, logout, profile, subscribe, apikey), one-shot queries
// (ask), an interactive REPL (chat), Q&A configuration (configs), and
// knowledge ingestion (ingest).
package cli
