// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client layer for the RAMO backend.
//
// Client is the single request gateway: it joins the configured base URL with
// a path, sends JSON, optionally attaches the bearer token from the
// credential store, and normalizes every non-success outcome into *APIError.
// The typed endpoint methods (chat, chat configs, knowledge ingestion) and
// the SessionManager are thin layers over it; none of them retry, recover,
// or reinterpret failures.
//
// The gateway imposes no timeout of its own. Callers bound requests through
// the context they pass in.
package api
