// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/ramolabs/ramo-tui/internal/credentials"
)

// SessionManager owns the session token lifecycle: it is the only writer of
// the token inside the credential store. Every operation surfaces *APIError
// unchanged from the gateway; there is no retry or recovery logic here.
//
// The one deliberate asymmetry: Login writes the token on success, but
// CreateAPIKey never writes the issued key. Storing the key is the caller's
// decision, which keeps this layer free of implicit cross-writes.
type SessionManager struct {
	client *Client
	creds  *credentials.Store
}

// NewSessionManager creates a session manager over the given gateway.
func NewSessionManager(client *Client) *SessionManager {
	return &SessionManager{client: client, creds: client.Credentials()}
}

// Login posts credentials. When the reply carries a session token it is
// stored; a token-less reply is returned as-is and leaves the stored token
// untouched, so a failed login never discards an existing session.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := m.client.call(ctx, http.MethodPost, "/login", body, false, &resp); err != nil {
		return nil, err
	}

	if resp.Authenticated() {
		m.creds.Set(credentials.KeyToken, resp.UniqueToken)
	}
	return &resp, nil
}

// FetchProfile retrieves the workspace profile for the current token. The
// reply is the Found/not-found variant; this call never mutates the store.
func (m *SessionManager) FetchProfile(ctx context.Context) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := m.client.call(ctx, http.MethodGet, "/profile", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a workspace account. It does not log the user in.
func (m *SessionManager) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := m.client.call(ctx, http.MethodPost, "/register", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subscribe flips the workspace's subscription flag server-side.
func (m *SessionManager) Subscribe(ctx context.Context) (*SubscribeResponse, error) {
	var resp SubscribeResponse
	if err := m.client.call(ctx, http.MethodPost, "/subscribe-me", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateAPIKey asks the backend to issue a workspace API key. The reply may
// carry the key or only a message when issuance was deferred. The key is NOT
// written into the credential store here.
func (m *SessionManager) CreateAPIKey(ctx context.Context) (*CreateAPIKeyResponse, error) {
	var resp CreateAPIKeyResponse
	if err := m.client.call(ctx, http.MethodPost, "/add-api-key", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout clears the session token. The API key is independent storage and is
// left alone.
func (m *SessionManager) Logout() {
	m.creds.Clear(credentials.KeyToken)
}

// IsLoggedIn reports whether a session token is currently stored.
func (m *SessionManager) IsLoggedIn() bool {
	return m.creds.HasToken()
}
