// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Chat endpoints authorize with the workspace API key as a query parameter,
// never with the bearer token. The two credentials must not cross paths.

// Chat sends one message on the plain response path.
func (c *Client) Chat(ctx context.Context, apiKey, message string) (*ChatResponse, error) {
	path := "/chat?api=" + url.QueryEscape(apiKey)
	body := map[string]string{"message": message}

	var resp ChatResponse
	if err := c.call(ctx, http.MethodPost, path, body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatSmart sends one message on the search-augmented path. The reply may
// report how many relevant knowledge stores backed the answer.
func (c *Client) ChatSmart(ctx context.Context, apiKey, message string) (*ChatSmartResponse, error) {
	path := "/chat-smart?api=" + url.QueryEscape(apiKey)
	body := map[string]string{"message": message}

	var resp ChatSmartResponse
	if err := c.call(ctx, http.MethodPost, path, body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
