// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Chat config operations: workspace knowledge-base CRUD. All are
// authenticated pass-through calls with no client-side state.

// ListConfigs fetches all knowledge entries for the caller's workspace.
func (c *Client) ListConfigs(ctx context.Context) (*ChatConfigsResponse, error) {
	var resp ChatConfigsResponse
	if err := c.call(ctx, http.MethodGet, "/get-chat-config", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateConfig stores a new question/answer entry and returns its id.
func (c *Client) CreateConfig(ctx context.Context, question, answer string) (*CreateConfigResponse, error) {
	body := map[string]string{"question": question, "answer": answer}

	var resp CreateConfigResponse
	if err := c.call(ctx, http.MethodPost, "/chat-config", body, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateConfig rewrites an entry by id. A 2xx reply may still carry a
// logical failure: check resp.Failed before trusting resp.ConfigID.
func (c *Client) UpdateConfig(ctx context.Context, id, question, answer string) (*UpdateConfigResponse, error) {
	path := "/update-chat-config/" + url.PathEscape(id)
	body := map[string]string{"question": question, "answer": answer}

	var resp UpdateConfigResponse
	if err := c.call(ctx, http.MethodPut, path, body, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
