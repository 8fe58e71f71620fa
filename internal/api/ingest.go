// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
)

// Ingest bulk-converts free-form text into chat configs in one call. There
// is no progress reporting: the call blocks until the backend has generated
// and stored the pairs, so callers should pass a generous context.
//
// A reply with Success false is a logical failure: Error explains it and
// RawPreview may hold the unparsed model output for diagnostics.
func (c *Client) Ingest(ctx context.Context, text string, maxPairs int) (*IngestResult, error) {
	body := map[string]any{"text": text, "max_pairs": maxPairs}

	var resp IngestResult
	if err := c.call(ctx, http.MethodPost, "/ingest-company-knowledge", body, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
