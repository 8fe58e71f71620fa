// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramolabs/ramo-tui/internal/credentials"
)

// fakeConfigBackend is an in-memory knowledge base implementing the chat
// config contract, used for round-trip tests.
type fakeConfigBackend struct {
	mu      sync.Mutex
	nextID  int
	entries []ChatConfig
}

func (b *fakeConfigBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "missing token"})
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/get-chat-config":
			json.NewEncoder(w).Encode(ChatConfigsResponse{ChatConfigs: b.entries})

		case r.Method == http.MethodPost && r.URL.Path == "/chat-config":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			b.nextID++
			id := fmt.Sprintf("cfg-%d", b.nextID)
			b.entries = append(b.entries, ChatConfig{ID: id, Question: body["question"], Answer: body["answer"]})
			json.NewEncoder(w).Encode(map[string]string{"message": "created", "config_id": id})

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/update-chat-config/"):
			id := strings.TrimPrefix(r.URL.Path, "/update-chat-config/")
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			for i := range b.entries {
				if b.entries[i].ID == id {
					b.entries[i].Question = body["question"]
					b.entries[i].Answer = body["answer"]
					json.NewEncoder(w).Encode(map[string]any{"message": "updated", "config_id": id})
					return
				}
			}
			// The backend overloads 2xx for logical failure.
			json.NewEncoder(w).Encode(map[string]any{"message": "", "config_id": nil, "error": "config not found"})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newConfigTestClient(t *testing.T) (*Client, *fakeConfigBackend) {
	t.Helper()
	backend := &fakeConfigBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, creds := newTestClient(server.URL)
	creds.Set(credentials.KeyToken, "tok")
	return client, backend
}

// =============================================================================
// ROUND-TRIP PROPERTIES
// =============================================================================

func TestConfigs_CreateThenListRoundTrip(t *testing.T) {
	client, _ := newConfigTestClient(t)
	ctx := context.Background()

	created, err := client.CreateConfig(ctx, "What are your hours?", "9 to 5")
	require.NoError(t, err)
	require.NotEmpty(t, created.ConfigID)

	list, err := client.ListConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, list.ChatConfigs, 1)
	assert.Equal(t, created.ConfigID, list.ChatConfigs[0].ID)
	assert.Equal(t, "What are your hours?", list.ChatConfigs[0].Question)
	assert.Equal(t, "9 to 5", list.ChatConfigs[0].Answer)
}

func TestConfigs_UpdateReflectsNewValues(t *testing.T) {
	client, _ := newConfigTestClient(t)
	ctx := context.Background()

	created, err := client.CreateConfig(ctx, "Q", "A")
	require.NoError(t, err)

	updated, err := client.UpdateConfig(ctx, created.ConfigID, "Q2", "A2")
	require.NoError(t, err)
	assert.False(t, updated.Failed())
	require.NotNil(t, updated.ConfigID)
	assert.Equal(t, created.ConfigID, *updated.ConfigID)

	list, err := client.ListConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, list.ChatConfigs, 1)
	assert.Equal(t, "Q2", list.ChatConfigs[0].Question)
	assert.Equal(t, "A2", list.ChatConfigs[0].Answer)
}

func TestConfigs_UpdateUnknownIDIsLogicalFailure(t *testing.T) {
	client, _ := newConfigTestClient(t)

	// 2xx with an error field: not a transport error, caller inspects it.
	resp, err := client.UpdateConfig(context.Background(), "missing", "Q", "A")
	require.NoError(t, err)
	assert.True(t, resp.Failed())
	assert.Equal(t, "config not found", resp.Error)
	assert.Nil(t, resp.ConfigID)
}

func TestConfigs_UnauthenticatedRejected(t *testing.T) {
	backend := &fakeConfigBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, _ := newTestClient(server.URL) // no token stored

	_, err := client.ListConfigs(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "missing token", apiErr.Message)
}

// =============================================================================
// INGESTION
// =============================================================================

func TestIngest_SuccessPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ingest-company-knowledge", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "About our company...", body["text"])
		assert.Equal(t, float64(5), body["max_pairs"])

		json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"company_name":  "Acme",
			"created_count": 2,
			"inserted_ids":  []string{"c1", "c2"},
			"preview": []map[string]string{
				{"question": "Q1", "answer": "A1"},
				{"question": "Q2", "answer": "A2"},
			},
		})
	}))
	defer server.Close()

	client, creds := newTestClient(server.URL)
	creds.Set(credentials.KeyToken, "tok")

	result, err := client.Ingest(context.Background(), "About our company...", 5)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.CreatedCount)
	require.Len(t, result.Preview, 2)
	assert.Equal(t, "Q1", result.Preview[0].Question)
}

func TestIngest_FailurePayloadWithRawPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":     false,
			"error":       "could not parse model output",
			"raw_preview": "Q: something\nA: garbled...",
		})
	}))
	defer server.Close()

	client, creds := newTestClient(server.URL)
	creds.Set(credentials.KeyToken, "tok")

	// success:false is a logical failure, not an error return.
	result, err := client.Ingest(context.Background(), "text", 3)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "could not parse model output", result.Error)
	assert.Contains(t, result.RawPreview, "garbled")
}
