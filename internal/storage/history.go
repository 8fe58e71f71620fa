// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides transcript persistence for ramo-tui.
//
// Saved transcripts live as JSON files under ~/.ramo/history/, one file per
// conversation. This is a convenience layer for the TUI and the chat REPL;
// the live transcript itself never depends on it.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ramolabs/ramo-tui/internal/model"
	"github.com/ramolabs/ramo-tui/internal/util"
)

// ErrTranscriptNotFound is returned when loading an unknown transcript ID.
var ErrTranscriptNotFound = errors.New("transcript not found")

// =============================================================================
// HISTORY STORE
// =============================================================================

// HistoryStore persists transcripts to a directory.
type HistoryStore struct {
	// BaseDir is the directory for stored transcripts.
	// Default: ~/.ramo/history/
	BaseDir string

	// MaxTranscripts limits stored transcripts (0 = unlimited). The oldest
	// are removed when the limit is exceeded.
	MaxTranscripts int
}

// TranscriptMeta describes a stored transcript for listings.
type TranscriptMeta struct {
	ID           string    `json:"id"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Preview      string    `json:"preview"`
}

// NewHistoryStore creates a store under ~/.ramo/history.
func NewHistoryStore() (*HistoryStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewHistoryStoreWithDir(filepath.Join(home, ".ramo", "history"))
}

// NewHistoryStoreWithDir creates a store with a custom directory.
func NewHistoryStoreWithDir(baseDir string) (*HistoryStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &HistoryStore{
		BaseDir:        baseDir,
		MaxTranscripts: 100,
	}, nil
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

// Save persists a transcript and returns its ID.
func (s *HistoryStore) Save(t *model.Transcript) (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}

	if err := util.AtomicWriteFile(s.filePath(t.ID), data, 0o644); err != nil {
		return "", err
	}

	if s.MaxTranscripts > 0 {
		s.enforceLimit()
	}
	return t.ID, nil
}

// Load retrieves a transcript by ID.
func (s *HistoryStore) Load(id string) (*model.Transcript, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}

	var t model.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a stored transcript. Deleting an unknown ID is not an error.
func (s *HistoryStore) Delete(id string) error {
	err := os.Remove(s.filePath(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns metadata for all stored transcripts, newest first.
func (s *HistoryStore) List() ([]TranscriptMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		return nil, err
	}

	var metas []TranscriptMeta
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		t, err := s.Load(id)
		if err != nil {
			continue // skip unreadable files
		}
		metas = append(metas, TranscriptMeta{
			ID:           t.ID,
			UpdatedAt:    t.UpdatedAt,
			MessageCount: t.Len(),
			Preview:      previewOf(t),
		})
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
	return metas, nil
}

// =============================================================================
// INTERNAL
// =============================================================================

func (s *HistoryStore) filePath(id string) string {
	// IDs are UUIDs we generated; strip path separators anyway.
	id = strings.ReplaceAll(id, string(os.PathSeparator), "_")
	return filepath.Join(s.BaseDir, id+".json")
}

// previewOf summarizes a transcript by its first user message.
func previewOf(t *model.Transcript) string {
	content := util.FirstLine(t.FirstUserContent())
	if content == "" {
		return "New conversation"
	}
	return util.TruncateRunes(content, 50)
}

// enforceLimit removes the oldest transcripts when over the limit.
func (s *HistoryStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxTranscripts {
		return
	}
	for _, meta := range metas[s.MaxTranscripts:] {
		s.Delete(meta.ID)
	}
}
