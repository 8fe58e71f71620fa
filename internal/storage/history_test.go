// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ramolabs/ramo-tui/internal/model"
)

func newTestHistoryStore(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := NewHistoryStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestHistoryStore_SaveAndLoad(t *testing.T) {
	store := newTestHistoryStore(t)

	tr := model.NewTranscript()
	tr.AppendUser("what are your hours?")
	tr.AppendAssistant("9 to 5", &model.Meta{Cached: true})

	id, err := store.Save(tr)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id != tr.ID {
		t.Errorf("Save returned %q, want %q", id, tr.ID)
	}

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("loaded length = %d, want 3", loaded.Len())
	}
	if loaded.Messages[1].Content != "what are your hours?" {
		t.Errorf("message[1] = %q", loaded.Messages[1].Content)
	}
	last := loaded.Last()
	if last.Meta == nil || !last.Meta.Cached {
		t.Error("cached meta lost in round trip")
	}
}

func TestHistoryStore_LoadUnknownID(t *testing.T) {
	store := newTestHistoryStore(t)

	_, err := store.Load("nope")
	if !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("err = %v, want ErrTranscriptNotFound", err)
	}
}

func TestHistoryStore_ListNewestFirst(t *testing.T) {
	store := newTestHistoryStore(t)

	older := model.NewTranscript()
	older.AppendUser("old question")
	older.UpdatedAt = time.Now().Add(-time.Hour)
	if _, err := store.Save(older); err != nil {
		t.Fatal(err)
	}
	// Save stamps nothing itself; UpdatedAt is transcript state.

	newer := model.NewTranscript()
	newer.AppendUser("new question")
	if _, err := store.Save(newer); err != nil {
		t.Fatal(err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("listed %d, want 2", len(metas))
	}
	if metas[0].ID != newer.ID {
		t.Errorf("first listed = %s, want newest %s", metas[0].ID, newer.ID)
	}
	if !strings.Contains(metas[0].Preview, "new question") {
		t.Errorf("preview = %q", metas[0].Preview)
	}
}

func TestHistoryStore_PreviewFallback(t *testing.T) {
	store := newTestHistoryStore(t)

	tr := model.NewTranscript() // greeting only, no user message
	if _, err := store.Save(tr); err != nil {
		t.Fatal(err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if metas[0].Preview != "New conversation" {
		t.Errorf("preview = %q, want fallback", metas[0].Preview)
	}
}

func TestHistoryStore_EnforcesLimit(t *testing.T) {
	store := newTestHistoryStore(t)
	store.MaxTranscripts = 2

	for i := 0; i < 4; i++ {
		tr := model.NewTranscript()
		tr.UpdatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		if _, err := store.Save(tr); err != nil {
			t.Fatal(err)
		}
	}

	metas, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 {
		t.Errorf("stored %d transcripts, want limit of 2", len(metas))
	}
}

func TestHistoryStore_DeleteIdempotent(t *testing.T) {
	store := newTestHistoryStore(t)

	tr := model.NewTranscript()
	if _, err := store.Save(tr); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(tr.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(tr.ID); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
}
