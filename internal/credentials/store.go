// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ramolabs/ramo-tui/internal/util"
)

// Logical keys. These are the only two values the store holds.
const (
	KeyToken  = "token"
	KeyAPIKey = "api_key"
)

// storeFileName is the credential file under the ramo config directory.
const storeFileName = "credentials.json"

// =============================================================================
// CREDENTIAL STORE
// =============================================================================

// Store is a key-value facade over the credential file.
//
// All operations are synchronous and idempotent. A store without a backing
// file (no resolvable home directory) degrades to in-memory state: Get
// reports absent rather than failing, and Set/Clear affect only the current
// process lifetime.
//
// The mutex serializes readers and writers; combined with the atomic file
// write this guarantees a reader never observes a partial overwrite.
type Store struct {
	mu     sync.Mutex
	path   string // empty means memory-only
	values map[string]string
}

// NewStore opens the credential store at the default location
// (~/.ramo/credentials.json). If the home directory cannot be resolved the
// store operates in memory only.
func NewStore() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		return NewMemoryStore()
	}
	return NewStoreWithPath(filepath.Join(home, ".ramo", storeFileName))
}

// NewStoreWithPath opens a credential store backed by the given file.
// A missing or unreadable file yields an empty store.
func NewStoreWithPath(path string) *Store {
	s := &Store{path: path, values: make(map[string]string)}
	s.load()
	return s
}

// NewMemoryStore returns a store with no persistence backend.
func NewMemoryStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the stored value for key and whether it is present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.persistLocked()
}

// Clear removes the value for key. Clearing one key never affects the other.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.persistLocked()
}

// =============================================================================
// CONVENIENCE ACCESSORS
// =============================================================================

// Token returns the session token, or "" if none is stored.
func (s *Store) Token() string {
	v, _ := s.Get(KeyToken)
	return v
}

// APIKey returns the workspace API key, or "" if none is stored.
func (s *Store) APIKey() string {
	v, _ := s.Get(KeyAPIKey)
	return v
}

// HasToken reports whether a session token is currently stored.
func (s *Store) HasToken() bool {
	_, ok := s.Get(KeyToken)
	return ok
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return
	}
	s.values = values
}

// persistLocked writes the full map atomically. Must be called with mu held.
// Write failures leave the in-memory state authoritative for this process;
// the facade itself has no error channel.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return
	}
	// 0600/0700: tokens must not be group- or world-readable.
	_ = util.AtomicWriteFileWithDir(s.path, data, 0o600, 0o700)
}
