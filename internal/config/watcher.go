// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the config file when it changes on disk and hands the new
// config to a callback. Editors tend to fire several events per save, so
// events are debounced.
type Watcher struct {
	path     string
	onChange func(*Config)
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the config file at path. onChange runs on a background
// goroutine with the freshly loaded config; a file that fails to load or
// validate is ignored and the previous config stays in effect.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		debounce: 200 * time.Millisecond,
		watcher:  fw,
		done:     make(chan struct{}),
	}

	// Watch the directory, not the file: atomic saves replace the inode.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			cfg, err := LoadFromPath(w.path)
			if err != nil {
				continue
			}
			w.onChange(cfg)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
