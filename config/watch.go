// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/watch.go
// Summary: Reloads the system config when texeldock.json changes on disk.

package config

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is how long Watch waits for writes to settle before reloading.
var WatchDebounce = 150 * time.Millisecond

// Watch reloads the system config whenever its file is written and calls
// onChange with the fresh config when its docking settings differ from the
// last ones seen. It blocks until ctx is done. The directory
// is watched rather than the file so editors that replace the file on save
// keep triggering reloads.
func Watch(ctx context.Context, onChange func(Config)) error {
	path, err := SystemConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(dir); err != nil {
		return err
	}

	var (
		timerMu sync.Mutex
		timer   *time.Timer
		stopped bool
		last    = Docking(System())
	)
	defer func() {
		timerMu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	reload := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if stopped {
			return
		}
		if err := Reload(); err != nil {
			return
		}
		cfg := System()
		next := Docking(cfg)
		if next == last {
			return
		}
		last = next
		if onChange != nil {
			onChange(cfg)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, reload)
			timerMu.Unlock()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config: watcher error: %v", werr)
		}
	}
}
