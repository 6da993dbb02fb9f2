// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()
	_ = System()

	old := WatchDebounce
	WatchDebounce = 10 * time.Millisecond
	t.Cleanup(func() { WatchDebounce = old })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, func(cfg Config) { changes <- cfg })
	}()

	path, err := SystemConfigPath()
	require.NoError(t, err)
	cfg := Clone(System())
	cfg.Set("", "activeTheme", "light")

	// The watcher may not be registered yet; keep writing until it notices.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		require.NoError(t, writeConfig(path, cfg))
		select {
		case got := <-changes:
			require.Equal(t, "light", got.GetString("", "activeTheme", ""))
			cancel()
			require.ErrorIs(t, <-done, context.Canceled)
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("watcher never reported the change")
		}
	}
}

func TestWatchIgnoresUnrelatedWrites(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())
	resetStore()
	_ = System()

	old := WatchDebounce
	WatchDebounce = 10 * time.Millisecond
	t.Cleanup(func() { WatchDebounce = old })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, func(cfg Config) { changes <- cfg })
	}()

	path, err := SystemConfigPath()
	require.NoError(t, err)
	cfg := Clone(System())
	cfg.Set("unrelated", "note", "hello")
	for i := 0; i < 5; i++ {
		require.NoError(t, writeConfig(path, cfg))
		time.Sleep(30 * time.Millisecond)
	}

	select {
	case <-changes:
		t.Fatal("onChange fired for a write that left docking settings alone")
	case <-time.After(200 * time.Millisecond):
	}
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
