// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString("", "activeTheme", "") == "" {
		t.Fatalf("expected activeTheme to be set")
	}

	path, err := SystemConfigPath()
	if err != nil {
		t.Fatalf("SystemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section("docking") == nil {
		t.Fatalf("expected docking section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Config{
		"activeTheme": "light",
	}
	SetSystem(cfg)
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := SystemConfigPath()
	if err != nil {
		t.Fatalf("SystemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString("", "activeTheme", ""); got != "light" {
		t.Fatalf("expected activeTheme to be light, got %q", got)
	}
}

func TestUserValuesSurviveDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	if err := writeConfig(filepath.Join(root, "texeldock", systemConfigName), Config{
		"docking": map[string]interface{}{
			"tab_bar_height": 2,
		},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	settings := Docking(System())
	if settings.TabBarHeight != 2 {
		t.Fatalf("expected tab_bar_height 2, got %d", settings.TabBarHeight)
	}
	if settings.RootDirection != "row" {
		t.Fatalf("expected default root_direction, got %q", settings.RootDirection)
	}
	if settings.Preset != "default" {
		t.Fatalf("expected default preset, got %q", settings.Preset)
	}
}

func TestMalformedConfigReportsError(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	dir := filepath.Join(root, "texeldock")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if Err() == nil {
		t.Fatalf("expected a load error")
	}
	if got := System().GetFloat("docking", "highlight_alpha", 0); got != 0.2 {
		t.Fatalf("expected defaults after a bad file, got %v", got)
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()
	_ = System()

	cfg := Clone(System())
	cfg.Set("docking", "root_direction", "column")
	path, _ := SystemConfigPath()
	if err := writeConfig(path, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := Docking(System()).RootDirection; got != "column" {
		t.Fatalf("expected column after reload, got %q", got)
	}
}

func TestCloneCopiesSections(t *testing.T) {
	orig := Config{"docking": Section{"tab_bar_height": 1}, "activeTheme": "dark"}
	clone := Clone(orig)
	clone.Set("docking", "tab_bar_height", 3)
	if got := orig.GetInt("docking", "tab_bar_height", 0); got != 1 {
		t.Fatalf("clone shares sections with original: %d", got)
	}
}

func TestDirEnvOverridesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)

	path, err := SystemConfigPath()
	if err != nil {
		t.Fatalf("SystemConfigPath: %v", err)
	}
	if path != filepath.Join(dir, systemConfigName) {
		t.Fatalf("unexpected path %q", path)
	}
	presets, err := PresetDir()
	if err != nil {
		t.Fatalf("PresetDir: %v", err)
	}
	if presets != filepath.Join(dir, "presets") {
		t.Fatalf("unexpected preset dir %q", presets)
	}
}

func TestSetSystemKeepsDefaultsUnderneath(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())
	resetStore()

	SetSystem(Config{"docking": Section{"highlight_alpha": 0.5}})
	cfg := System()
	if got := cfg.GetFloat("docking", "highlight_alpha", 0); got != 0.5 {
		t.Fatalf("expected user alpha, got %v", got)
	}
	if got := cfg.GetString("docking", "highlight_color", ""); got != "#B3CCE6" {
		t.Fatalf("expected default color, got %q", got)
	}
	if got := cfg.GetString("layout", "preset", ""); got != "default" {
		t.Fatalf("expected default preset, got %q", got)
	}
}

func TestWriteConfigLeavesOnlyTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, systemConfigName)
	for i := 0; i < 3; i++ {
		if err := writeConfig(path, Config{"activeTheme": "light"}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != systemConfigName {
		t.Fatalf("expected only %s, got %v", systemConfigName, entries)
	}
}

func TestGettersCoerceNumbers(t *testing.T) {
	cfg := Config{"docking": Section{
		"tab_bar_height":  "2",
		"highlight_alpha": json.Number("0.75"),
		"root_direction":  7,
	}}
	if got := cfg.GetInt("docking", "tab_bar_height", 1); got != 2 {
		t.Fatalf("GetInt from string: %d", got)
	}
	if got := cfg.GetFloat("docking", "highlight_alpha", 0); got != 0.75 {
		t.Fatalf("GetFloat from json.Number: %v", got)
	}
	if got := cfg.GetString("docking", "root_direction", "row"); got != "row" {
		t.Fatalf("GetString on a number should fall back, got %q", got)
	}
}
