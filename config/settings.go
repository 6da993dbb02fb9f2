// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed view of the docking keys in texeldock.json.

package config

// DockingSettings collects the values the demo shell and CLI need to build a
// docking world.
type DockingSettings struct {
	Theme          string
	Contrast       string
	HighlightColor string
	HighlightAlpha float64
	TabBarHeight   int
	RootDirection  string
	Preset         string
}

// Docking reads DockingSettings from cfg, falling back to the built-in
// defaults for missing or malformed keys.
func Docking(cfg Config) DockingSettings {
	return DockingSettings{
		Theme:          cfg.GetString("", "activeTheme", "dark"),
		Contrast:       cfg.GetString("", "contrast", "standard"),
		HighlightColor: cfg.GetString("docking", "highlight_color", "#B3CCE6"),
		HighlightAlpha: cfg.GetFloat("docking", "highlight_alpha", 0.2),
		TabBarHeight:   cfg.GetInt("docking", "tab_bar_height", 1),
		RootDirection:  cfg.GetString("docking", "root_direction", "row"),
		Preset:         cfg.GetString("layout", "preset", "default"),
	}
}
