// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/world.go
// Summary: Turns config settings and a preset into a docking world.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/dock"
	"github.com/framegrace/texeldock/internal/preset"
	"github.com/framegrace/texeldock/theme"
)

// presetNone starts from a single empty zone laid out along root_direction.
const presetNone = "none"

func highlightTint(s config.DockingSettings) dock.Tint {
	color := tcell.GetColor(s.HighlightColor)
	if !color.Valid() {
		log.Printf("Config: invalid highlight_color %q, using default", s.HighlightColor)
		return dock.DefaultHighlightTint
	}
	return dock.Tint{Color: color, Alpha: float32(s.HighlightAlpha)}
}

func paletteFor(s config.DockingSettings) theme.Colors {
	scheme, err := theme.ParseScheme(s.Theme, s.Contrast)
	if err != nil {
		log.Printf("Config: %v, using %s", err, theme.DefaultScheme)
	}
	return theme.Palette(scheme)
}

func worldOptions(s config.DockingSettings, recorder dock.Recorder) dock.Options {
	dir, err := dock.ParseFlexDirection(s.RootDirection)
	if err != nil {
		log.Printf("Config: %v, using %s", err, dir)
	}
	return dock.Options{
		RootDirection: dir,
		TabBarHeight:  s.TabBarHeight,
		HighlightTint: highlightTint(s),
		Recorder:      recorder,
	}
}

// buildWorld loads the named preset, or the configured one when name is
// empty, and builds a world from it.
func buildWorld(s config.DockingSettings, name string, recorder dock.Recorder) (*dock.World, error) {
	if name == "" {
		name = s.Preset
	}
	opts := worldOptions(s, recorder)
	if name == presetNone {
		w := dock.NewWorld(opts)
		cmds := w.Commands()
		cmds.DockingZone(w.Root(), dock.SizedZoneConfig{}, false, nil)
		cmds.Apply()
		return w, nil
	}
	layout, err := preset.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load preset: %w", err)
	}
	w, err := preset.Build(opts, layout)
	if err != nil {
		return nil, fmt.Errorf("build preset %q: %w", name, err)
	}
	return w, nil
}

// setupLog points the standard logger at the --log file. The returned closer
// is never nil.
func setupLog(cmd *cobra.Command, fallback io.Writer) (io.Closer, error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		log.SetOutput(fallback)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
