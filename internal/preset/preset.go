// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/preset/preset.go
// Summary: YAML layout presets that seed a docking world.
// Usage: Presets use the same shape `texeldock dump` prints, so a dumped
// layout can be saved under the presets directory and loaded by name.

package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/defaults"
	"github.com/framegrace/texeldock/dock"
)

// ErrNotFound is returned when no preset file or embedded preset matches.
var ErrNotFound = errors.New("preset not found")

// Parse decodes and validates a preset document.
func Parse(data []byte) (dock.LayoutCapture, error) {
	var layout dock.LayoutCapture
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return dock.LayoutCapture{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := validateZones(layout.Zones, "zones"); err != nil {
		return dock.LayoutCapture{}, err
	}
	return layout, nil
}

func validateZones(zones []dock.ZoneCapture, path string) error {
	for i, z := range zones {
		where := fmt.Sprintf("%s[%d]", path, i)
		if z.Size < 0 || z.MinSize < 0 {
			return fmt.Errorf("%s: sizes must not be negative", where)
		}
		switch z.Kind {
		case dock.ZoneKindDocking, "":
			if len(z.Children) > 0 {
				return fmt.Errorf("%s: docking zones cannot have children", where)
			}
			if len(z.Tabs) > 0 && (z.Active < 0 || z.Active >= len(z.Tabs)) {
				return fmt.Errorf("%s: active tab %d out of range", where, z.Active)
			}
		case dock.ZoneKindSized:
			if len(z.Tabs) > 0 {
				return fmt.Errorf("%s: sized zones cannot have tabs", where)
			}
			if err := validateZones(z.Children, where+".children"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unknown kind %q", where, z.Kind)
		}
	}
	return nil
}

// Load resolves name to a preset. A name ending in .yaml or containing a path
// separator is read as a file; otherwise the user preset directory is tried
// before the embedded presets.
func Load(name string) (dock.LayoutCapture, error) {
	if name == "" {
		name = "default"
	}
	if strings.HasSuffix(name, ".yaml") || strings.ContainsRune(name, filepath.Separator) {
		data, err := os.ReadFile(name)
		if err != nil {
			return dock.LayoutCapture{}, err
		}
		return Parse(data)
	}
	if dir, err := config.PresetDir(); err == nil {
		data, err := os.ReadFile(filepath.Join(dir, name+".yaml"))
		if err == nil {
			return Parse(data)
		}
		if !os.IsNotExist(err) {
			return dock.LayoutCapture{}, err
		}
	}
	data, err := defaults.Preset(name)
	if err != nil {
		return dock.LayoutCapture{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return Parse(data)
}

// Build creates a world from layout. opts.RootDirection is taken from the
// layout.
func Build(opts dock.Options, layout dock.LayoutCapture) (*dock.World, error) {
	opts.RootDirection = layout.Direction
	w := dock.NewWorld(opts)
	if err := Apply(w, layout); err != nil {
		return nil, err
	}
	return w, nil
}

// Apply adds the zones and floating panels of layout under w's root.
func Apply(w *dock.World, layout dock.LayoutCapture) error {
	cmds := w.Commands()
	var active []dock.EntityID
	for _, z := range layout.Zones {
		queueZone(cmds, w.Root(), z, &active)
	}
	cmds.Apply()

	for _, tab := range active {
		if err := w.SelectTab(tab); err != nil {
			return fmt.Errorf("select preset tab: %w", err)
		}
	}
	for _, p := range layout.Floating {
		w.SpawnFloatingPanel(p.Title, p.Body, p.Rect)
	}
	return nil
}

// queueZone records z under parent. Tabs other than the first that should
// start selected are appended to active.
func queueZone(cmds *dock.Commands, parent dock.EntityID, z dock.ZoneCapture, active *[]dock.EntityID) {
	cfg := dock.SizedZoneConfig{Size: z.Size, MinSize: z.MinSize}
	if z.Kind == dock.ZoneKindSized {
		cmds.SizedZone(parent, cfg, func(zone dock.EntityID, zc *dock.Commands) {
			for _, child := range z.Children {
				queueZone(zc, zone, child, active)
			}
		})
		return
	}
	cmds.DockingZone(parent, cfg, z.RemoveEmpty, func(tabs *dock.TabGroupBuilder) {
		for i, tab := range z.Tabs {
			id := tabs.AddTab(tab.Title, tab.Body)
			if i == z.Active && i > 0 {
				*active = append(*active, id)
			}
		}
	})
}
