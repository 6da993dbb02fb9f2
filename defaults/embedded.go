// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration and layout presets.

package defaults

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed texeldock.json presets/*.yaml
var files embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return files.ReadFile("texeldock.json")
}

// Preset returns the embedded YAML for the named layout preset.
func Preset(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("preset name is required")
	}
	return files.ReadFile(path.Join("presets", name+".yaml"))
}

// PresetNames lists the embedded presets without their extension.
func PresetNames() []string {
	entries, err := fs.ReadDir(files, "presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}
