// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Where texeldock keeps its config and user presets.

package config

import (
	"os"
	"path/filepath"
)

// DirEnv overrides the config directory, mainly for tests and portable setups.
const DirEnv = "TEXELDOCK_CONFIG_DIR"

// Dir returns the texeldock config directory.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "texeldock"), nil
}

// SystemConfigPath returns the location of texeldock.json.
func SystemConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, systemConfigName), nil
}

// PresetDir returns the directory searched for user layout presets.
func PresetDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets"), nil
}
