// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Disk IO for texeldock.json.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// loadSystem reads texeldock.json layered over the embedded defaults. A
// missing or blank file is seeded with the defaults. The returned config is
// usable even when err is non-nil.
func loadSystem() (Config, error) {
	path, err := SystemConfigPath()
	if err != nil {
		return withDefaults(nil), fmt.Errorf("resolve config path: %w", err)
	}

	user, err := readConfig(path)
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && len(user) == 0:
		cfg := withDefaults(nil)
		if werr := writeConfig(path, cfg); werr != nil {
			log.Printf("Config: could not seed %s: %v", path, werr)
			return cfg, werr
		}
		log.Printf("Config: wrote defaults to %s", path)
		return cfg, nil
	case err != nil:
		return withDefaults(nil), fmt.Errorf("read %s: %w", path, err)
	}
	log.Printf("Config: loaded %s", path)
	return withDefaults(user), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeConfig replaces path atomically so a watcher never sees a partial file.
func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+systemConfigName+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
