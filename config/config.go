// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide texeldock.json store.
// Usage: System returns the loaded config; Reload and SetSystem replace it.
// Values the user did not set fall through to the embedded defaults.

package config

import (
	"log"
	"sync"
)

const systemConfigName = "texeldock.json"

// Config stores configuration sections as JSON-compatible data. Top-level
// scalar keys live in the unnamed section "".
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
)

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system, loadErr = loadSystem()
}

// System returns the current config. Callers must not modify it; use Clone
// and SetSystem instead.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// Err returns the error from the most recent load, if any.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Reload re-reads texeldock.json. On error the previous defaults-backed
// config is still replaced, so a broken file never leaves the store empty.
func Reload() error {
	once.Do(initStore)
	cfg, err := loadSystem()
	mu.Lock()
	system, loadErr = cfg, err
	mu.Unlock()
	if err != nil {
		log.Printf("Config: reload failed: %v", err)
	}
	return err
}

// SetSystem replaces the in-memory config. Nothing is written until SaveSystem.
func SetSystem(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	system = withDefaults(cfg)
}

// SaveSystem writes the in-memory config to texeldock.json.
func SaveSystem() error {
	once.Do(initStore)
	path, err := SystemConfigPath()
	if err != nil {
		return err
	}
	mu.RLock()
	cfg := Clone(system)
	mu.RUnlock()
	return writeConfig(path, cfg)
}
