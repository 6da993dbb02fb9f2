// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Layers user values over defaults/texeldock.json.

package config

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/framegrace/texeldock/defaults"
)

var embeddedDefaults = sync.OnceValues(func() (Config, error) {
	data, err := defaults.SystemConfig()
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
})

// withDefaults returns a copy of user with every key it lacks filled in from
// the embedded defaults, one section deep.
func withDefaults(user Config) Config {
	base, err := embeddedDefaults()
	if err != nil {
		log.Printf("Config: embedded defaults unusable: %v", err)
	}
	out := Clone(base)
	if out == nil {
		out = make(Config)
	}
	for name, raw := range user {
		overlay, ok := asSection(raw)
		if !ok {
			out[name] = raw
			continue
		}
		merged, _ := asSection(out[name])
		merged = cloneSection(merged)
		for key, value := range overlay {
			merged[key] = value
		}
		out[name] = merged
	}
	return out
}
